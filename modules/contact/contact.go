// Package contact implements the contact form endpoint. Unlike the referral
// endpoint it accepts a small JSON body and answers with the legacy
// success/error envelope the public site expects.
package contact

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pageit/pageit-forms/pkg/apperr"
	"github.com/pageit/pageit-forms/pkg/binder"
	"github.com/pageit/pageit-forms/pkg/logger"
	"github.com/pageit/pageit-forms/pkg/mailer"
	"github.com/pageit/pageit-forms/pkg/requestid"
	"github.com/pageit/pageit-forms/pkg/validator"
)

const (
	fromName      = "Pageit お問い合わせ"
	msgMissing    = "メールとメッセージが必要です"
	msgSendFailed = "送信に失敗しました"
)

// Request is a contact form submission.
type Request struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate requires both fields to carry non-blank text.
func (r Request) Validate() error {
	return validator.Apply(
		validator.RequiredString("email", r.Email),
		validator.RequiredString("message", r.Message),
	)
}

// BuildMessage renders the submission as a plain-text operator email. The
// message text goes out verbatim; the sender is identified by the subject
// and the Reply-To header.
func (r Request) BuildMessage() mailer.Message {
	return mailer.Message{
		FromName: fromName,
		ReplyTo:  r.Email,
		Subject:  fmt.Sprintf("お問い合わせ from %s", r.Email),
		TextBody: r.Message,
	}
}

// Handler serves POST /api/send-contact.
type Handler struct {
	dispatcher mailer.Dispatcher
	log        *slog.Logger
}

// NewHandler wires the contact endpoint to a mail dispatcher. A nil logger
// discards log output.
func NewHandler(d mailer.Dispatcher, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{dispatcher: d, log: log}
}

// response is the envelope the marketing site has consumed since launch.
// It predates respond.Result and stays for wire compatibility.
type response struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("request_id", requestid.FromContext(r.Context())), logger.Endpoint("contact"))

	var req Request
	if err := binder.JSON()(r, &req); err != nil {
		log.Info("rejected request body", logger.Error(apperr.New(apperr.KindShape, err)))
		writeJSON(w, http.StatusBadRequest, response{Error: msgMissing})
		return
	}

	if err := req.Validate(); err != nil {
		log.Info("incomplete submission", logger.MissingFields(validator.ExtractValidationErrors(err).Fields()))
		writeJSON(w, http.StatusBadRequest, response{Error: msgMissing})
		return
	}

	if err := h.dispatcher.Dispatch(r.Context(), req.BuildMessage()); err != nil {
		log.Error("mail dispatch failed",
			logger.Error(err),
			slog.String("kind", apperr.Classify(err).String()))
		writeJSON(w, http.StatusInternalServerError, response{Error: msgSendFailed})
		return
	}

	log.Info("contact forwarded", slog.String("sender", req.Email))
	writeJSON(w, http.StatusOK, response{Success: true})
}

func writeJSON(w http.ResponseWriter, status int, v response) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
