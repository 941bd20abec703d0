package referral

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/pageit/pageit-forms/pkg/apperr"
	"github.com/pageit/pageit-forms/pkg/binder"
	"github.com/pageit/pageit-forms/pkg/logger"
	"github.com/pageit/pageit-forms/pkg/mailer"
	"github.com/pageit/pageit-forms/pkg/requestid"
	"github.com/pageit/pageit-forms/pkg/respond"
	"github.com/pageit/pageit-forms/pkg/validator"
)

const (
	msgWrongContentType = "multipart/form-data で送信してください。"
	msgMissingFields    = "必須項目が不足しています: "
	msgSendFailed       = "メール送信に失敗しました。"
)

// Handler serves POST /api/referral.
type Handler struct {
	dispatcher mailer.Dispatcher
	log        *slog.Logger
}

// NewHandler wires the referral endpoint to a mail dispatcher. A nil logger
// discards log output.
func NewHandler(d mailer.Dispatcher, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{dispatcher: d, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("request_id", requestid.FromContext(r.Context())), logger.Endpoint("referral"))

	var req Request
	if err := binder.Multipart()(r, &req); err != nil {
		log.Info("rejected request body", logger.Error(apperr.New(apperr.KindShape, err)))
		respond.Fail(w, http.StatusBadRequest, msgWrongContentType)
		return
	}
	if err := binder.File()(r, &req); err != nil {
		log.Info("rejected file upload", logger.Error(apperr.New(apperr.KindShape, err)))
		respond.Fail(w, http.StatusBadRequest, msgWrongContentType)
		return
	}

	if err := req.Validate(); err != nil {
		missing := validator.ExtractValidationErrors(err).Fields()
		log.Info("incomplete submission", logger.MissingFields(missing))
		respond.Fail(w, http.StatusBadRequest, msgMissingFields+strings.Join(missing, ", "))
		return
	}

	if err := h.dispatcher.Dispatch(r.Context(), req.BuildMessage()); err != nil {
		log.Error("mail dispatch failed",
			logger.Error(err),
			slog.String("kind", apperr.Classify(err).String()))
		respond.Fail(w, http.StatusInternalServerError, msgSendFailed)
		return
	}

	log.Info("referral forwarded", slog.String("subject", req.Subject()))
	respond.OK(w)
}
