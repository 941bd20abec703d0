package partners

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
)

const (
	msgInvalidType = "invalid type"
	msgSendFailed  = "メール送信に失敗しました。"
)

// Handler serves POST /api/partners.
type Handler struct {
	dispatcher mailer.Dispatcher
	log        *slog.Logger
}

// NewHandler wires the partners endpoint to a mail dispatcher. A nil logger
// discards log output.
func NewHandler(d mailer.Dispatcher, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Handler{dispatcher: d, log: log}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := h.log.With(slog.String("request_id", requestid.FromContext(r.Context())), logger.Endpoint("partners"))

	msg, ok := h.decode(w, r, log)
	if !ok {
		return
	}

	if err := h.dispatcher.Dispatch(r.Context(), msg); err != nil {
		log.Error("mail dispatch failed",
			logger.Error(err),
			slog.String("kind", apperr.Classify(err).String()))
		respond.Fail(w, http.StatusInternalServerError, msgSendFailed)
		return
	}

	log.Info("application forwarded", slog.String("subject", msg.Subject))
	respond.OK(w)
}

// decode parses whichever payload shape the request carries. It writes the
// 400 response itself and reports ok=false when the request is unusable.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, log *slog.Logger) (mailer.Message, bool) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var app ReferralApplication
		if err := binder.Multipart()(r, &app); err != nil {
			log.Info("rejected request body", logger.Error(apperr.New(apperr.KindShape, err)))
			respond.Fail(w, http.StatusBadRequest, msgInvalidType)
			return mailer.Message{}, false
		}
		if app.Type != TypeReferral {
			log.Info("unknown application type", slog.String("type", app.Type))
			respond.Fail(w, http.StatusBadRequest, msgInvalidType)
			return mailer.Message{}, false
		}
		if err := binder.File()(r, &app); err != nil {
			log.Info("rejected file upload", logger.Error(apperr.New(apperr.KindShape, err)))
			respond.Fail(w, http.StatusBadRequest, msgInvalidType)
			return mailer.Message{}, false
		}
		return app.BuildMessage(), true
	}

	var app CreatorApplication
	if err := binder.JSON()(r, &app); err != nil {
		log.Info("rejected request body", logger.Error(apperr.New(apperr.KindShape, err)))
		respond.Fail(w, http.StatusBadRequest, msgInvalidType)
		return mailer.Message{}, false
	}
	if app.Type != TypeCreator {
		log.Info("unknown application type", slog.String("type", app.Type))
		respond.Fail(w, http.StatusBadRequest, msgInvalidType)
		return mailer.Message{}, false
	}
	return app.BuildMessage(), true
}
