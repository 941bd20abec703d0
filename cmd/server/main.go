package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pageit/pageit-forms/modules/contact"
	"github.com/pageit/pageit-forms/modules/partners"
	"github.com/pageit/pageit-forms/modules/referral"
	"github.com/pageit/pageit-forms/pkg/config"
	"github.com/pageit/pageit-forms/pkg/httpserver"
	"github.com/pageit/pageit-forms/pkg/logger"
	"github.com/pageit/pageit-forms/pkg/mailer"
	"github.com/pageit/pageit-forms/pkg/requestid"
)

type appConfig struct {
	Logger logger.Config
	Server httpserver.Config
	Mailer mailer.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Logger, logger.WithService("pageit-forms"))

	dispatcher, err := mailer.New(cfg.Mailer)
	if err != nil {
		log.Error("mailer setup failed", logger.Error(err))
		os.Exit(1)
	}

	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(requestid.Middleware)

	router.Post("/api/referral", referral.NewHandler(dispatcher, log).ServeHTTP)
	router.Post("/api/send-contact", contact.NewHandler(dispatcher, log).ServeHTTP)
	router.Post("/api/partners", partners.NewHandler(dispatcher, log).ServeHTTP)
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := httpserver.New(cfg.Server, log)
	log.Info("starting server", slog.String("addr", cfg.Server.Addr), slog.String("mail_driver", cfg.Mailer.Driver))
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
