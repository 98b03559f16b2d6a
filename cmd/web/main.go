package main

import (
	"context"
	"crypto/rand"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/apiclient"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/config"
	apphttp "github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/handlers"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/http/sessioncookie"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/mailer"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/invoice"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/modules/orders"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/storage"
	"github.com/OminduHirushka/PahanaEdu-ClientSide-sub000/internal/store"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	if err := run(logger); err != nil {
		logger.Error("server stopped", slog.Any("err", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api := apiclient.New(apiclient.Config{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		UserAgent: "pahanaedu-web",
	}, logger)

	deps := store.Deps{API: api, Log: logger, CartRetryDelay: cfg.Cart.RetryDelay}
	var events handlers.EventLister
	if cfg.Audit.DSN != "" {
		db, err := orders.OpenAuditDB(cfg.Audit.DSN)
		if err != nil {
			return err
		}
		repo := orders.NewAuditRepo(db)
		deps.Audit = repo
		events = repo
		logger.Info("order audit enabled")
	} else {
		logger.Info("DB_DSN not set, order audit disabled")
	}

	st, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		return err
	}
	logger.Info("invoice storage ready", slog.String("driver", st.Driver))

	iv := handlers.Invoices{Exporter: invoice.NewExporter(st.Storage)}
	if cfg.MailEnabled() {
		iv.Sender = &invoice.Mailer{
			Service:  mailer.New(cfg.SMTP, cfg.Mail, logger),
			From:     cfg.Mail.From,
			FromName: cfg.Mail.FromName,
		}
	} else {
		logger.Info("no mail transport configured, invoice e-mail disabled")
	}

	secret := []byte(cfg.Session.Secret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return err
		}
		logger.Warn("SESSION_SECRET not set, sessions will not survive a restart")
	}

	reg := store.NewRegistry(deps, cfg.Session.TTL)
	go reg.Run(ctx, time.Minute)

	r := apphttp.NewRouter(apphttp.RouterDeps{
		Log:      logger,
		Registry: reg,
		Cookie:   sessioncookie.New(secret, cfg.Session.CookieName, cfg.Session.Secure, cfg.Session.TTL),
		Invoices: iv,
		Events:   events,
	})

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("listening", slog.String("addr", cfg.HTTP.Addr), slog.String("api", cfg.API.BaseURL))
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
