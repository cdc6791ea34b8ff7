package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/lenslearn/internal/auth"
	"github.com/heartmarshall/lenslearn/internal/config"
	"github.com/heartmarshall/lenslearn/internal/gloss"
	"github.com/heartmarshall/lenslearn/internal/service/pronunciation"
	"github.com/heartmarshall/lenslearn/internal/service/recognition"
	"github.com/heartmarshall/lenslearn/internal/service/vocabulary"
	"github.com/heartmarshall/lenslearn/internal/transport/middleware"
	"github.com/heartmarshall/lenslearn/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, opens the
// vocabulary store, builds the provider chains and serves HTTP until ctx is
// cancelled, then shuts the server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("database", cfg.Database.Driver),
	)

	handler, cleanup, err := newHandler(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("stopped")
	return nil
}

// newHandler assembles every dependency behind the HTTP handler. cleanup
// releases the store and background workers.
func newHandler(ctx context.Context, cfg *config.Config, logger *slog.Logger) (http.Handler, func(), error) {
	st, err := openStore(ctx, cfg.Database, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	glosses, err := gloss.New()
	if err != nil {
		st.close()
		return nil, nil, err
	}

	clients := &providerClients{cfg: cfg.Providers}
	recognizer, err := clients.recognizer(ctx, cfg.Recognition, logger)
	if err != nil {
		st.close()
		return nil, nil, fmt.Errorf("recognition provider: %w", err)
	}
	speaker, err := clients.speaker(ctx, cfg.Pronunciation, logger)
	if err != nil {
		st.close()
		return nil, nil, fmt.Errorf("pronunciation provider: %w", err)
	}

	vocabSvc := vocabulary.NewService(logger, st.words, glosses)
	recognitionSvc := recognition.NewService(logger, recognizer, cfg.Recognition.MaxImageBytes)
	pronunciationSvc := pronunciation.NewService(logger, speaker, st.clips, pronunciation.Options{
		CacheSize: cfg.Pronunciation.CacheSize,
		CacheTTL:  cfg.Pronunciation.CacheTTL,
		BatchWait: cfg.Pronunciation.BatchWait,
	})

	authMW := middleware.Auth(nil, cfg.Auth.RequireToken)
	if cfg.Auth.TokenVerificationEnabled() {
		verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)
		authMW = middleware.Auth(verifier, cfg.Auth.RequireToken)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	maxBody := cfg.Server.MaxBodyBytes

	router := rest.Router{
		Words:         rest.NewWordHandler(vocabSvc, maxBody, logger),
		Identify:      rest.NewIdentifyHandler(recognitionSvc, maxBody, logger),
		Pronunciation: rest.NewPronunciationHandler(pronunciationSvc, maxBody, logger),
		Health: rest.NewHealthHandler(st.ping, BuildVersion(), map[string]rest.ProviderChain{
			"recognition":   recognizer,
			"pronunciation": speaker,
		}),
		Auth:    authMW,
		CORS:    cfg.CORS,
		Limiter: limiter,
		Limits: rest.Limits{
			IdentifyPerMinute:      cfg.RateLimit.IdentifyPerMinute,
			PronunciationPerMinute: cfg.RateLimit.PronunciationPerMinute,
		},
		Logger: logger,
	}

	cleanup := func() {
		limiter.Stop()
		st.close()
	}
	return router.Handler(), cleanup, nil
}
