// Package server собирает эталонный бэкенд: REST ресурсы, проверку токенов,
// ограничение частоты запросов и периодическую очистку реестра токенов.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/iudanet/gophsync/internal/config"
	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/internal/server/handlers"
	"github.com/iudanet/gophsync/internal/server/jwt"
	"github.com/iudanet/gophsync/internal/server/middleware"
	"github.com/iudanet/gophsync/internal/server/storage/sqlite"
	"github.com/iudanet/gophsync/pkg/api"
)

// ShutdownTimeout время на завершение активных запросов при остановке
const ShutdownTimeout = 10 * time.Second

// Server эталонный бэкенд
type Server struct {
	logger  *slog.Logger
	store   *sqlite.Storage
	tokens  *jwt.Service
	limiter *middleware.RateLimiter
	handler http.Handler
	cfg     config.Server
}

// New открывает базу данных и собирает обработчики.
// version попадает в ответ /health.
func New(ctx context.Context, cfg config.Server, logger *slog.Logger, version string) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if logger == nil {
		logger = slog.Default()
	}

	store, err := sqlite.New(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		store:   store,
		tokens:  jwt.NewService(cfg.JWTSecret, cfg.TokenTTL),
		limiter: middleware.NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
	}
	s.handler = s.routes(version)

	return s, nil
}

func (s *Server) routes(version string) http.Handler {
	resources := http.NewServeMux()
	handlers.NewEntityHandler(s.logger.With("component", "entities"), s.store).Register(resources)

	// Лимит после аутентификации: ключом служит subject токена
	protected := middleware.AuthMiddleware(s.logger, s.tokens, s.store)(
		middleware.RateLimitMiddleware(s.limiter, s.logger)(resources),
	)

	mux := http.NewServeMux()
	mux.Handle("/api/", protected)
	mux.HandleFunc("GET "+api.PathHealth, handlers.NewHealthHandler(s.logger, s.store, version).Health)

	return middleware.RecoveryMiddleware(s.logger)(
		middleware.LoggingWithSkip(s.logger, []string{api.PathHealth})(mux),
	)
}

// Handler HTTP обработчик сервера
func (s *Server) Handler() http.Handler {
	return s.handler
}

// IssueToken выпускает токен и записывает его в реестр.
// ttl <= 0 означает TTL из конфигурации.
func (s *Server) IssueToken(ctx context.Context, subject string, ttl time.Duration) (string, *models.IssuedToken, error) {
	token, record, err := s.tokens.Issue(subject, ttl)
	if err != nil {
		return "", nil, err
	}
	if err := s.store.SaveToken(ctx, record); err != nil {
		return "", nil, fmt.Errorf("failed to register token: %w", err)
	}

	s.logger.Info("Token issued",
		"token_id", record.ID,
		"subject", subject,
		"expires_at", record.ExpiresAt)
	return token, record, nil
}

// Tokens записи реестра выданных токенов
func (s *Server) Tokens(ctx context.Context) ([]*models.IssuedToken, error) {
	return s.store.ListTokens(ctx)
}

// RevokeToken отзывает токен по jti
func (s *Server) RevokeToken(ctx context.Context, id string) error {
	if err := s.store.RevokeToken(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Token revoked", "token_id", id)
	return nil
}

// CleanupTokens удаляет истекшие записи реестра
func (s *Server) CleanupTokens(ctx context.Context) (int, error) {
	n, err := s.store.DeleteExpiredTokens(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.logger.Info("Expired tokens removed", "count", n)
	}
	return n, nil
}

// Close освобождает ресурсы сервера
func (s *Server) Close() error {
	s.limiter.Stop()
	return s.store.Close()
}

// Run обслуживает HTTP запросы до отмены ctx
func (s *Server) Run(ctx context.Context) error {
	sched := cron.New(cron.WithLogger(
		cron.PrintfLogger(slog.NewLogLogger(s.logger.Handler(), slog.LevelDebug)),
	))
	if _, err := sched.AddFunc("@every "+s.cfg.TokenCleanup.String(), func() {
		if _, err := s.CleanupTokens(ctx); err != nil {
			s.logger.Error("Token cleanup failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule token cleanup: %w", err)
	}
	sched.Start()
	defer func() {
		<-sched.Stop().Done()
	}()

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Server listening", "addr", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
