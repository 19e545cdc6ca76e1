package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/iudanet/gophsync/internal/client/interceptor"
	"github.com/iudanet/gophsync/internal/client/storage"
	clientsync "github.com/iudanet/gophsync/internal/client/sync"
	"github.com/iudanet/gophsync/internal/models"
	"github.com/iudanet/gophsync/internal/server/middleware"
	"github.com/iudanet/gophsync/pkg/api"
)

// ShutdownTimeout время на завершение активных запросов при остановке
const ShutdownTimeout = 5 * time.Second

// Options зависимости демона
type Options struct {
	Transport http.RoundTripper // перехватчик; запросы приложения идут через него
	Service   Service
	Network   Network
	Cache     storage.CacheStorage
	Logger    *slog.Logger
	Upstream  string // базовый URL сервера
	Token     string // подставляется, если запрос пришел без Authorization
}

// Server локальный прокси и управляющий API
type Server struct {
	service Service
	network Network
	cache   storage.CacheStorage
	logger  *slog.Logger
	proxy   *httputil.ReverseProxy
	handler http.Handler
}

// New создает демон
func New(opts Options) (*Server, error) {
	if opts.Service == nil || opts.Network == nil || opts.Cache == nil || opts.Transport == nil {
		return nil, errors.New("service, network, cache and transport are required")
	}
	target, err := url.Parse(opts.Upstream)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid upstream url %q", opts.Upstream)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		service: opts.Service,
		network: opts.Network,
		cache:   opts.Cache,
		logger:  logger,
	}

	token := opts.Token
	s.proxy = &httputil.ReverseProxy{
		Rewrite: func(r *httputil.ProxyRequest) {
			r.SetURL(target)
			if token != "" && r.Out.Header.Get("Authorization") == "" {
				r.Out.Header.Set("Authorization", "Bearer "+token)
			}
		},
		Transport:    opts.Transport,
		ErrorHandler: s.proxyError,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET "+ControlPrefix+"/status", s.handleStatus)
	mux.HandleFunc("POST "+ControlPrefix+"/check", s.handleCheck)
	mux.HandleFunc("GET "+ControlPrefix+"/actions", s.handleListActions)
	mux.HandleFunc("DELETE "+ControlPrefix+"/actions", s.handleClearActions)
	mux.HandleFunc("GET "+ControlPrefix+"/actions/{id}", s.handleGetAction)
	mux.HandleFunc("POST "+ControlPrefix+"/actions/{id}/retry", s.handleRetry)
	mux.HandleFunc("POST "+ControlPrefix+"/actions/{id}/resolve", s.handleResolve)
	mux.HandleFunc("POST "+ControlPrefix+"/drain", s.handleDrain)
	mux.HandleFunc("GET "+ControlPrefix+"/cache", s.handleGetCache)
	mux.HandleFunc("DELETE "+ControlPrefix+"/cache", s.handleClearCache)
	mux.HandleFunc("POST "+ControlPrefix+"/cache/sweep", s.handleSweepCache)
	mux.HandleFunc("GET "+ControlPrefix+"/events", s.handleEvents)
	mux.HandleFunc(ControlPrefix+"/", func(w http.ResponseWriter, r *http.Request) {
		s.sendError(w, "unknown control endpoint", http.StatusNotFound)
	})
	mux.Handle("/", s.proxy)

	s.handler = middleware.RecoveryMiddleware(logger)(
		middleware.LoggingWithSkip(logger, []string{ControlPrefix + "/events"})(mux),
	)
	return s, nil
}

// Handler корневой http.Handler демона
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает addr до отмены ctx, затем корректно останавливает сервер
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Sync daemon listening", "addr", addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown daemon: %w", err)
	}
	return nil
}

// proxyError переводит ошибки перехватчика в ответы приложению
func (s *Server) proxyError(w http.ResponseWriter, r *http.Request, err error) {
	var offlineErr *interceptor.OfflineError
	switch {
	case errors.As(err, &offlineErr):
		s.logger.Info("Request refused offline",
			"method", r.Method,
			"path", r.URL.Path,
			"reason", offlineErr.Reason)
		s.sendJSON(w, OfflineResponse{
			Error:  offlineErr.Error(),
			Reason: offlineErr.Reason,
			Method: offlineErr.Method,
			URL:    offlineErr.URL,
			Status: offlineErr.StatusCode,
		}, http.StatusServiceUnavailable)
	case errors.Is(err, models.ErrInvalidPayload):
		s.sendError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, clientsync.ErrStorageUnavailable):
		s.logger.Error("Failed to queue request", "path", r.URL.Path, "error", err)
		s.sendError(w, "local queue unavailable", http.StatusInsufficientStorage)
	case errors.Is(err, context.Canceled):
		w.WriteHeader(499)
	default:
		s.logger.Error("Proxy error", "method", r.Method, "path", r.URL.Path, "error", err)
		s.sendJSON(w, api.ErrorResponse{Error: "upstream request failed", Message: err.Error()}, http.StatusBadGateway)
	}
}
