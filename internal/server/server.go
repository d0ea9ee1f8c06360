package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/simonvc/tripbudget/internal/ledger"
	"github.com/simonvc/tripbudget/internal/logging"
	"github.com/simonvc/tripbudget/internal/tools"
)

const shutdownTimeout = 10 * time.Second

// ExpenseLister reads the raw ledger.
type ExpenseLister interface {
	ListAll(ctx context.Context) ([]ledger.Expense, error)
}

type Server struct {
	tools    *tools.Facade
	expenses ExpenseLister
	router   chi.Router
	addr     string
	logger   *slog.Logger
}

func New(facade *tools.Facade, expenses ExpenseLister, addr string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = logging.Discard()
	}
	logger = logging.WithComponent(logger, logging.ComponentHTTP)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware(logger))
	r.Use(middleware.Recoverer)

	s := &Server{tools: facade, expenses: expenses, router: r, addr: addr, logger: logger}

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.health)

		// Tool boundary
		r.Get("/tools", s.listTools)
		r.Post("/tools/{name}", s.callTool)

		// Shortcuts over the same tools
		r.Get("/expenses", s.listExpenses)
		r.Delete("/expenses", s.clearExpenses)
		r.Get("/summary", s.summary)
		r.Get("/budget", s.budget)
	})

	return s
}

// Run listens on the configured address and serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then drains in-flight requests.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("tripbudget server listening", "addr", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) Handler() http.Handler {
	return s.router
}
