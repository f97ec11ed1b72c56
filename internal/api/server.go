// Package api exposes the combo builder over HTTP: design configuration,
// preview rendering, template and discount management.
package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/merchkit/combobuilder/internal/combo"
	"github.com/merchkit/combobuilder/internal/domain/repository"
	"github.com/merchkit/combobuilder/internal/logging"
	"github.com/merchkit/combobuilder/internal/shopify"
)

// DiscountCreator creates a discount on the storefront platform.
type DiscountCreator interface {
	CreateCodeDiscount(ctx context.Context, in shopify.CreateDiscountInput) (*shopify.CreatedDiscount, error)
}

// Options wires the server's collaborators.
type Options struct {
	Addr      string
	Store     *combo.Store
	Cache     *combo.SessionCache
	Templates repository.TemplateRepository
	Discounts repository.DiscountRepository
	Shopify   DiscountCreator
	// ReceiverLogPath is where the receiver endpoint appends its entries.
	ReceiverLogPath string
	Logger          zerolog.Logger
}

// Server is the HTTP surface of the combo builder admin.
type Server struct {
	addr            string
	store           *combo.Store
	cache           *combo.SessionCache
	templates       repository.TemplateRepository
	discounts       repository.DiscountRepository
	shopify         DiscountCreator
	receiverLogPath string
	logger          zerolog.Logger
}

// New creates a Server. The session cache, when present, is saved on every
// committed design change.
func New(opts Options) *Server {
	s := &Server{
		addr:            opts.Addr,
		store:           opts.Store,
		cache:           opts.Cache,
		templates:       opts.Templates,
		discounts:       opts.Discounts,
		shopify:         opts.Shopify,
		receiverLogPath: opts.ReceiverLogPath,
		logger:          opts.Logger,
	}

	if s.cache != nil {
		s.store.OnCommit(func(cfg combo.Config) {
			if err := s.cache.Save(cfg); err != nil {
				s.logger.Warn().Err(err).Msg("failed to persist design config")
			}
		})
	}

	return s
}

// Routes assembles the route table.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/v1/design", s.handleDesignGet)
	mux.HandleFunc("PUT /api/v1/design/field", s.handleDesignSetField)
	mux.HandleFunc("PUT /api/v1/design/pair", s.handleDesignSetPair)
	mux.HandleFunc("POST /api/v1/design/reset", s.handleDesignReset)
	mux.HandleFunc("PUT /api/v1/design/offer", s.handleDesignOffer)

	mux.HandleFunc("GET /api/v1/preview", s.handlePreview)

	mux.HandleFunc("GET /api/v1/templates", s.handleTemplatesList)
	mux.HandleFunc("POST /api/v1/templates", s.handleTemplatesCreate)
	mux.HandleFunc("PUT /api/v1/templates/{id}/active", s.handleTemplatesSetActive)
	mux.HandleFunc("DELETE /api/v1/templates/{id}", s.handleTemplatesDelete)

	mux.HandleFunc("GET /api/v1/discounts", s.handleDiscountsList)
	mux.HandleFunc("POST /api/v1/discounts", s.handleDiscountsCreate)
	mux.HandleFunc("PATCH /api/v1/discounts/{id}", s.handleDiscountsUpdate)
	mux.HandleFunc("DELETE /api/v1/discounts/{id}", s.handleDiscountsDelete)

	mux.HandleFunc("POST /api/v1/receiver", s.handleReceiver)

	mux.HandleFunc("GET /api/v1/schema", s.handleSchema)

	return s.withRequestLog(mux)
}

// Run serves until the context is cancelled or an interrupt arrives, then
// shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx = logging.WithContext(ctx, s.logger)
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info().Str("addr", s.addr).Msg("http server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info().Msg("shutting down http server")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// withRequestLog attaches the server logger to each request context and logs
// the request line.
func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		r = r.WithContext(logging.WithContext(r.Context(), s.logger))
		next.ServeHTTP(w, r)
		s.logger.Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})
}
