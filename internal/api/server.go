package api

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"StockDesk/internal/desk"

	"github.com/gin-gonic/gin"
)

// Options tune the HTTP middleware.
type Options struct {
	RateLimit   float64 // requests per second per IP; <= 0 turns throttling off
	RateBurst   int
	CORSOrigins []string
	Version     string
}

// Server exposes the desk over HTTP.
type Server struct {
	Router  *gin.Engine
	Desk    *desk.Desk
	Version string
}

// NewServer builds the router and its middleware stack.
func NewServer(d *desk.Desk, opts Options) *Server {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(RequestLogger())
	if opts.RateLimit > 0 {
		r.Use(RateLimitMiddleware(newIPLimiters(opts.RateLimit, opts.RateBurst)))
	}
	r.Use(CORSMiddleware(opts.CORSOrigins))

	s := &Server{Router: r, Desk: d, Version: opts.Version}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.Router.GET("/health", s.health)

	api := s.Router.Group("/api")
	{
		api.GET("/stocks", s.listStocks)
		api.POST("/reload", s.reload)

		stock := api.Group("/stocks/:symbol")
		stock.GET("/preview", s.preview)
		stock.GET("/summary", s.summary)
		stock.GET("/signals", s.signals)
		stock.GET("/price", s.price)
		stock.GET("/performance", s.performance)
		stock.GET("/info", s.info)
		stock.POST("/reload", s.reloadSymbol)

		api.GET("/watchlist", s.getWatchlist)
		api.POST("/watchlist/:symbol", s.addWatch)
		api.DELETE("/watchlist/:symbol", s.removeWatch)
	}
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[INFO] http server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	log.Println("[INFO] http server stopped")
	return nil
}
