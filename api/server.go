package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/Yumax-panda/MK8DX-discordbot/api/handlers"
	guildservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/guild/application"
	resultsservice "github.com/Yumax-panda/MK8DX-discordbot/app/modules/results/application"
	sokujidb "github.com/Yumax-panda/MK8DX-discordbot/app/modules/sokuji/infrastructure/repositories"
	"github.com/Yumax-panda/MK8DX-discordbot/config"
)

// Server is the HTTP surface for banner overlays, result exports, and
// guild settings.
type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer builds the chi router and wires the module handlers.
func NewServer(
	cfg config.APIConfig,
	logger *slog.Logger,
	bannerDB sokujidb.BannerDB,
	results resultsservice.Service,
	guilds guildservice.Service,
	registry *prometheus.Registry,
) *Server {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	if cfg.RateLimit > 0 {
		limiter := newIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
		r.Use(limiter.middleware)
	}

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	sokujiHandler := &handlers.SokujiHandler{BannerDB: bannerDB}
	resultsHandler := &handlers.ResultsHandler{Service: results}
	guildHandler := &handlers.GuildHandler{Service: guilds}

	r.Mount("/sokuji", sokujiHandler.Routes())
	r.Mount("/results", resultsHandler.Routes())
	r.Mount("/guilds", guildHandler.Routes())

	return &Server{
		httpServer: &http.Server{
			Addr:              cfg.Addr,
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// ListenAndServe blocks serving HTTP until the server is shut down.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting HTTP API", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
