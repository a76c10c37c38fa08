package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/limbo/adhyaya/docs"
	"github.com/limbo/adhyaya/internal/service"
	"github.com/limbo/adhyaya/pkg/clock"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Server struct {
	mx                *chi.Mux
	userService       service.UserServiceI
	engagementService service.EngagementServiceI
	archiveService    service.ArchiveServiceI
	jwtService        JWTServiceI
	clock             clock.Clock
	limiter           *ipRateLimiter
	metricsUser       string
	metricsPassword   string
}

type ServicesList struct {
	UserService       service.UserServiceI
	EngagementService service.EngagementServiceI
	ArchiveService    service.ArchiveServiceI
	JwtService        JWTServiceI
}

type Option func(s *Server)

// WithRateLimit limits requests per client ip. rps <= 0 disables the limit.
func WithRateLimit(rps float64, burst int) Option {
	return func(s *Server) {
		s.limiter = newIPRateLimiter(rps, burst)
	}
}

// WithClock sets the clock token lifetimes are checked against
func WithClock(clk clock.Clock) Option {
	return func(s *Server) {
		if clk != nil {
			s.clock = clk
		}
	}
}

// WithMetricsAuth protects /metrics with basic auth
func WithMetricsAuth(user, password string) Option {
	return func(s *Server) {
		s.metricsUser = user
		s.metricsPassword = password
	}
}

func New(servicesOptions *ServicesList, opts ...Option) *Server {
	s := &Server{
		mx:                chi.NewMux(),
		userService:       servicesOptions.UserService,
		engagementService: servicesOptions.EngagementService,
		archiveService:    servicesOptions.ArchiveService,
		jwtService:        servicesOptions.JwtService,
		clock:             clock.System{},
		limiter:           newIPRateLimiter(0, 0),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.RequestID, middleware.Recoverer, s.RequestLoggerMiddleware, MonitorMiddleware, s.limiter.Middleware)
	s.mx.Get("/health", s.Health)
	s.mx.Handle("/metrics", s.MetricsAuthMiddleware(promhttp.Handler()))
	s.mx.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)
			r.Post("/engagement/sessions", s.TrackSession)
			r.Post("/engagement/plans", s.PlanSessions)
			r.Get("/engagement/stats", s.GetStats)
			r.Put("/engagement/active-title", s.SetActiveTitle)
			r.Get("/leaderboard", s.Leaderboard)
			r.Get("/archives", s.ListArchives)
			r.Get("/archives/{year}/{month}", s.GetArchive)
		})
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mx.ServeHTTP(w, r)
}

// Run serves on address until ctx is cancelled, then drains connections.
func (s *Server) Run(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       time.Minute,
	}
	go s.limiter.Run(ctx)
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", address))
		errCh <- srv.ListenAndServe()
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
