// @title Adhyaya API
// @description Engagement ledger of the Adhyaya learning app
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/adhyaya/internal/api"
	"github.com/limbo/adhyaya/internal/repository"
	"github.com/limbo/adhyaya/internal/service"
	"github.com/limbo/adhyaya/internal/worker"
	"github.com/limbo/adhyaya/pkg/cleanup"
	"github.com/limbo/adhyaya/pkg/clock"
	"github.com/limbo/adhyaya/pkg/config"
	jwtservice "github.com/limbo/adhyaya/pkg/jwt_service"
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	service.InitValidator()
}

type stores struct {
	users    repository.UsersRepositoryI
	records  repository.EngagementRepositoryI
	archives repository.ArchiveRepositoryI
}

func openStores(cfg *config.Config, clk clock.Clock) stores {
	switch cfg.StorageDriver {
	case "memory":
		slog.Warn("using in-memory storage, data is lost on restart")
		store := repository.NewMemoryStore(repository.WithStoreClock(clk))
		return stores{users: store, records: store, archives: store}
	case "postgres":
		pool := repository.NewPool(&repository.PGCfg{
			Address:  cfg.Postgres.Address,
			Username: cfg.Postgres.User,
			Password: cfg.Postgres.Password,
			DB:       cfg.Postgres.DB,
			MaxConns: cfg.Postgres.MaxConns,
		})
		return stores{
			users:    repository.NewUsersRepo(pool),
			records:  repository.NewEngagementRepo(pool),
			archives: repository.NewArchiveRepo(pool),
		}
	}
	log.Fatal("unknown STORAGE_DRIVER: " + cfg.StorageDriver)
	return stores{}
}

func main() {
	cfg := config.New()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("loading timezone error: " + err.Error())
	}
	clk := clock.System{Location: loc}

	service.RegisterMetrics(prometheus.DefaultRegisterer)
	api.InitPrometheus(prometheus.DefaultRegisterer)

	st := openStores(cfg, clk)
	userService := service.NewUserService(st.users)
	engagementService := service.NewEngagementService(st.records, clk, logger)
	archiveService := service.NewArchiveService(st.records, st.archives, st.users, clk, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	archiver := worker.NewMonthlyArchiver(archiveService, cfg.ArchiveInterval, logger)
	done := make(chan struct{})
	go func() {
		defer close(done)
		archiver.Run(ctx)
	}()

	serv := api.New(&api.ServicesList{
		UserService:       userService,
		EngagementService: engagementService,
		ArchiveService:    archiveService,
		JwtService:        jwtservice.New(cfg.JWTSecret, cfg.JWTTTL),
	},
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		api.WithMetricsAuth(cfg.MetricsUser, cfg.MetricsPassword),
		api.WithClock(clk),
	)
	if err := serv.Run(ctx, cfg.APIAddress); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
		stop()
	}
	<-done
	cleanup.CleanUp()
	slog.Info("server stopped")
}
