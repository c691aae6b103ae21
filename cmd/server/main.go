package main

import (
	"os"

	httpadapter "diggle/internal/adapter/http"
	metricsinmem "diggle/internal/adapter/metrics/inmemory"
	gormrepo "diggle/internal/adapter/repo/gorm"
	memrepo "diggle/internal/adapter/repo/memory"
	"diggle/internal/app/control"
	"diggle/internal/app/observe"
	"diggle/internal/app/ports"
	"diggle/internal/app/saveload"
	"diggle/internal/app/session"
	"diggle/internal/config"
	"diggle/internal/domain/mining"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/rs/zerolog"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("load config")
	}

	logger := buildLogger(cfg.LogLevel)

	slots, runs, err := buildRepos(cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("build repositories")
	}

	kpi := metricsinmem.NewRecorder()
	manager := session.NewManager(session.Config{
		TickRate: cfg.Game.TickRate,
		World:    worldConfig(cfg),
		Logger:   logger,
		Metrics:  kpi,
		Runs:     runs,
	})

	h := httpadapter.Handler{
		Sessions:   manager,
		ControlUC:  control.UseCase{Sessions: manager},
		ObserveUC:  observe.UseCase{Sessions: manager},
		SaveLoadUC: saveload.UseCase{Sessions: manager, Slots: slots},
		Runs:       runs,
		KPI:        kpi,
	}

	s := server.Default(server.WithHostPorts(cfg.Addr))
	h.RegisterRoutes(s)

	logger.Info().Str("addr", cfg.Addr).Float64("tick_rate", cfg.Game.TickRate).Msg("diggle server listening")
	s.Spin()
	manager.Shutdown()
}

func buildLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(os.Stdout).Level(lvl).With().Timestamp().Logger()
}

// buildRepos picks the persistence backend: postgres when a DSN is
// configured, in-process maps otherwise.
func buildRepos(cfg config.Config, logger zerolog.Logger) (ports.SaveSlotRepository, ports.RunRepository, error) {
	if cfg.DB.DSN == "" {
		logger.Warn().Msg("no database configured, save slots and runs are ephemeral")
		store := memrepo.NewStore()
		return memrepo.NewSaveSlotRepo(store), memrepo.NewRunRepo(store), nil
	}

	db, err := gormrepo.OpenPostgres(cfg.DB.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := gormrepo.Migrate(db); err != nil {
		return nil, nil, err
	}
	return gormrepo.NewSaveSlotRepo(db), gormrepo.NewRunRepo(db), nil
}

func worldConfig(cfg config.Config) mining.WorldConfig {
	return mining.WorldConfig{
		Width:      cfg.World.Width,
		Height:     cfg.World.Height,
		SurfaceRow: cfg.World.SurfaceRow,
		Seed:       cfg.World.Seed,
	}
}
