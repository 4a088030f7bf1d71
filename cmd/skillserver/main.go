package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/teralith/interlude/internal/config"
	"github.com/teralith/interlude/internal/data"
	"github.com/teralith/interlude/internal/db"
	"github.com/teralith/interlude/internal/game/skill"
)

const ConfigPath = "config/skillserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("INTERLUDE_SKILL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadSkillServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("skill server starting", "skill_dir", cfg.SkillDir, "log_level", cfg.LogLevel)

	if cfg.DatabaseEnabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")
	}

	skills := data.NewSkillData(skill.DefaultRegistry(), data.DefaultEnchantSkillGroups())
	if err := skills.Load(ctx, cfg.SkillDir); err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	slog.Info("skill table published", "levels", skills.Count())

	g, ctx := errgroup.WithContext(ctx)

	// Админский перезапуск компиляции по SIGHUP. Читатели видят либо
	// старую, либо новую таблицу целиком.
	g.Go(func() error {
		hupCh := make(chan os.Signal, 1)
		signal.Notify(hupCh, syscall.SIGHUP)
		defer signal.Stop(hupCh)
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-hupCh:
				slog.Info("reloading skill data")
				if err := skills.Load(ctx, cfg.SkillDir); err != nil {
					slog.Error("skill reload failed, previous table kept", "err", err)
					continue
				}
				slog.Info("skill table republished", "levels", skills.Count())
			}
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
