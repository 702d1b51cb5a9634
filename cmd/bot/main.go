package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"mesabot/internal/adapters/discord"
	"mesabot/internal/adapters/httpapi"
	"mesabot/internal/adapters/scheduler"
	"mesabot/internal/application"
	"mesabot/internal/config"
	"mesabot/internal/infrastructure/database"
	"mesabot/internal/infrastructure/i18n"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("❌ Configuração inválida", slog.Any("error", err))
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("❌ Bot encerrado com erro", slog.Any("error", err))
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		return err
	}
	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	translator, err := i18n.NewTranslator(os.DirFS(cfg.LocalesDir), cfg.DefaultLocale,
		i18n.WithSupportedLocales(cfg.Locales...),
		i18n.WithLogger(logger.With(slog.String("component", "i18n"))),
	)
	if err != nil {
		return err
	}

	localeRepo := database.NewUserLocaleRepository(pool)
	bot, err := discord.NewBot(cfg, translator, localeRepo, logger.With(slog.String("component", "discord")))
	if err != nil {
		return err
	}

	translations := application.NewTranslationService(translator)
	server := httpapi.New(cfg.HTTPAddr, translations, pool, logger.With(slog.String("component", "http")))
	audit := scheduler.NewAuditJob(translations, logger.With(slog.String("component", "audit")))

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bot.Start(ctx) })
	g.Go(func() error { return server.Run(ctx) })
	g.Go(func() error { return scheduler.RunAudit(ctx, cfg.AuditSchedule, audit, logger) })
	if cfg.WatchLocales {
		g.Go(func() error { return translator.Watch(ctx, cfg.LocalesDir, i18n.DefaultReloadDebounce) })
	}

	logger.Info("🤖 Bot em execução. Pressione CTRL+C para sair.")
	return g.Wait()
}
