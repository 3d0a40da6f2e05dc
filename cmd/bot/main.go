package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"recruitbot/internal/adapters/discord"
	"recruitbot/internal/config"
	"recruitbot/internal/infrastructure/i18n"
	"recruitbot/internal/infrastructure/ledger"
	"recruitbot/internal/infrastructure/schedule"
	"recruitbot/pkg/logx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
	log := logx.New(logx.Config{Level: cfg.LogLevel, JSON: cfg.LogJSON}, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := ledger.Open(ctx, cfg.LedgerURL, cfg.LedgerSetKey, log.With(logx.String("component", "ledger")))
	if err != nil {
		log.Error("❌ Erreur lors de l'initialisation du ledger", logx.Err(err))
		os.Exit(1)
	}
	defer store.Close()

	bot, err := discord.NewBot(cfg, discord.Deps{
		Schedule:   schedule.NewClient(cfg.ScheduleEndpoint, cfg.ConferenceCode, cfg.Location, cfg.ScheduleTimeout),
		Ledger:     store,
		Translator: i18n.NewTranslator(cfg.Locale, log.With(logx.String("component", "i18n"))),
		Log:        log,
	})
	if err != nil {
		log.Error("❌ Erreur lors de la création du bot", logx.Err(err))
		os.Exit(1)
	}
	if err := bot.Start(ctx); err != nil {
		log.Error("❌ Erreur lors du démarrage du bot", logx.Err(err))
		store.Close()
		os.Exit(1)
	}
}
