package main

import (
	"context"
	"os/signal"
	"syscall"

	"consent_governance_system/configs"
	"consent_governance_system/internal/db"
	"consent_governance_system/internal/di"
	"consent_governance_system/internal/healthcheck"
	tgbot "consent_governance_system/internal/tg_bot"
	"consent_governance_system/internal/tg_bot/commands"
	"consent_governance_system/internal/tg_bot/handlers"
)

func main() {
	config, err := configs.LoadConsentBotConfig()
	logger := di.NewLogger(config.App, config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	defer database.Close()
	logger.Info("db started")

	go healthcheck.Serve(ctx, config.App.HealthCheckAddr, "/consent-bot/healthcheck", logger)

	logger.Info("initializing engine")
	consentEngine, err := di.NewEngine(config.Engine, config.Redis, database, logger)
	if err != nil {
		logger.Fatalw("failed to initialize engine", "error", err)
	}

	logger.Info("starting bot")
	tgbot.NewBot(
		handlers.NewConsentBotCommandHandler(logger,
			[]commands.Command{
				commands.NewStartCommand(config.App),
				commands.NewCreateProposalCommand(consentEngine.Controller, consentEngine.Query, logger),
				commands.NewSupportCommand(consentEngine.Controller, logger),
				commands.NewVoteCommand(consentEngine.Controller, logger),
				commands.NewExpireCommand(consentEngine.Controller, logger),
				commands.NewMarkSpamCommand(consentEngine.Controller, logger),
				commands.NewProposalCommand(consentEngine.Query, logger),
				commands.NewProposalsCommand(consentEngine.Query, logger),
				commands.NewConfigCommand(consentEngine.Query, logger),
			},
		),
	).Start(ctx, config.Bot, logger)

	logger.Info("shutting down")
}
