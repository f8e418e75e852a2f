package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"consent_governance_system/configs"
	"consent_governance_system/internal/db"
	"consent_governance_system/internal/db/models"
	"consent_governance_system/internal/di"
	"consent_governance_system/internal/healthcheck"
	"consent_governance_system/internal/notifier"

	"github.com/go-co-op/gocron"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type settler interface {
	ResolveAll(ctx context.Context) ([]*models.Proposal, error)
	Unannounced(ctx context.Context) ([]*models.Proposal, error)
	MarkAnnounced(ctx context.Context, id uint32) error
}

func main() {
	config, err := configs.LoadProposalStateServiceConfig()
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

	go healthcheck.Serve(ctx, config.App.HealthCheckAddr, "/proposal-state-service/healthcheck", logger)

	consentEngine, err := di.NewEngine(config.Engine, config.Redis, database, logger)
	if err != nil {
		logger.Fatalw("failed to initialize engine", "error", err)
	}

	outcomes, err := newNotifier(config.Notifications, logger)
	if err != nil {
		logger.Fatalw("failed to create notifier", "error", err)
	}

	s := gocron.NewScheduler(time.UTC)
	_, err = s.Cron(config.Scheduler.SweepCron).SingletonMode().Do(func() {
		sweep(ctx, consentEngine.Controller, outcomes, logger)
	})
	if err != nil {
		logger.Fatalw("failed to schedule sweep", "cron", config.Scheduler.SweepCron, "error", err)
	}

	logger.Infow("starting scheduler", "cron", config.Scheduler.SweepCron)
	s.StartAsync()

	<-ctx.Done()
	s.Stop()
	logger.Info("shutting down")
}

// sweep settles every proposal whose status became terminal since the last
// run, then announces each settled outcome that has not been announced yet.
// Outcomes that fail to send stay unannounced until the next run.
func sweep(ctx context.Context, engine settler, outcomes notifier.Notifier, logger *zap.SugaredLogger) int {
	logger.Info("resolving proposals")

	disposed, err := engine.ResolveAll(ctx)
	if err != nil {
		logger.Errorw("failed to resolve proposals", "error", err)
	} else if len(disposed) > 0 {
		logger.Infow("proposals settled", "count", len(disposed))
	}

	settled, err := engine.Unannounced(ctx)
	if err != nil {
		logger.Errorw("failed to get unannounced proposals", "error", err)
		return 0
	}

	if len(settled) == 0 {
		logger.Info("no outcomes to announce")
		return 0
	}

	announced := 0
	for _, proposal := range settled {
		if err := outcomes.Notify(ctx, proposal); err != nil {
			logger.Errorw("failed to send notification", "id", proposal.ID, "error", err)
			continue
		}
		if err := engine.MarkAnnounced(ctx, proposal.ID); err != nil {
			logger.Errorw("failed to mark proposal as announced", "id", proposal.ID, "error", err)
			continue
		}
		announced++
	}

	logger.Infow("outcomes announced", "count", announced, "pending", len(settled)-announced)
	return announced
}

func newNotifier(config configs.Notifications, logger *zap.SugaredLogger) (notifier.Notifier, error) {
	var targets []notifier.Notifier

	if config.TelegramToken != "" && config.TelegramChatID != 0 {
		bot, err := tgbotapi.NewBotAPI(config.TelegramToken)
		if err != nil {
			return nil, fmt.Errorf("failed to create telegram bot: %w", err)
		}
		targets = append(targets, notifier.NewTelegram(bot, config.TelegramChatID))
		logger.Infow("telegram notifications enabled", "chat_id", config.TelegramChatID)
	}

	if config.Discord.Enabled() {
		discord, err := notifier.NewDiscord(config.Discord.Token, config.Discord.ChannelID)
		if err != nil {
			return nil, err
		}
		targets = append(targets, discord)
		logger.Infow("discord notifications enabled", "channel_id", config.Discord.ChannelID)
	}

	if len(targets) == 0 {
		logger.Warn("no notification targets configured")
	}

	return notifier.Multi(targets...), nil
}
