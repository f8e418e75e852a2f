package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type ConsentBotConfig struct {
	App    App
	Logger Logger
	Bot    Bot
	DB     DB
	Redis  Redis
	Engine Engine
}

func LoadConsentBotConfig() (ConsentBotConfig, error) {
	var config ConsentBotConfig

	if err := env.Parse(&config); err != nil {
		return ConsentBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Engine.Validate(); err != nil {
		return ConsentBotConfig{}, fmt.Errorf("invalid engine config: %w", err)
	}

	return config, nil
}

type ProposalStateServiceConfig struct {
	App           App
	Logger        Logger
	DB            DB
	Redis         Redis
	Engine        Engine
	Scheduler     Scheduler
	Notifications Notifications
}

func LoadProposalStateServiceConfig() (ProposalStateServiceConfig, error) {
	var config ProposalStateServiceConfig

	if err := env.Parse(&config); err != nil {
		return ProposalStateServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Engine.Validate(); err != nil {
		return ProposalStateServiceConfig{}, fmt.Errorf("invalid engine config: %w", err)
	}

	return config, nil
}
