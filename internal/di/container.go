package di

import (
	"context"
	"fmt"
	"time"

	"consent_governance_system/configs"
	"consent_governance_system/internal/consent"
	"consent_governance_system/internal/db/repositories"
	"consent_governance_system/internal/engine"
	"consent_governance_system/internal/services"

	"github.com/go-pg/pg/v10"
	zaploki "github.com/paul-milne/zap-loki"
	"go.uber.org/zap"
)

func NewLogger(app configs.App, config configs.Logger) *zap.SugaredLogger {
	if config.URL == "" {
		if app.IsDevEnvironment() {
			return zap.Must(zap.NewDevelopment()).Sugar()
		}
		return zap.Must(zap.NewProduction()).Sugar()
	}

	ctx := context.Background()
	lokiConfig := zaploki.Config{
		Url:          config.URL,
		BatchMaxSize: 1000,
		BatchMaxWait: 10 * time.Second,
		Labels:       map[string]string{"app": config.AppName},
	}
	return zap.Must(zaploki.New(ctx, lokiConfig).WithCreateLogger(zap.NewProductionConfig())).Sugar()
}

func NewEngineConfig(config configs.Engine) engine.Config {
	return engine.Config{
		PreVoteBond:      config.PreVoteBond,
		ActiveQueueBond:  config.ActiveQueueBond,
		SupportThreshold: config.SupportThreshold,
		Policy: consent.Policy{
			Simple: consent.Threshold{
				ForRatio: config.SimpleConsentForRatio,
				Quorum:   config.SimpleConsentQuorum,
			},
			Super: consent.Threshold{
				ForRatio: config.SuperConsentForRatio,
				Quorum:   config.SuperConsentQuorum,
			},
			EarlyRejection: config.EarlyRejection,
		},
		PreVoteDuration:    config.PreVoteDuration,
		VotingDuration:     config.VotingDuration,
		CredentialRegistry: config.CredentialRegistryURL,
		ProposerClass:      config.ProposerClass,
		VoterClass:         config.VoterClass,
		CommunityTreasury:  config.CommunityTreasury,
		SpamMarkers:        config.SpamMarkers,
		EligiblePopulation: config.EligiblePopulation,
	}
}

// NewCredentialOracle returns the registry client, cached in redis when
// redis is configured.
func NewCredentialOracle(engineConfig configs.Engine, redisConfig configs.Redis, logger *zap.SugaredLogger) (services.CredentialService, error) {
	service := services.NewCredentialService(engineConfig.CredentialRegistryURL)
	if !redisConfig.Enabled() {
		return service, nil
	}

	rdb, err := services.NewRedisClient(redisConfig.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to create redis client: %w", err)
	}

	logger.Infow("caching credentials in redis", "ttl", redisConfig.CredentialTTL)
	return services.NewCachedCredentialService(service, rdb, redisConfig.CredentialTTL, logger), nil
}

type Engine struct {
	Controller *engine.Controller
	Query      *engine.Query
}

func NewEngine(engineConfig configs.Engine, redisConfig configs.Redis, database *pg.DB, logger *zap.SugaredLogger) (Engine, error) {
	oracle, err := NewCredentialOracle(engineConfig, redisConfig, logger)
	if err != nil {
		return Engine{}, err
	}

	config := NewEngineConfig(engineConfig)
	store := repositories.NewProposalRepository(database)
	ledger := repositories.NewBondRepository(database)
	clock := engine.SystemClock()

	return Engine{
		Controller: engine.NewController(config, store, oracle, ledger, clock, logger),
		Query:      engine.NewQuery(config, store, clock),
	}, nil
}
