package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cachedCredentialService struct {
	CredentialService

	rdb    *redis.Client
	ttl    time.Duration
	now    func() time.Time
	logger *zap.SugaredLogger
}

// NewCachedCredentialService keeps registry answers in redis. Absent
// credentials are cached too. Redis failures fall back to the registry.
func NewCachedCredentialService(
	service CredentialService,
	rdb *redis.Client,
	ttl time.Duration,
	logger *zap.SugaredLogger,
) CredentialService {
	return &cachedCredentialService{
		CredentialService: service,
		rdb:               rdb,
		ttl:               ttl,
		now:               time.Now,
		logger:            logger,
	}
}

func NewRedisClient(url string) (*redis.Client, error) {
	options, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(options), nil
}

func (s *cachedCredentialService) IsValid(ctx context.Context, account, class string, at time.Time) (bool, error) {
	credential, err := s.GetCredential(ctx, account, class)
	if err != nil {
		return false, err
	}
	return credential != nil && credential.ValidAt(at), nil
}

func (s *cachedCredentialService) GetCredential(ctx context.Context, account, class string) (*Credential, error) {
	key := credentialKey(account, class)

	cached, err := s.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var credential *Credential
		if err := json.Unmarshal(cached, &credential); err == nil {
			return credential, nil
		}
		s.logger.Warnw("dropping malformed cached credential", "key", key)
	case !errors.Is(err, redis.Nil):
		s.logger.Errorw("failed to read credential cache", "key", key, "error", err)
	}

	credential, err := s.CredentialService.GetCredential(ctx, account, class)
	if err != nil {
		return nil, err
	}

	ttl := cacheTTL(credential, s.ttl, s.now())
	if ttl <= 0 {
		return credential, nil
	}

	value, err := json.Marshal(credential)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		s.logger.Errorw("failed to write credential cache", "key", key, "error", err)
	}

	return credential, nil
}

func credentialKey(account, class string) string {
	return "credential:" + class + ":" + account
}

// cacheTTL never lets an entry outlive the credential it describes.
func cacheTTL(credential *Credential, ttl time.Duration, now time.Time) time.Duration {
	if credential == nil || credential.ExpiresAt == nil {
		return ttl
	}
	if remaining := credential.ExpiresAt.Sub(now); remaining < ttl {
		return remaining
	}
	return ttl
}
