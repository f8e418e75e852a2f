package configs

import "time"

// Redis caches credential registry answers. Caching is off when URL is empty.
type Redis struct {
	URL           string        `env:"REDIS_URL"`
	CredentialTTL time.Duration `env:"CREDENTIAL_CACHE_TTL" envDefault:"5m"`
}

func (c Redis) Enabled() bool {
	return c.URL != ""
}
