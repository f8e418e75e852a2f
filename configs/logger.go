package configs

type Logger struct {
	AppName string `env:"APP_NAME" envDefault:"consent_governance_system"`
	URL     string `env:"LOKI_URL"`
}
