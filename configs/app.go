package configs

type App struct {
	Environment     string `env:"ENVIRONMENT" envDefault:"dev"`
	CommunityName   string `env:"COMMUNITY_NAME" envDefault:"the community"`
	HealthCheckAddr string `env:"HEALTH_CHECK_ADDR" envDefault:":8080"`
}

func (c App) IsDevEnvironment() bool {
	return c.Environment == "dev"
}
