package configs

type Scheduler struct {
	SweepCron string `env:"SWEEP_CRON" envDefault:"*/5 * * * *"`
}
