package configs

type Notifications struct {
	TelegramToken  string `env:"TELEGRAM_CONSENT_BOT_TOKEN"`
	TelegramChatID int64  `env:"TELEGRAM_NOTIFICATIONS_CHAT_ID"`
	Discord        Discord
}

type Discord struct {
	Token     string `env:"DISCORD_BOT_TOKEN"`
	ChannelID string `env:"DISCORD_NOTIFICATIONS_CHANNEL_ID"`
}

func (c Discord) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}
