package notifier

import (
	"context"

	"consent_governance_system/internal/db/models"

	"github.com/bwmarrin/discordgo"
)

type discord struct {
	session   *discordgo.Session
	channelID string
}

func NewDiscord(token, channelID string) (Notifier, error) {
	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, err
	}

	return &discord{session: session, channelID: channelID}, nil
}

func (d *discord) Notify(_ context.Context, proposal *models.Proposal) error {
	_, err := d.session.ChannelMessageSend(d.channelID, OutcomeMessage(proposal))
	return err
}
