package alert

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Alerter pushes operational notices to the clinic's ops channel so the
// front desk gets pinged even when nobody has a portal tab open.
type Alerter interface {
	Notify(message string) error
}

type DiscordAlerter struct {
	discord   *discordgo.Session
	channelID string
}

func NewDiscordAlerter(botToken, channelID string) (*DiscordAlerter, error) {
	discord, err := discordgo.New("Bot " + botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	return &DiscordAlerter{
		discord:   discord,
		channelID: channelID,
	}, nil
}

func (a *DiscordAlerter) Notify(message string) error {
	_, err := a.discord.ChannelMessageSend(a.channelID, message)
	return err
}

// NopAlerter is used when no Discord bot is configured.
type NopAlerter struct{}

func (NopAlerter) Notify(string) error { return nil }
