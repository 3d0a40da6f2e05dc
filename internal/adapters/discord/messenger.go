package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"recruitbot/internal/ports/output"
)

var _ output.Messenger = (*Messenger)(nil)

// Messenger posts channel messages through the bot session. Only role
// mentions are allowed to ping.
type Messenger struct {
	session *discordgo.Session
}

func NewMessenger(s *discordgo.Session) *Messenger {
	return &Messenger{session: s}
}

func (m *Messenger) SendChannelMessage(ctx context.Context, channelID, content string) error {
	_, err := m.session.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Content: content,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeRoles},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("channel %s: %w", channelID, err)
	}
	return nil
}
