package discord

import (
	"github.com/bwmarrin/discordgo"
)

func deferEphemeral(s *discordgo.Session, i *discordgo.Interaction) error {
	return s.InteractionRespond(i, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Flags: discordgo.MessageFlagsEphemeral,
		},
	})
}

func editResponse(s *discordgo.Session, i *discordgo.Interaction, content string) {
	_, _ = s.InteractionResponseEdit(i, &discordgo.WebhookEdit{Content: &content})
}
