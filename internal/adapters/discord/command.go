package discord

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"

	"recruitbot/internal/domain"
	"recruitbot/internal/domain/entities"
	"recruitbot/internal/ports/output"
	"recruitbot/pkg/logx"
)

const (
	lunchCommandName = "lunch"
	doneMessageTTL   = time.Second
)

func lunchCommand(t output.T) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        lunchCommandName,
		Description: t.T("en", "command.lunch.description", nil),
		DescriptionLocalizations: &map[discordgo.Locale]string{
			discordgo.Italian: t.T("it", "command.lunch.description", nil),
		},
	}
}

// callerFromInteraction reads the invoking member's permissions. Outside a
// guild there is no member and thus no administrator.
func callerFromInteraction(i *discordgo.Interaction) entities.Caller {
	if i.Member == nil {
		if i.User != nil {
			return entities.Caller{UserID: i.User.ID}
		}
		return entities.Caller{}
	}
	c := entities.Caller{IsAdministrator: i.Member.Permissions&discordgo.PermissionAdministrator != 0}
	if i.Member.User != nil {
		c.UserID = i.Member.User.ID
	}
	return c
}

// HandleLunchCommand acknowledges privately, posts the lunch message, then
// reports the result in the ephemeral reply.
func (h *Handler) HandleLunchCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	locale := string(i.Locale)
	caller := callerFromInteraction(i.Interaction)

	if err := deferEphemeral(s, i.Interaction); err != nil {
		h.log.Error("❌ Accusé de réception /lunch", logx.Err(err))
		return
	}

	err := h.announcements.AnnounceLunch(ctx, caller)
	switch {
	case errors.Is(err, domain.ErrNotAdministrator):
		h.log.Info("/lunch refusé", logx.String("user_id", caller.UserID))
		editResponse(s, i.Interaction, h.translator.T(locale, "command.lunch.denied", nil))
	case err != nil:
		h.log.Error("❌ Annonce du déjeuner", logx.String("user_id", caller.UserID), logx.Err(err))
		editResponse(s, i.Interaction, h.translator.T(locale, "command.lunch.failed", nil))
	default:
		h.log.Info("📣 Annonce du déjeuner publiée", logx.String("user_id", caller.UserID))
		editResponse(s, i.Interaction, h.translator.T(locale, "command.lunch.done", nil))
		time.AfterFunc(doneMessageTTL, func() {
			_ = s.InteractionResponseDelete(i.Interaction)
		})
	}
}
