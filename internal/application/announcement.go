package application

import (
	"context"
	"fmt"
	"time"

	"recruitbot/internal/domain"
	"recruitbot/internal/domain/entities"
	"recruitbot/internal/ports/input"
	"recruitbot/internal/ports/output"
	pkgdiscord "recruitbot/pkg/discord"
)

var _ input.AnnouncementUseCase = (*AnnouncementService)(nil)

// Audience holds where announcements go and whom they tag.
type Audience struct {
	RecruitingChannelID string
	LunchChannelID      string
	LunchRoleID         string
	RecruitingRoleID    string
	JobSeekerRoleID     string
	LunchMenuURL        string
	// Locale of broadcast messages.
	Locale string
	// Location used to print the end of a recruiting session.
	Location *time.Location
}

type AnnouncementService struct {
	messenger  output.Messenger
	translator output.T
	audience   Audience
}

func NewAnnouncementService(messenger output.Messenger, translator output.T, audience Audience) *AnnouncementService {
	return &AnnouncementService{
		messenger:  messenger,
		translator: translator,
		audience:   audience,
	}
}

// AnnounceLunch posts the lunch message. Only administrators may trigger it;
// anyone else gets domain.ErrNotAdministrator and nothing is sent.
func (s *AnnouncementService) AnnounceLunch(ctx context.Context, caller entities.Caller) error {
	if !caller.IsAdministrator {
		return domain.ErrNotAdministrator
	}
	content := s.translator.T(s.audience.Locale, "announce.lunch", map[string]any{
		"LunchRole": pkgdiscord.RoleMention(s.audience.LunchRoleID),
		"MenuURL":   s.audience.LunchMenuURL,
	})
	if err := s.messenger.SendChannelMessage(ctx, s.audience.LunchChannelID, content); err != nil {
		return fmt.Errorf("send lunch announcement: %w", err)
	}
	return nil
}

// AnnounceRecruiting sends exactly one message for event. Deduplication is
// the caller's job.
func (s *AnnouncementService) AnnounceRecruiting(ctx context.Context, event entities.RunningEvent) error {
	content := s.translator.T(s.audience.Locale, "announce.recruiting", map[string]any{
		"RecruitingRole": pkgdiscord.RoleMention(s.audience.RecruitingRoleID),
		"JobSeekerRole":  pkgdiscord.RoleMention(s.audience.JobSeekerRoleID),
		"Sponsor":        domain.SponsorName(event.Title),
		"Until":          pkgdiscord.FormatClock(event.End, s.audience.Location),
	})
	if err := s.messenger.SendChannelMessage(ctx, s.audience.RecruitingChannelID, content); err != nil {
		return fmt.Errorf("send recruiting announcement for %s: %w", event.ID, err)
	}
	return nil
}
