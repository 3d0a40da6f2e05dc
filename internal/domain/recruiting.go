package domain

import (
	"strings"

	"recruitbot/internal/domain/entities"
)

const (
	RecruitingRoomName = "recruiting"
	recruitingPrefix   = "Recruiting - "
)

// FindRecruitingEvent returns the first event held in a room named
// "recruiting" (any casing). Only the first match is reported: a second
// simultaneous recruiting session is ignored for that tick.
func FindRecruitingEvent(events []entities.RunningEvent) (entities.RunningEvent, bool) {
	for _, ev := range events {
		for _, room := range ev.Rooms {
			if strings.EqualFold(room.Name, RecruitingRoomName) {
				return ev, true
			}
		}
	}
	return entities.RunningEvent{}, false
}

// SponsorName strips the "Recruiting - " prefix from a schedule title.
func SponsorName(title string) string {
	return strings.TrimSpace(strings.Replace(title, recruitingPrefix, "", 1))
}
