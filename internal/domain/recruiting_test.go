package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitbot/internal/domain/entities"
)

func event(id string, rooms ...string) entities.RunningEvent {
	ev := entities.RunningEvent{ID: id, Title: "Talk " + id}
	for i, name := range rooms {
		ev.Rooms = append(ev.Rooms, entities.Room{ID: id + "-" + string(rune('a'+i)), Name: name})
	}
	return ev
}

func TestFindRecruitingEvent_NoMatch(t *testing.T) {
	tests := []struct {
		name   string
		events []entities.RunningEvent
	}{
		{name: "nil list", events: nil},
		{name: "no rooms", events: []entities.RunningEvent{event("1")}},
		{name: "other rooms", events: []entities.RunningEvent{event("1", "Sala Lasagna"), event("2", "Open Space", "Sala Ravioli")}},
		{name: "substring only", events: []entities.RunningEvent{event("1", "Recruiting Lounge"), event("2", "pre-recruiting")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := FindRecruitingEvent(tt.events)
			assert.False(t, ok)
		})
	}
}

func TestFindRecruitingEvent_AnyCasingAnyPosition(t *testing.T) {
	for _, name := range []string{"Recruiting", "RECRUITING", "recruiting", "rEcRuItInG"} {
		for pos := 0; pos < 3; pos++ {
			events := []entities.RunningEvent{event("a", "Sala Lasagna"), event("b", "Sala Tortellini"), event("c", "Open Space")}
			events[pos] = event("hit", "Sala Pizza", name)

			got, ok := FindRecruitingEvent(events)
			require.True(t, ok, "room %q at %d", name, pos)
			assert.Equal(t, "hit", got.ID)
		}
	}
}

func TestFindRecruitingEvent_FirstMatchWins(t *testing.T) {
	events := []entities.RunningEvent{
		event("keynote", "Sala Lasagna"),
		event("first", "Recruiting"),
		event("second", "recruiting"),
	}
	got, ok := FindRecruitingEvent(events)
	require.True(t, ok)
	assert.Equal(t, "first", got.ID)
}

func TestSponsorName(t *testing.T) {
	assert.Equal(t, "Acme Corp", SponsorName("Recruiting - Acme Corp"))
	assert.Equal(t, "Acme Corp", SponsorName("  Recruiting - Acme Corp  "))
	assert.Equal(t, "Acme Corp", SponsorName("Acme Corp"))
	assert.Equal(t, "", SponsorName("Recruiting - "))
}

func TestActiveWindow(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	require.NoError(t, err)
	w := ActiveWindow{Days: []int{25, 26, 27, 28}, Location: rome}

	for day := 1; day <= 31; day++ {
		now := time.Date(2023, time.May, day, 12, 0, 0, 0, rome)
		want := day >= 25 && day <= 28
		assert.Equal(t, want, w.Contains(now), "day %d", day)
	}

	// 23:30 UTC on the 24th is already the 25th in Rome.
	assert.True(t, w.Contains(time.Date(2023, time.May, 24, 23, 30, 0, 0, time.UTC)))
	// 22:30 UTC on the 28th is the 29th in Rome (CEST).
	assert.False(t, w.Contains(time.Date(2023, time.May, 28, 22, 30, 0, 0, time.UTC)))
}

func TestParseDays(t *testing.T) {
	days, err := ParseDays(" 25, 26,27 ,28,25")
	require.NoError(t, err)
	assert.Equal(t, []int{25, 26, 27, 28}, days)

	for _, bad := range []string{"", " , ", "0", "32", "x"} {
		_, err := ParseDays(bad)
		assert.Error(t, err, bad)
	}
}
