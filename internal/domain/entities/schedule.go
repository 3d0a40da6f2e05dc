package entities

import "time"

// Room is where a running event takes place.
type Room struct {
	ID   string
	Name string
}

// RunningEvent is one schedule entry reported as running "now". Snapshots
// are rebuilt on every poll and never persisted.
type RunningEvent struct {
	ID    string
	Title string
	Start time.Time
	End   time.Time
	Rooms []Room
}

// CurrentDay is the conference day currently in progress.
type CurrentDay struct {
	ConferenceID  string
	IsRunning     bool
	Day           string
	RunningEvents []RunningEvent
}

type ScheduleKind int

const (
	ScheduleFound ScheduleKind = iota
	// ScheduleEmpty: no conference or no current day. Not an error.
	ScheduleEmpty
	ScheduleFailed
)

func (k ScheduleKind) String() string {
	switch k {
	case ScheduleFound:
		return "found"
	case ScheduleEmpty:
		return "empty"
	case ScheduleFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ScheduleResult is the outcome of one fetch from the schedule source.
// Day is set only for ScheduleFound, Err only for ScheduleFailed.
type ScheduleResult struct {
	Kind ScheduleKind
	Day  *CurrentDay
	Err  error
}

func Found(day *CurrentDay) ScheduleResult { return ScheduleResult{Kind: ScheduleFound, Day: day} }
func Empty() ScheduleResult                { return ScheduleResult{Kind: ScheduleEmpty} }
func Failed(err error) ScheduleResult      { return ScheduleResult{Kind: ScheduleFailed, Err: err} }
