package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"
)

// ActiveWindow is the set of days of the month on which polling does real
// work. Days are evaluated in Location.
type ActiveWindow struct {
	Days     []int
	Location *time.Location
}

// Contains reports whether now falls on an active day.
func (w ActiveWindow) Contains(now time.Time) bool {
	loc := w.Location
	if loc == nil {
		loc = time.UTC
	}
	return slices.Contains(w.Days, now.In(loc).Day())
}

// ParseDays reads a comma separated list such as "25,26,27,28".
func ParseDays(s string) ([]int, error) {
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("day %q: %w", part, err)
		}
		if d < 1 || d > 31 {
			return nil, fmt.Errorf("day %d out of range 1..31", d)
		}
		if !slices.Contains(days, d) {
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no active day in %q", s)
	}
	return days, nil
}
