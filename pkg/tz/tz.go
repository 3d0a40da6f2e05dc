package tz

import (
	"fmt"
	"strings"
	"time"
)

// Rome is the Europe/Rome location (CET/CEST with automatic DST).
var Rome *time.Location

func init() {
	var err error
	Rome, err = time.LoadLocation("Europe/Rome")
	if err != nil {
		panic("tz: load Europe/Rome: " + err.Error())
	}
}

// Load resolves an IANA zone name. An empty name yields Rome.
func Load(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "Europe/Rome" {
		return Rome, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("tz: load %s: %w", name, err)
	}
	return loc, nil
}
