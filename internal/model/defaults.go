package model

import (
	"time"

	"github.com/google/uuid"
)

// Seed values for the party created on first run.
const (
	DefaultPartyName     = "Emmy's Birthday"
	DefaultPartyLocation = "Our Home"
)

// DefaultPartyDate returns November 23 at 14:00 of now's calendar year, in
// now's location.
func DefaultPartyDate(now time.Time) time.Time {
	return time.Date(now.Year(), time.November, 23, 14, 0, 0, 0, now.Location())
}

// DefaultParty returns the party used when nothing has been persisted yet.
func DefaultParty(now time.Time) *Party {
	return &Party{
		ID:       uuid.New(),
		Name:     DefaultPartyName,
		Date:     DefaultPartyDate(now),
		Location: DefaultPartyLocation,
	}
}
