package domain

import (
	"fmt"
	"time"
)

// Tracking id prefixes, one per submission kind.
const (
	PrefixContact     = "MSG"
	PrefixAppointment = "APT"
	PrefixDevis       = "DEV"
	PrefixApplication = "APP"
)

// NewTrackingID builds a human-readable reference of the form PREFIX-nnnnnn,
// where nnnnnn are the last six digits of the current epoch milliseconds.
// The suffix is unique enough for a human to quote over the phone but is not
// collision-free for concurrent submissions landing in the same
// millisecond-modulo-1e6 window; the reference is informational, not a
// primary key.
func NewTrackingID(prefix string) string {
	return newTrackingIDAt(prefix, time.Now())
}

func newTrackingIDAt(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%06d", prefix, t.UnixMilli()%1_000_000)
}
