package utils

import (
	"fmt"
	"sync/atomic"
	"time"
)

var location atomic.Pointer[time.Location]

// SetLocation sets the time zone used by Now and PrettyDate, e.g. "America/New_York".
func SetLocation(name string) error {
	if name == "" {
		return nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load location %q: %w", name, err)
	}
	location.Store(loc)
	return nil
}

// Location returns the configured location, UTC when unset.
func Location() *time.Location {
	if loc := location.Load(); loc != nil {
		return loc
	}
	return time.UTC
}

// Now returns the current time in the configured location.
func Now() time.Time {
	return time.Now().In(Location())
}

// PrettyDate formats t for human readable messages.
func PrettyDate(t time.Time) string {
	return t.In(Location()).Format("Mon, 02 Jan 2006 15:04 MST")
}
