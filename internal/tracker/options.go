package tracker

import (
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifeadvance/internal/constants"
)

// Options carries the clock, calendar and ID source shared by all managers.
// Zero values fall back to the wall clock, UTC, random UUIDs and the
// default completion window.
type Options struct {
	Now        func() time.Time
	Location   *time.Location
	NewID      func() string
	WindowDays int
}

func (o Options) withDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	if o.NewID == nil {
		o.NewID = func() string { return uuid.New().String() }
	}
	if o.WindowDays <= 0 {
		o.WindowDays = constants.DefaultCompletionWindowDays
	}
	return o
}
