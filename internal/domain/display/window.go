package display

import (
	"time"

	xerrors "shopadmin-service/internal/pkg/errors"
)

// Status classifies a time-bound entity relative to its display window.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusActive    Status = "active"
	StatusExpired   Status = "expired"
)

// TimeWindow is the display window of a banner. Invariant: Start <= End.
type TimeWindow struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Validate enforces the start <= end invariant at creation time.
func (w TimeWindow) Validate() error {
	if w.Start.IsZero() || w.End.IsZero() {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "start and end dates are required")
	}
	if w.End.Before(w.Start) {
		return xerrors.Wrap(xerrors.ErrInvalidInput, "end date must not be before start date")
	}
	return nil
}

// ClassifyWindow is a pure function of (now, start, end): scheduled before
// the window, active inside it (both bounds inclusive), expired after it.
func ClassifyWindow(now, start, end time.Time) Status {
	switch {
	case now.Before(start):
		return StatusScheduled
	case now.After(end):
		return StatusExpired
	default:
		return StatusActive
	}
}
