package comment

import (
	"context"
	"time"

	"shareit/internal/pkg/clock"
)

type Services struct {
	Clock              clock.Clock
	EligibilityChecker EligibilityChecker
}

// FinishedBooking is the most recently ended qualifying booking of an item by a user.
type FinishedBooking struct {
	BookingID int64
	BookerID  int64
	Approved  bool
	End       time.Time
}

type EligibilityInput struct {
	ItemID   int64
	AuthorID int64
	Now      time.Time
}

type EligibilityChecker interface {
	// LastFinishedBooking returns nil when the author has no qualifying booking.
	LastFinishedBooking(ctx context.Context, input EligibilityInput) (*FinishedBooking, error)
}
