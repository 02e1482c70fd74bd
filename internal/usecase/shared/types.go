package shared

import (
	"time"
)

// Write-side snapshots keep commands independent of read-side view types.

type UserSnapshot struct {
	ID    int64
	Name  string
	Email string
}

type ItemSnapshot struct {
	ID        int64
	Name      string
	OwnerID   int64
	Available bool
}

type BookingSnapshot struct {
	ID       int64
	ItemID   int64
	OwnerID  int64
	BookerID int64
	Start    time.Time
	End      time.Time
	Status   string
}
