package shared

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Comments() CommentRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

// CommandReads are the lookups write operations validate against. Inside a
// Tx they take row locks where noted so checks and writes cannot interleave.
type CommandReads interface {
	UserByID(ctx context.Context, id int64) (*UserSnapshot, error)
	// ItemByID share-locks the item row until the transaction ends.
	ItemByID(ctx context.Context, id int64) (*ItemSnapshot, error)
	// BookingByIDForUpdate row-locks the booking until the transaction ends.
	BookingByIDForUpdate(ctx context.Context, id int64) (*BookingSnapshot, error)
	// LastFinishedBooking returns the booker's booking of the item with the
	// latest end strictly before now, optionally restricted to one status.
	LastFinishedBooking(ctx context.Context, bookerID, itemID int64, now time.Time, status *booking.Status) (*BookingSnapshot, error)
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) error
}

type CommentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (int64, error)
}
