package booking

import (
	"time"

	"shareit/internal/domain/item"
	"shareit/internal/pkg/errs"
)

var (
	ErrInvalidPeriod    = errs.New("booking start must be before end")
	ErrItemNotAvailable = errs.New("item is not available for booking")
	ErrNotItemOwner     = errs.New("only the item owner can decide on a booking")
	ErrAlreadyDecided   = errs.New("booking has already been decided")
	ErrInvalidStatus    = errs.New("invalid booking status")
)

type Booking struct {
	id       int64
	itemID   int64
	ownerID  int64
	bookerID int64
	period   Period
	status   Status
}

// NewBooking creates a WAITING booking. Item availability is checked before
// the period so an unavailable item is reported as such even with bad dates.
func NewBooking(it *item.Item, bookerID int64, start, end time.Time) (*Booking, error) {
	if !it.IsAvailable() {
		return nil, ErrItemNotAvailable
	}

	period, err := NewPeriod(start, end)
	if err != nil {
		return nil, err
	}

	return &Booking{
		itemID:   it.ID(),
		ownerID:  it.OwnerID(),
		bookerID: bookerID,
		period:   period,
		status:   StatusWaiting,
	}, nil
}

func ReconstructBooking(id, itemID, ownerID, bookerID int64, start, end time.Time, status Status) (*Booking, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Booking{
		id:       id,
		itemID:   itemID,
		ownerID:  ownerID,
		bookerID: bookerID,
		period:   Period{start: start, end: end},
		status:   status,
	}, nil
}

// Decide records the owner's decision. A booking is decided exactly once.
func (b *Booking) Decide(actorID int64, approved bool) error {
	if actorID != b.ownerID {
		return ErrNotItemOwner
	}
	if b.status.IsTerminal() {
		return ErrAlreadyDecided
	}
	b.status = decisionStatus(approved)
	return nil
}

func (b *Booking) IsVisibleTo(userID int64) bool {
	return IsVisibleTo(userID, b.bookerID, b.ownerID)
}

// IsVisibleTo is shared with read models that never materialize a Booking.
func IsVisibleTo(userID, bookerID, ownerID int64) bool {
	return userID == bookerID || userID == ownerID
}

func (b *Booking) ID() int64        { return b.id }
func (b *Booking) ItemID() int64    { return b.itemID }
func (b *Booking) OwnerID() int64   { return b.ownerID }
func (b *Booking) BookerID() int64  { return b.bookerID }
func (b *Booking) Start() time.Time { return b.period.start }
func (b *Booking) End() time.Time   { return b.period.end }
func (b *Booking) Status() Status   { return b.status }
