package item

import (
	"strings"

	"shareit/internal/pkg/errs"
)

var (
	ErrEmptyItemName   = errs.New("item name cannot be empty")
	ErrItemNameTooLong = errs.New("item name is too long (max 255 characters)")
	ErrInvalidOwner    = errs.New("item owner must be set")
)

const (
	MaxItemNameLength = 255
)

// Item is the booking-relevant view of a listed item. The catalogue itself
// is owned elsewhere; bookings read its current state.
type Item struct {
	id        int64
	name      string
	ownerID   int64
	available bool
}

func NewItem(id int64, name string, ownerID int64, available bool) (*Item, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if ownerID <= 0 {
		return nil, ErrInvalidOwner
	}

	return &Item{
		id:        id,
		name:      strings.TrimSpace(name),
		ownerID:   ownerID,
		available: available,
	}, nil
}

func validateItemName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyItemName
	}
	if len(name) > MaxItemNameLength {
		return ErrItemNameTooLong
	}
	return nil
}

func (i *Item) IsAvailable() bool { return i.available }

func (i *Item) ID() int64      { return i.id }
func (i *Item) Name() string   { return i.name }
func (i *Item) OwnerID() int64 { return i.ownerID }
