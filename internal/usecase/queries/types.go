package queries

import (
	"time"

	"shareit/internal/domain/booking"
)

// BookingView is the read model behind every booking response. Item and user
// fields reflect their current state, not a snapshot at booking time.
type BookingView struct {
	ID          int64     `json:"id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Status      string    `json:"status"`
	ItemID      int64     `json:"item_id"`
	ItemName    string    `json:"item_name"`
	OwnerID     int64     `json:"owner_id"`
	OwnerName   string    `json:"owner_name"`
	BookerID    int64     `json:"booker_id"`
	BookerName  string    `json:"booker_name"`
	BookerEmail string    `json:"booker_email"`
}

type UserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CommentView struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	ItemID     int64     `json:"item_id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Created    time.Time `json:"created"`
}

// BookingFilter is the single parameterized listing query. Exactly one of
// BookerID or OwnerID is set by the scopes in this package.
type BookingFilter struct {
	BookerID *int64
	OwnerID  *int64
	Window   booking.Window
}
