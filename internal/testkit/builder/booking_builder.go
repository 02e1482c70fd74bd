package builder

import (
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	reqdto "shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/datetime"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	ID          int64
	ItemID      int64
	ItemName    string
	OwnerID     int64
	OwnerName   string
	BookerID    int64
	BookerName  string
	BookerEmail string
	Start       time.Time
	End         time.Time
	Status      booking.Status
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:          1,
		ItemID:      10,
		ItemName:    "Cordless drill",
		OwnerID:     100,
		OwnerName:   "Olga",
		BookerID:    200,
		BookerName:  "Boris",
		BookerEmail: "boris@example.com",
		Start:       time.Date(2050, 1, 1, 10, 0, 0, 0, time.UTC),
		End:         time.Date(2050, 1, 1, 11, 0, 0, 0, time.UTC),
		Status:      booking.StatusWaiting,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(s booking.Status) *BookingBuilder {
	b.Status = s
	return b
}

func (b *BookingBuilder) WithPeriod(start, end time.Time) *BookingBuilder {
	b.Start, b.End = start, end
	return b
}

// BuildDomain returns a new WAITING booking of an available item.
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	it, err := item.NewItem(b.ItemID, b.ItemName, b.OwnerID, true)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(it, b.BookerID, b.Start, b.End)
}

func (b *BookingBuilder) BuildReconstructed() (*booking.Booking, error) {
	return booking.ReconstructBooking(b.ID, b.ItemID, b.OwnerID, b.BookerID, b.Start, b.End, b.Status)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:        b.ID,
		StartTime: pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.End, Valid: true},
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		Status:    b.Status.String(),
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewRow {
	return sqlc.GetBookingViewRow{
		ID:          b.ID,
		StartTime:   pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:     pgtype.Timestamptz{Time: b.End, Valid: true},
		Status:      b.Status.String(),
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		OwnerID:     b.OwnerID,
		OwnerName:   b.OwnerName,
		BookerID:    b.BookerID,
		BookerName:  b.BookerName,
		BookerEmail: b.BookerEmail,
	}
}

func (b *BookingBuilder) BuildListRow() sqlc.ListBookingsRow {
	return sqlc.ListBookingsRow(b.BuildViewRow())
}

func (b *BookingBuilder) BuildForUpdateRow() sqlc.GetBookingByIDForUpdateRow {
	return sqlc.GetBookingByIDForUpdateRow{
		ID:        b.ID,
		StartTime: pgtype.Timestamptz{Time: b.Start, Valid: true},
		EndTime:   pgtype.Timestamptz{Time: b.End, Valid: true},
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		Status:    b.Status.String(),
		OwnerID:   b.OwnerID,
	}
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	return &shared.BookingSnapshot{
		ID:       b.ID,
		ItemID:   b.ItemID,
		OwnerID:  b.OwnerID,
		BookerID: b.BookerID,
		Start:    b.Start,
		End:      b.End,
		Status:   b.Status.String(),
	}
}

func (b *BookingBuilder) BuildViewQuery() *queries.BookingView {
	return &queries.BookingView{
		ID:          b.ID,
		Start:       b.Start,
		End:         b.End,
		Status:      b.Status.String(),
		ItemID:      b.ItemID,
		ItemName:    b.ItemName,
		OwnerID:     b.OwnerID,
		OwnerName:   b.OwnerName,
		BookerID:    b.BookerID,
		BookerName:  b.BookerName,
		BookerEmail: b.BookerEmail,
	}
}

// BuildCreateRequestDTO renders start and end in the zone-less wire format.
func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ItemID: b.ItemID,
		Start:  datetime.Format(b.Start, time.UTC),
		End:    datetime.Format(b.End, time.UTC),
	}
}
