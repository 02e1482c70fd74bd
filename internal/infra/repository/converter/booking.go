package converter

import (
	"shareit/internal/domain/booking"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		StartTime: pgconv.TimeToPgtype(b.Start()),
		EndTime:   pgconv.TimeToPgtype(b.End()),
		ItemID:    b.ItemID(),
		BookerID:  b.BookerID(),
		Status:    b.Status().String(),
	}
}

func BookingToStatusParams(b *booking.Booking) sqlc.UpdateBookingStatusParams {
	return sqlc.UpdateBookingStatusParams{
		ID:     b.ID(),
		Status: b.Status().String(),
	}
}
