package readstore

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
	"shareit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

type BookingViewQueries interface {
	GetBookingView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingViewRow, error)
	ListBookings(ctx context.Context, db sqlc.DBTX, arg sqlc.ListBookingsParams) ([]sqlc.ListBookingsRow, error)
	GetBookingByIDForUpdate(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingByIDForUpdateRow, error)
	GetLastFinishedBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.GetLastFinishedBookingParams) (sqlc.Bookings, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingViewQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}
	return toBookingView(sqlc.ListBookingsRow(row)), nil
}

// FindAll returns bookings ordered by end descending, then id ascending.
func (r *BookingReadStore) FindAll(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookings(ctx, r.db, toListParams(filter))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings", err)
	}

	views := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toBookingView(row))
	}
	return views, nil
}

func (r *BookingReadStore) FindForUpdate(ctx context.Context, id int64) (*shared.BookingSnapshot, error) {
	row, err := r.queries.GetBookingByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock booking", err)
	}
	return &shared.BookingSnapshot{
		ID:       row.ID,
		ItemID:   row.ItemID,
		OwnerID:  row.OwnerID,
		BookerID: row.BookerID,
		Start:    pgconv.TimeFromPgtype(row.StartTime),
		End:      pgconv.TimeFromPgtype(row.EndTime),
		Status:   row.Status,
	}, nil
}

// FindLastFinished leaves OwnerID unset; callers only need the booker side.
func (r *BookingReadStore) FindLastFinished(ctx context.Context, bookerID, itemID int64, now time.Time, status *booking.Status) (*shared.BookingSnapshot, error) {
	params := sqlc.GetLastFinishedBookingParams{
		BookerID: bookerID,
		ItemID:   itemID,
		Now:      pgconv.TimeToPgtype(now),
		Status:   statusToPgtype(status),
	}
	row, err := r.queries.GetLastFinishedBooking(ctx, r.db, params)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no finished booking", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get last finished booking", err)
	}
	return &shared.BookingSnapshot{
		ID:       row.ID,
		ItemID:   row.ItemID,
		BookerID: row.BookerID,
		Start:    pgconv.TimeFromPgtype(row.StartTime),
		End:      pgconv.TimeFromPgtype(row.EndTime),
		Status:   row.Status,
	}, nil
}

func toListParams(f queries.BookingFilter) sqlc.ListBookingsParams {
	return sqlc.ListBookingsParams{
		BookerID:   pgconv.Int64PtrToPgtype(f.BookerID),
		OwnerID:    pgconv.Int64PtrToPgtype(f.OwnerID),
		Status:     statusToPgtype(f.Window.Status),
		StartFrom:  pgconv.TimePtrToPgtype(f.Window.StartFrom),
		StartUntil: pgconv.TimePtrToPgtype(f.Window.StartUntil),
		EndFrom:    pgconv.TimePtrToPgtype(f.Window.EndFrom),
		EndUntil:   pgconv.TimePtrToPgtype(f.Window.EndUntil),
	}
}

func statusToPgtype(s *booking.Status) pgtype.Text {
	if s == nil {
		return pgconv.StringPtrToPgtype(nil)
	}
	name := s.String()
	return pgconv.StringPtrToPgtype(&name)
}

func toBookingView(row sqlc.ListBookingsRow) *queries.BookingView {
	return &queries.BookingView{
		ID:          row.ID,
		Start:       pgconv.TimeFromPgtype(row.StartTime),
		End:         pgconv.TimeFromPgtype(row.EndTime),
		Status:      row.Status,
		ItemID:      row.ItemID,
		ItemName:    row.ItemName,
		OwnerID:     row.OwnerID,
		OwnerName:   row.OwnerName,
		BookerID:    row.BookerID,
		BookerName:  row.BookerName,
		BookerEmail: row.BookerEmail,
	}
}
