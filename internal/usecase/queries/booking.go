package queries

import (
	"context"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)
	FindAll(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, bookingID, requesterID int64) (*BookingView, error)
	ListForBooker(ctx context.Context, bookerID int64, state booking.State) ([]*BookingView, error)
	ListForOwner(ctx context.Context, ownerID int64, state booking.State) ([]*BookingView, error)
}

// Scope decides whose bookings a listing covers.
type Scope struct {
	userID int64
	byItem bool
}

func BookerScope(bookerID int64) Scope { return Scope{userID: bookerID} }

func OwnerScope(ownerID int64) Scope { return Scope{userID: ownerID, byItem: true} }

func (s Scope) UserID() int64 { return s.userID }

func (s Scope) filter(w booking.Window) BookingFilter {
	id := s.userID
	if s.byItem {
		return BookingFilter{OwnerID: &id, Window: w}
	}
	return BookingFilter{BookerID: &id, Window: w}
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	users    UserReadStore
	clock    clock.Clock
}

func NewBookingQueries(bookings BookingReadStore, users UserReadStore, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{
		bookings: bookings,
		users:    users,
		clock:    clk,
	}
}

// GetByID hides bookings from anyone but the booker and the item owner by
// reporting them as missing.
func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, requesterID int64) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !booking.IsVisibleTo(requesterID, view.BookerID, view.OwnerID) {
		return nil, errs.Mark(ErrBookingNotFound, errs.ErrNotFound)
	}

	return view, nil
}

func (q *bookingQueriesImpl) ListForBooker(ctx context.Context, bookerID int64, state booking.State) ([]*BookingView, error) {
	return q.list(ctx, BookerScope(bookerID), state)
}

func (q *bookingQueriesImpl) ListForOwner(ctx context.Context, ownerID int64, state booking.State) ([]*BookingView, error) {
	return q.list(ctx, OwnerScope(ownerID), state)
}

func (q *bookingQueriesImpl) list(ctx context.Context, scope Scope, state booking.State) ([]*BookingView, error) {
	if err := requireUser(ctx, q.users, scope.UserID()); err != nil {
		return nil, err
	}
	if state == nil {
		state = booking.StateAll
	}

	views, err := q.bookings.FindAll(ctx, scope.filter(state.Window(q.clock.Now())))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if views == nil {
		views = []*BookingView{}
	}
	return views, nil
}
