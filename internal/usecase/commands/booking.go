package commands

import (
	"context"
	"log/slog"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/shared"
)

var (
	ErrUserNotFound    = errs.New("user not found")
	ErrItemNotFound    = errs.New("item not found")
	ErrBookingNotFound = errs.New("booking not found")
)

type CreateBookingRequest struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type CreateBookingResult struct {
	BookingID int64
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest, bookerID int64) (*CreateBookingResult, error)
	Decide(ctx context.Context, bookingID, ownerID int64, approved bool) error
}

type bookingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBookingUseCase(uow shared.UnitOfWork) BookingCommands {
	return &bookingUseCaseImpl{uow: uow}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest, bookerID int64) (*CreateBookingResult, error) {
	var createdID int64
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, bookerID); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}

		snap, err := tx.Reads().ItemByID(ctx, req.ItemID)
		if err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}
		it, err := item.NewItem(snap.ID, snap.Name, snap.OwnerID, snap.Available)
		if err != nil {
			return errs.Wrap(err, "corrupt item row")
		}

		b, err := booking.NewBooking(it, bookerID, req.Start, req.End)
		if err != nil {
			return classifyBookingErr(err)
		}

		id, err := tx.Bookings().Create(ctx, tx.DB(), b)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	slog.Info("booking created",
		"booking_id", createdID,
		"item_id", req.ItemID,
		"booker_id", bookerID)
	return &CreateBookingResult{BookingID: createdID}, nil
}

// Decide runs with the booking row locked, so two concurrent decisions on the
// same booking resolve to one success and one Conflict.
func (uc *bookingUseCaseImpl) Decide(ctx context.Context, bookingID, ownerID int64, approved bool) error {
	var status booking.Status
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().BookingByIDForUpdate(ctx, bookingID)
		if err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}

		b, err := booking.ReconstructBooking(snap.ID, snap.ItemID, snap.OwnerID, snap.BookerID, snap.Start, snap.End, booking.Status(snap.Status))
		if err != nil {
			return errs.Wrap(err, "corrupt booking row")
		}
		if err = b.Decide(ownerID, approved); err != nil {
			return classifyBookingErr(err)
		}

		if err = tx.Bookings().UpdateStatus(ctx, tx.DB(), b); err != nil {
			return notFoundAs(err, ErrBookingNotFound)
		}
		status = b.Status()
		return nil
	})
	if err != nil {
		return err
	}

	metrics.IncBookingDecision(status.String())
	slog.Info("booking decided",
		"booking_id", bookingID,
		"owner_id", ownerID,
		"status", status.String())
	return nil
}

func classifyBookingErr(err error) error {
	switch {
	case errs.Is(err, booking.ErrItemNotAvailable), errs.Is(err, booking.ErrNotItemOwner):
		return errs.Mark(err, errs.ErrNotAvailable)
	case errs.Is(err, booking.ErrAlreadyDecided):
		return errs.Mark(err, errs.ErrConflict)
	case errs.Is(err, booking.ErrInvalidPeriod):
		return errs.Mark(err, errs.ErrBadRequestParam)
	default:
		return err
	}
}

// notFoundAs replaces a repository NOT_FOUND with sentinel and marks every
// other repository failure as a database error.
func notFoundAs(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(sentinel, errs.ErrNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
