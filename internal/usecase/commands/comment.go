package commands

import (
	"context"
	"log/slog"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/pkg/metrics"
	"shareit/internal/usecase/shared"
)

type CreateCommentRequest struct {
	ItemID int64
	Text   string
}

type CreateCommentResult struct {
	CommentID int64
}

type CommentCommands interface {
	Create(ctx context.Context, req CreateCommentRequest, authorID int64) (*CreateCommentResult, error)
}

type commentUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommentUseCase(uow shared.UnitOfWork, clk clock.Clock) CommentCommands {
	return &commentUseCaseImpl{uow: uow, clock: clk}
}

func (uc *commentUseCaseImpl) Create(ctx context.Context, req CreateCommentRequest, authorID int64) (*CreateCommentResult, error) {
	text, err := comment.NewText(req.Text)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrBadRequestParam)
	}

	var createdID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().UserByID(ctx, authorID); err != nil {
			return notFoundAs(err, ErrUserNotFound)
		}
		if _, err := tx.Reads().ItemByID(ctx, req.ItemID); err != nil {
			return notFoundAs(err, ErrItemNotFound)
		}

		services := &comment.Services{
			Clock:              uc.clock,
			EligibilityChecker: approvedBookingChecker{reads: tx.Reads()},
		}
		c, err := comment.NewComment(ctx, services, req.ItemID, authorID, text)
		if err != nil {
			if errs.Is(err, comment.ErrNotEligible) {
				return errs.Mark(err, errs.ErrBadRequestParam)
			}
			return err
		}

		id, err := tx.Comments().Create(ctx, tx.DB(), c)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		createdID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCommentCreated()
	slog.Info("comment created",
		"comment_id", createdID,
		"item_id", req.ItemID,
		"author_id", authorID)
	return &CreateCommentResult{CommentID: createdID}, nil
}

// approvedBookingChecker only counts approved bookings as finished stays.
type approvedBookingChecker struct {
	reads shared.CommandReads
}

func (c approvedBookingChecker) LastFinishedBooking(ctx context.Context, input comment.EligibilityInput) (*comment.FinishedBooking, error) {
	approved := booking.StatusApproved
	snap, err := c.reads.LastFinishedBooking(ctx, input.AuthorID, input.ItemID, input.Now, &approved)
	if err != nil {
		return nil, notFoundAsNil(err)
	}
	if snap == nil {
		return nil, nil
	}
	return &comment.FinishedBooking{
		BookingID: snap.ID,
		BookerID:  snap.BookerID,
		Approved:  snap.Status == booking.StatusApproved.String(),
		End:       snap.End,
	}, nil
}

func notFoundAsNil(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return nil
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
