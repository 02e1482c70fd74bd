package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	sharedmock "shareit/internal/mock/shared"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	bookings *sharedmock.MockBookingRepository
	comments *sharedmock.MockCommentRepository
}

// newTxMocks wires a UnitOfWork whose Within runs the callback against a mock Tx.
func newTxMocks(t *testing.T) *txMocks {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &txMocks{
		uow:      sharedmock.NewMockUnitOfWork(ctrl),
		tx:       sharedmock.NewMockTx(ctrl),
		reads:    sharedmock.NewMockCommandReads(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		comments: sharedmock.NewMockCommentRepository(ctrl),
	}
	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		}).AnyTimes()
	m.tx.EXPECT().Reads().Return(m.reads).AnyTimes()
	m.tx.EXPECT().Bookings().Return(m.bookings).AnyTimes()
	m.tx.EXPECT().Comments().Return(m.comments).AnyTimes()
	m.tx.EXPECT().DB().Return(sqlc.DBTX(nil)).AnyTimes()
	return m
}

var (
	bookingStart = time.Date(2050, 1, 1, 10, 0, 0, 0, time.UTC)
	bookingEnd   = time.Date(2050, 1, 1, 11, 0, 0, 0, time.UTC)
)

func notFound() error {
	return infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func TestBookingCreate(t *testing.T) {
	const (
		bookerID = int64(2)
		ownerID  = int64(1)
		itemID   = int64(10)
	)
	req := commands.CreateBookingRequest{ItemID: itemID, Start: bookingStart, End: bookingEnd}
	availableItem := &shared.ItemSnapshot{ID: itemID, Name: "drill", OwnerID: ownerID, Available: true}

	t.Run("success: persists a WAITING booking", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(availableItem, nil)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) (int64, error) {
				assert.Equal(t, booking.StatusWaiting, b.Status())
				assert.Equal(t, bookerID, b.BookerID())
				assert.Equal(t, ownerID, b.OwnerID())
				assert.True(t, b.Start().Equal(bookingStart))
				return 42, nil
			})

		res, err := commands.NewBookingUseCase(m.uow).Create(context.Background(), req, bookerID)

		require.NoError(t, err)
		assert.Equal(t, int64(42), res.BookingID)
	})

	t.Run("error: unknown booker is NotFound", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(nil, notFound())

		_, err := commands.NewBookingUseCase(m.uow).Create(context.Background(), req, bookerID)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, errs.Is(err, commands.ErrUserNotFound))
	})

	t.Run("error: unknown item is NotFound", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(nil, notFound())

		_, err := commands.NewBookingUseCase(m.uow).Create(context.Background(), req, bookerID)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, errs.Is(err, commands.ErrItemNotFound))
	})

	t.Run("error: unavailable item is NotAvailable and nothing is stored", func(t *testing.T) {
		m := newTxMocks(t)
		unavailable := *availableItem
		unavailable.Available = false
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(&unavailable, nil)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := commands.NewBookingUseCase(m.uow).Create(context.Background(), req, bookerID)

		assert.True(t, errs.Is(err, errs.ErrNotAvailable))
	})

	t.Run("error: inverted period is BadRequestParam", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(availableItem, nil)

		bad := commands.CreateBookingRequest{ItemID: itemID, Start: bookingEnd, End: bookingStart}
		_, err := commands.NewBookingUseCase(m.uow).Create(context.Background(), bad, bookerID)

		assert.True(t, errs.Is(err, errs.ErrBadRequestParam))
	})

	t.Run("error: insert failure is a database error", func(t *testing.T) {
		m := newTxMocks(t)
		m.reads.EXPECT().UserByID(gomock.Any(), bookerID).Return(&shared.UserSnapshot{ID: bookerID}, nil)
		m.reads.EXPECT().ItemByID(gomock.Any(), itemID).Return(availableItem, nil)
		m.bookings.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), assert.AnError)

		_, err := commands.NewBookingUseCase(m.uow).Create(context.Background(), req, bookerID)

		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}

func TestBookingDecide(t *testing.T) {
	const (
		bookingID = int64(7)
		ownerID   = int64(1)
		bookerID  = int64(2)
	)
	snapshot := func(status booking.Status) *shared.BookingSnapshot {
		return &shared.BookingSnapshot{
			ID: bookingID, ItemID: 10, OwnerID: ownerID, BookerID: bookerID,
			Start: bookingStart, End: bookingEnd, Status: status.String(),
		}
	}

	tests := []struct {
		name       string
		actorID    int64
		approved   bool
		snap       *shared.BookingSnapshot
		readErr    error
		wantStatus booking.Status
		wantErr    error
	}{
		{name: "owner approves", actorID: ownerID, approved: true, snap: snapshot(booking.StatusWaiting), wantStatus: booking.StatusApproved},
		{name: "owner rejects", actorID: ownerID, approved: false, snap: snapshot(booking.StatusWaiting), wantStatus: booking.StatusRejected},
		{name: "booker cannot decide", actorID: bookerID, approved: true, snap: snapshot(booking.StatusWaiting), wantErr: errs.ErrNotAvailable},
		{name: "stranger cannot decide", actorID: 99, approved: true, snap: snapshot(booking.StatusWaiting), wantErr: errs.ErrNotAvailable},
		{name: "already approved", actorID: ownerID, approved: false, snap: snapshot(booking.StatusApproved), wantErr: errs.ErrConflict},
		{name: "already rejected", actorID: ownerID, approved: true, snap: snapshot(booking.StatusRejected), wantErr: errs.ErrConflict},
		{name: "missing booking", actorID: ownerID, approved: true, readErr: notFound(), wantErr: errs.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTxMocks(t)
			m.reads.EXPECT().BookingByIDForUpdate(gomock.Any(), bookingID).Return(tt.snap, tt.readErr)
			if tt.wantErr == nil {
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, b *booking.Booking) error {
						assert.Equal(t, tt.wantStatus, b.Status())
						return nil
					})
			} else {
				m.bookings.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			}

			err := commands.NewBookingUseCase(m.uow).Decide(context.Background(), bookingID, tt.actorID, tt.approved)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
		})
	}
}
