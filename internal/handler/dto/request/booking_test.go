package request_test

import (
	"testing"
	"time"

	reqdto "shareit/internal/handler/dto/request"
	"shareit/internal/pkg/datetime"
	"shareit/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToCommand(t *testing.T) {
	now := time.Date(2049, 12, 31, 0, 0, 0, 0, time.UTC)
	berlin, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	t.Run("zone-less times use the configured location", func(t *testing.T) {
		req := reqdto.CreateBookingRequest{ItemID: 1, Start: "2050-01-01T10:00:00", End: "2050-01-01T11:00:00"}

		cmd, err := req.ToCommand(berlin, now)

		require.NoError(t, err)
		assert.Equal(t, int64(1), cmd.ItemID)
		assert.True(t, cmd.Start.Equal(time.Date(2050, 1, 1, 9, 0, 0, 0, time.UTC)))
		assert.True(t, cmd.End.Equal(time.Date(2050, 1, 1, 10, 0, 0, 0, time.UTC)))
	})

	t.Run("RFC 3339 offsets win over the location", func(t *testing.T) {
		req := reqdto.CreateBookingRequest{ItemID: 1, Start: "2050-01-01T10:00:00Z", End: "2050-01-01T11:00:00+01:00"}

		cmd, err := req.ToCommand(berlin, now)

		require.NoError(t, err)
		assert.True(t, cmd.Start.Equal(time.Date(2050, 1, 1, 10, 0, 0, 0, time.UTC)))
		assert.True(t, cmd.End.Equal(time.Date(2050, 1, 1, 10, 0, 0, 0, time.UTC)))
	})

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{name: "start in the past", start: "2049-12-30T10:00:00", end: "2050-01-01T11:00:00", wantErr: reqdto.ErrStartInPast},
		{name: "end not in the future", start: "2049-12-31T00:00:00", end: "2049-12-31T00:00:00", wantErr: reqdto.ErrEndNotInFuture},
		{name: "garbage start", start: "tomorrow", end: "2050-01-01T11:00:00", wantErr: datetime.ErrInvalidDateTime},
		{name: "garbage end", start: "2050-01-01T10:00:00", end: "01/01/2050", wantErr: datetime.ErrInvalidDateTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := reqdto.CreateBookingRequest{ItemID: 1, Start: tt.start, End: tt.end}

			_, err := req.ToCommand(time.UTC, now)

			require.Error(t, err)
			assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
		})
	}

	t.Run("start equal to now is accepted", func(t *testing.T) {
		req := reqdto.CreateBookingRequest{ItemID: 1, Start: "2049-12-31T00:00:00", End: "2049-12-31T01:00:00"}

		_, err := req.ToCommand(time.UTC, now)

		assert.NoError(t, err)
	})
}
