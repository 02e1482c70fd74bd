package request

import (
	"time"

	"shareit/internal/pkg/datetime"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
)

var (
	ErrStartInPast    = errs.New("start must not be in the past")
	ErrEndNotInFuture = errs.New("end must be in the future")
)

// CreateBookingRequest takes start and end as strings so both RFC 3339 and
// zone-less local date-times are accepted.
type CreateBookingRequest struct {
	ItemID int64  `json:"itemId" binding:"required,gt=0"`
	Start  string `json:"start" binding:"required"`
	End    string `json:"end" binding:"required"`
}

// ToCommand interprets zone-less times in loc. Ordering of start and end is
// left to the domain.
func (r CreateBookingRequest) ToCommand(loc *time.Location, now time.Time) (commands.CreateBookingRequest, error) {
	start, err := datetime.Parse(r.Start, loc)
	if err != nil {
		return commands.CreateBookingRequest{}, errs.Wrap(err, "start")
	}
	end, err := datetime.Parse(r.End, loc)
	if err != nil {
		return commands.CreateBookingRequest{}, errs.Wrap(err, "end")
	}
	if start.Before(now) {
		return commands.CreateBookingRequest{}, ErrStartInPast
	}
	if !end.After(now) {
		return commands.CreateBookingRequest{}, ErrEndNotInFuture
	}

	return commands.CreateBookingRequest{
		ItemID: r.ItemID,
		Start:  start,
		End:    end,
	}, nil
}
