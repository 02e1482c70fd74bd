package response

import (
	"time"

	"shareit/internal/pkg/datetime"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingItemResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	OwnerName string `json:"ownerName"`
}

type BookerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type BookingResponse struct {
	ID     int64               `json:"id"`
	Start  string              `json:"start"`
	End    string              `json:"end"`
	Item   BookingItemResponse `json:"item"`
	Booker BookerResponse      `json:"booker"`
	Status string              `json:"status"`
}

// FromBookingView renders times as zone-less local date-times in loc.
func FromBookingView(v *queries.BookingView, loc *time.Location) (*BookingResponse, error) {
	res := &BookingResponse{}
	// ID and Status share names with the view.
	if err := copier.Copy(res, v); err != nil {
		return nil, errs.Wrap(err, "failed to map booking view")
	}

	res.Start = datetime.Format(v.Start, loc)
	res.End = datetime.Format(v.End, loc)
	res.Item = BookingItemResponse{ID: v.ItemID, Name: v.ItemName, OwnerName: v.OwnerName}
	res.Booker = BookerResponse{ID: v.BookerID, Name: v.BookerName, Email: v.BookerEmail}
	return res, nil
}

func FromBookingViews(views []*queries.BookingView, loc *time.Location) ([]*BookingResponse, error) {
	res := make([]*BookingResponse, len(views))
	for i, v := range views {
		r, err := FromBookingView(v, loc)
		if err != nil {
			return nil, err
		}
		res[i] = r
	}
	return res, nil
}
