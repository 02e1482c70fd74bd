// Package datetime handles the wire format for booking timestamps.
//
// Clients historically send and receive local date-times without an offset
// ("2050-01-01T10:00:00"). Those are interpreted in a configured zone. Inputs
// carrying an explicit offset (RFC 3339) are accepted as well.
package datetime

import (
	"strconv"
	"strings"
	"time"

	"shareit/internal/pkg/errs"
)

const LocalLayout = "2006-01-02T15:04:05"

var ErrInvalidDateTime = errs.New("invalid date-time")

var localLayouts = []string{
	LocalLayout,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
}

func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errs.Wrap(ErrInvalidDateTime, "empty value")
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if loc == nil {
		loc = time.UTC
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.Wrap(ErrInvalidDateTime, strconv.Quote(s))
}

func Format(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return t.In(loc).Format(LocalLayout)
}
