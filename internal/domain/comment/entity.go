package comment

import (
	"context"
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrEmptyText      = errs.New("comment text cannot be empty")
	ErrTextTooLong    = errs.New("comment text exceeds maximum length")
	ErrNotEligible    = errs.New("author has no finished approved booking of this item")
	ErrInvalidItem    = errs.New("comment item must be set")
	ErrInvalidAuthor  = errs.New("comment author must be set")
	ErrMissingService = errs.New("comment services are not configured")
)

type Comment struct {
	id       int64
	itemID   int64
	authorID int64
	text     Text
	created  time.Time
}

// NewComment admits a comment only when the author has an approved booking
// of the item that ended strictly before now.
func NewComment(ctx context.Context, services *Services, itemID, authorID int64, text Text) (*Comment, error) {
	if services == nil || services.Clock == nil || services.EligibilityChecker == nil {
		return nil, ErrMissingService
	}
	if itemID <= 0 {
		return nil, ErrInvalidItem
	}
	if authorID <= 0 {
		return nil, ErrInvalidAuthor
	}

	now := services.Clock.Now()
	last, err := services.EligibilityChecker.LastFinishedBooking(ctx, EligibilityInput{
		ItemID:   itemID,
		AuthorID: authorID,
		Now:      now,
	})
	if err != nil {
		return nil, err
	}
	if !IsEligible(last, authorID, now) {
		return nil, ErrNotEligible
	}

	return &Comment{
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  now,
	}, nil
}

func IsEligible(last *FinishedBooking, authorID int64, now time.Time) bool {
	if last == nil {
		return false
	}
	return last.BookerID == authorID && last.Approved && last.End.Before(now)
}

func ReconstructComment(id, itemID, authorID int64, text Text, created time.Time) *Comment {
	return &Comment{
		id:       id,
		itemID:   itemID,
		authorID: authorID,
		text:     text,
		created:  created,
	}
}

func (c *Comment) ID() int64          { return c.id }
func (c *Comment) ItemID() int64      { return c.itemID }
func (c *Comment) AuthorID() int64    { return c.authorID }
func (c *Comment) Text() Text         { return c.text }
func (c *Comment) Created() time.Time { return c.created }
