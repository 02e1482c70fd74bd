package builder

import (
	"time"

	"shareit/internal/domain/comment"
	reqdto "shareit/internal/handler/dto/request"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CommentBuilder struct {
	ID         int64
	ItemID     int64
	AuthorID   int64
	AuthorName string
	Text       string
	Created    time.Time
}

func NewCommentBuilder() *CommentBuilder {
	return &CommentBuilder{
		ID:         1,
		ItemID:     10,
		AuthorID:   200,
		AuthorName: "Boris",
		Text:       "Worked perfectly",
		Created:    time.Date(2050, 1, 2, 9, 0, 0, 0, time.UTC),
	}
}

func (c *CommentBuilder) With(mutate func(*CommentBuilder)) *CommentBuilder {
	mutate(c)
	return c
}

func (c *CommentBuilder) BuildDomain() (*comment.Comment, error) {
	text, err := comment.NewText(c.Text)
	if err != nil {
		return nil, err
	}
	return comment.ReconstructComment(c.ID, c.ItemID, c.AuthorID, text, c.Created), nil
}

func (c *CommentBuilder) BuildInfra() sqlc.Comments {
	return sqlc.Comments{
		ID:       c.ID,
		Text:     c.Text,
		ItemID:   c.ItemID,
		AuthorID: c.AuthorID,
		Created:  pgtype.Timestamptz{Time: c.Created, Valid: true},
	}
}

func (c *CommentBuilder) BuildViewRow() sqlc.GetCommentViewRow {
	return sqlc.GetCommentViewRow{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Created:    pgtype.Timestamptz{Time: c.Created, Valid: true},
	}
}

func (c *CommentBuilder) BuildViewQuery() *queries.CommentView {
	return &queries.CommentView{
		ID:         c.ID,
		Text:       c.Text,
		ItemID:     c.ItemID,
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Created:    c.Created,
	}
}

func (c *CommentBuilder) BuildCreateRequestDTO() reqdto.CreateCommentRequest {
	return reqdto.CreateCommentRequest{Text: c.Text}
}
