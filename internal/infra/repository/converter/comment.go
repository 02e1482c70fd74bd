package converter

import (
	"shareit/internal/domain/comment"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
)

func CommentToCreateParams(c *comment.Comment) sqlc.CreateCommentParams {
	return sqlc.CreateCommentParams{
		Text:     c.Text().String(),
		ItemID:   c.ItemID(),
		AuthorID: c.AuthorID(),
		Created:  pgconv.TimeToPgtype(c.Created()),
	}
}
