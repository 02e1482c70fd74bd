package repository

import (
	"context"

	"shareit/internal/domain/comment"
	"shareit/internal/infra"
	"shareit/internal/infra/repository/converter"
	sqlc "shareit/internal/infra/sqlc/generated"
)

type CommentWriteQueries interface {
	CreateComment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateCommentParams) (sqlc.Comments, error)
}

type CommentRepository struct {
	queries CommentWriteQueries
	db      sqlc.DBTX
}

func NewCommentRepository(queries CommentWriteQueries, db sqlc.DBTX) *CommentRepository {
	return &CommentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, tx sqlc.DBTX, c *comment.Comment) (int64, error) {
	row, err := r.queries.CreateComment(ctx, tx, converter.CommentToCreateParams(c))
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create comment", err)
	}
	return row.ID, nil
}
