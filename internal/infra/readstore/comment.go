package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/queries"
)

type CommentViewQueries interface {
	GetCommentView(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetCommentViewRow, error)
}

type CommentReadStore struct {
	queries CommentViewQueries
	db      sqlc.DBTX
}

func NewCommentReadStore(queries CommentViewQueries, db sqlc.DBTX) *CommentReadStore {
	return &CommentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CommentReadStore) FindByID(ctx context.Context, id int64) (*queries.CommentView, error) {
	row, err := r.queries.GetCommentView(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("comment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get comment view by id", err)
	}
	return &queries.CommentView{
		ID:         row.ID,
		Text:       row.Text,
		ItemID:     row.ItemID,
		AuthorID:   row.AuthorID,
		AuthorName: row.AuthorName,
		Created:    pgconv.TimeFromPgtype(row.Created),
	}, nil
}
