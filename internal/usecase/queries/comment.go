package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

var ErrCommentNotFound = errs.New("comment not found")

type CommentReadStore interface {
	FindByID(ctx context.Context, id int64) (*CommentView, error)
}

type CommentQueries interface {
	GetByID(ctx context.Context, id int64) (*CommentView, error)
}

type commentQueriesImpl struct {
	repo CommentReadStore
}

func NewCommentQueries(repo CommentReadStore) CommentQueries {
	return &commentQueriesImpl{repo: repo}
}

func (q *commentQueriesImpl) GetByID(ctx context.Context, id int64) (*CommentView, error) {
	c, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(ErrCommentNotFound, errs.ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}
