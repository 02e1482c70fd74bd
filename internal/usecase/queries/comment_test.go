package queries_test

import (
	"context"
	"testing"

	queriesmock "shareit/internal/mock/queries"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentGetByID(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockCommentReadStore(ctrl)
	q := queries.NewCommentQueries(store)

	t.Run("found", func(t *testing.T) {
		view := &queries.CommentView{ID: 1, Text: "nice", AuthorName: "Bob"}
		store.EXPECT().FindByID(gomock.Any(), int64(1)).Return(view, nil)

		got, err := q.GetByID(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, view, got)
	})

	t.Run("missing", func(t *testing.T) {
		store.EXPECT().FindByID(gomock.Any(), int64(2)).Return(nil, repoNotFound())

		_, err := q.GetByID(context.Background(), 2)

		assert.True(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, errs.Is(err, queries.ErrCommentNotFound))
	})
}
