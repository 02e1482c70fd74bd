package repository_test

import (
	"context"
	"testing"

	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	sqlc "shareit/internal/infra/sqlc/generated"
	repositorymock "shareit/internal/mock/repository"
	"shareit/internal/testkit/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCommentRepository_Create(t *testing.T) {
	ctx := context.Background()
	cb := builder.NewCommentBuilder()

	t.Run("success: maps the comment onto insert params", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCommentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCommentRepository(mockQueries, mockDB)

		c, err := cb.BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateComment(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateCommentParams) (sqlc.Comments, error) {
				assert.Equal(t, cb.Text, arg.Text)
				assert.Equal(t, cb.ItemID, arg.ItemID)
				assert.Equal(t, cb.AuthorID, arg.AuthorID)
				assert.True(t, arg.Created.Time.Equal(cb.Created))
				return cb.BuildInfra(), nil
			})

		id, err := repo.Create(ctx, mockDB, c)

		require.NoError(t, err)
		assert.Equal(t, cb.ID, id)
	})

	t.Run("error: unknown author violates foreign key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockCommentWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		repo := repository.NewCommentRepository(mockQueries, mockDB)

		c, err := cb.BuildDomain()
		require.NoError(t, err)

		mockQueries.EXPECT().CreateComment(ctx, mockDB, gomock.Any()).
			Return(sqlc.Comments{}, &pgconn.PgError{Code: "23503"})

		_, err = repo.Create(ctx, mockDB, c)

		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindForeignKeyViolated))
	})
}
