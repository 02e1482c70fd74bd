package infra_test

import (
	"errors"
	"fmt"
	"testing"

	"shareit/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapRepoErr(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		kind     []infra.RepositoryErrorKind
		wantKind infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantKind: infra.KindNotFound},
		{name: "wrapped no rows", err: fmt.Errorf("scan: %w", pgx.ErrNoRows), wantKind: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, wantKind: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantKind: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, wantKind: infra.KindCheckViolated},
		{name: "other pg error", err: &pgconn.PgError{Code: "57014"}, wantKind: infra.KindDBFailure},
		{name: "plain error", err: errors.New("connection reset"), wantKind: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("zero rows affected"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, wantKind: infra.KindNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := infra.WrapRepoErr("failed to do thing", tc.err, tc.kind...)
			require.Error(t, err)

			assert.True(t, infra.IsKind(err, tc.wantKind), "got %v", err)
			assert.Contains(t, err.Error(), "failed to do thing")
			assert.ErrorIs(t, err, tc.err)
		})
	}

	t.Run("nil cause still yields a classified error", func(t *testing.T) {
		err := infra.WrapRepoErr("booking missing", nil, infra.KindNotFound)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
		assert.Equal(t, "NOT_FOUND: booking missing", err.Error())
	})

	t.Run("IsKind is false for foreign errors", func(t *testing.T) {
		assert.False(t, infra.IsKind(errors.New("boom"), infra.KindDBFailure))
	})
}
