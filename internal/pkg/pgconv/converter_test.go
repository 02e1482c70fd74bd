package pgconv_test

import (
	"fmt"
	"testing"
	"time"

	"shareit/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
)

func TestNullableConversions(t *testing.T) {
	t.Run("nil pointers become invalid pgtypes", func(t *testing.T) {
		assert.False(t, pgconv.Int64PtrToPgtype(nil).Valid)
		assert.False(t, pgconv.TimePtrToPgtype(nil).Valid)
		assert.False(t, pgconv.StringPtrToPgtype(nil).Valid)
	})

	t.Run("values round trip", func(t *testing.T) {
		id := int64(42)
		assert.Equal(t, int64(42), pgconv.Int64PtrToPgtype(&id).Int64)

		now := time.Date(2050, 1, 1, 10, 0, 0, 0, time.UTC)
		ts := pgconv.TimePtrToPgtype(&now)
		assert.True(t, ts.Valid)
		assert.True(t, now.Equal(pgconv.TimeFromPgtype(ts)))

		s := "APPROVED"
		txt := pgconv.StringPtrToPgtype(&s)
		assert.True(t, txt.Valid)
		assert.Equal(t, s, txt.String)
	})
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("query: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(fmt.Errorf("boom")))
}
