package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func CreateUser(t *testing.T, db DBLike, name, email string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO users (name, email) VALUES ($1, $2) RETURNING id", name, email).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateItem(t *testing.T, db DBLike, ownerID int64, name string, available bool) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO items (name, description, is_available, owner_id) VALUES ($1, $2, $3, $4) RETURNING id",
		name, name+" for rent", available, ownerID).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateBooking inserts a booking directly, bypassing the start-in-future
// rule so tests can seed finished bookings.
func CreateBooking(t *testing.T, db DBLike, itemID, bookerID int64, start, end time.Time, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(),
		"INSERT INTO bookings (start_time, end_time, item_id, booker_id, status) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		start, end, itemID, bookerID, status).Scan(&id)
	require.NoError(t, err)
	return id
}

var (
	truncateOnce sync.Once
	truncateSQL  string
	truncateErr  error
)

// ResetDB empties every public table and restarts identities.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	truncateOnce.Do(func() {
		truncateSQL, truncateErr = buildTruncate(ctx, pool)
	})
	if truncateErr != nil {
		return fmt.Errorf("build truncate: %w", truncateErr)
	}
	if truncateSQL == "" {
		return nil
	}
	_, err := pool.Exec(ctx, truncateSQL)
	return err
}

func buildTruncate(ctx context.Context, pool *pgxpool.Pool) (string, error) {
	rows, err := pool.Query(ctx, `
		SELECT 'public.' || quote_ident(tablename)
		FROM pg_tables
		WHERE schemaname = 'public'
		  AND tablename NOT IN ('atlas_schema_revisions')`)
	if err != nil {
		return "", err
	}
	tables, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return "", err
	}
	if len(tables) == 0 {
		return "", nil
	}
	return "TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;", nil
}
