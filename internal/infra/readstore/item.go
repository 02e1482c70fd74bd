package readstore

import (
	"context"

	"shareit/internal/infra"
	sqlc "shareit/internal/infra/sqlc/generated"
	"shareit/internal/pkg/pgconv"
	"shareit/internal/usecase/shared"
)

type ItemReadQueries interface {
	GetItemByIDForShare(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Items, error)
}

type ItemReadStore struct {
	queries ItemReadQueries
	db      sqlc.DBTX
}

func NewItemReadStore(queries ItemReadQueries, db sqlc.DBTX) *ItemReadStore {
	return &ItemReadStore{
		queries: queries,
		db:      db,
	}
}

// FindForShare holds a share lock on the item row when db is a transaction,
// so the owner cannot flip availability until it commits.
func (r *ItemReadStore) FindForShare(ctx context.Context, id int64) (*shared.ItemSnapshot, error) {
	row, err := r.queries.GetItemByIDForShare(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find item by ID", err)
	}
	return &shared.ItemSnapshot{
		ID:        row.ID,
		Name:      row.Name,
		OwnerID:   row.OwnerID,
		Available: row.IsAvailable,
	}, nil
}
