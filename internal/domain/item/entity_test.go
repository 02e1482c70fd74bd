package item_test

import (
	"strings"
	"testing"

	"shareit/internal/domain/item"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("success: trims name and keeps flags", func(t *testing.T) {
		it, err := item.NewItem(7, "  Drill  ", 3, true)
		require.NoError(t, err)

		assert.Equal(t, int64(7), it.ID())
		assert.Equal(t, "Drill", it.Name())
		assert.Equal(t, int64(3), it.OwnerID())
		assert.True(t, it.IsAvailable())
	})

	testCases := []struct {
		name    string
		itName  string
		ownerID int64
		errIs   error
	}{
		{name: "blank name", itName: "   ", ownerID: 1, errIs: item.ErrEmptyItemName},
		{name: "name too long", itName: strings.Repeat("a", item.MaxItemNameLength+1), ownerID: 1, errIs: item.ErrItemNameTooLong},
		{name: "max length name", itName: strings.Repeat("a", item.MaxItemNameLength), ownerID: 1},
		{name: "missing owner", itName: "Drill", ownerID: 0, errIs: item.ErrInvalidOwner},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := item.NewItem(1, tc.itName, tc.ownerID, true)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}
