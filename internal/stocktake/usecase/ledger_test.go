package usecase

import (
	"testing"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetPickedQuantityWithinBounds(t *testing.T) {
	items := []model.InventoryItem{{ID: "i1", ActualQuantity: 5}}

	item, err := setPickedQuantity(items, "i1", 5)
	require.NoError(t, err)
	assert.Equal(t, 5, item.PickedQuantity)

	item, err = setPickedQuantity(items, "i1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, item.PickedQuantity)
}

func TestSetPickedQuantityRejectsAboveActual(t *testing.T) {
	items := []model.InventoryItem{{ID: "i1", ActualQuantity: 5, PickedQuantity: 2}}

	_, err := setPickedQuantity(items, "i1", 6)

	require.ErrorIs(t, err, stocktake.ErrQuantityExceedsActual)
	assert.Equal(t, 2, items[0].PickedQuantity, "rejected edit must not clamp")
}

func TestSetPickedQuantityRejectsNegative(t *testing.T) {
	items := []model.InventoryItem{{ID: "i1", ActualQuantity: 5, PickedQuantity: 2}}

	_, err := setPickedQuantity(items, "i1", -1)

	require.ErrorIs(t, err, stocktake.ErrNegativeQuantity)
	assert.Equal(t, 2, items[0].PickedQuantity)
}

func TestSetPickedQuantityUnknownItem(t *testing.T) {
	items := []model.InventoryItem{{ID: "i1", ActualQuantity: 5}}

	_, err := setPickedQuantity(items, "missing", 1)

	require.ErrorIs(t, err, stocktake.ErrItemNotFound)
}
