package usecase

import (
	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake"
)

// setPickedQuantity applies a direct manual edit. Unlike the barcode scan
// path it enforces the strict ceiling: a value above the actual quantity is
// rejected, not clamped, and the item is left unchanged.
func setPickedQuantity(items []model.InventoryItem, itemID string, quantity int) (*model.InventoryItem, error) {
	item := findItem(items, itemID)
	if item == nil {
		return nil, stocktake.ErrItemNotFound
	}
	if quantity < 0 {
		return nil, stocktake.ErrNegativeQuantity
	}
	if quantity > item.ActualQuantity {
		return nil, stocktake.ErrQuantityExceedsActual
	}

	item.PickedQuantity = quantity
	return item, nil
}

func findItem(items []model.InventoryItem, itemID string) *model.InventoryItem {
	for i := range items {
		if items[i].ID == itemID {
			return &items[i]
		}
	}
	return nil
}
