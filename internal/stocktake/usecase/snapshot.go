package usecase

import (
	"strings"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/google/uuid"
)

// itemNamespace seeds deterministic item ids so the same physical unit maps
// to the same id across rebuilds with identical inputs.
var itemNamespace = uuid.MustParse("6f1c24b4-9b0e-4d11-8f5a-2a4c7e3d9b01")

func itemID(arrivalID, lineID, serial string) string {
	key := arrivalID + "/" + lineID
	if serial != "" {
		key += "/" + serial
	}
	return uuid.NewSHA1(itemNamespace, []byte(key)).String()
}

type mergeKey struct {
	productName string
	barcode     string
	isAccessory bool
	isService   bool
}

// BuildSnapshot turns raw arrivals and receipts into the deduplicated
// expected-stock item list for a session.
//
// Serialized lines explode into one item per serial number with an actual
// quantity of 1. Non-serialized lines merge across arrivals and suppliers
// on (product name, barcode, accessory, service), summing quantity and
// total cost and concatenating distinct supplier labels. Lines fully
// consumed by non-cancelled receipts are dropped.
func BuildSnapshot(settings *model.InventorySettings, suppliers []model.Supplier, arrivals []model.Arrival, receipts []model.Receipt) []model.InventoryItem {
	supplierSet := resolveSuppliers(settings, suppliers)
	sold := soldByLine(receipts)

	items := make([]model.InventoryItem, 0, len(arrivals))
	merged := make(map[mergeKey]int) // key -> index into items

	for _, arrival := range arrivals {
		if supplierSet != nil {
			if _, ok := supplierSet[arrival.SupplierID]; !ok {
				continue
			}
		}

		for _, line := range arrival.Items {
			if line.IsService {
				continue
			}
			include := (settings.IncludeAllProducts && !line.IsAccessory) ||
				(settings.IncludeAccessories && line.IsAccessory)
			if !include {
				continue
			}

			available := line.Quantity - sold[line.LineID]
			if available <= 0 {
				continue
			}

			if !line.IsAccessory && len(line.SerialNumbers) > 0 {
				for _, serial := range line.SerialNumbers {
					items = append(items, model.InventoryItem{
						ID:             itemID(arrival.ID, line.LineID, serial),
						ProductName:    line.ProductName,
						SupplierLabel:  arrival.SupplierName,
						SupplierID:     arrival.SupplierID,
						ActualQuantity: 1,
						CostPrice:      line.CostPrice,
						TotalCost:      line.CostPrice,
						IsAccessory:    false,
						IsService:      false,
						ArrivalID:      arrival.ID,
						SerialNumbers:  []string{serial},
						Barcode:        line.Barcode,
					})
				}
				continue
			}

			key := mergeKey{line.ProductName, line.Barcode, line.IsAccessory, line.IsService}
			if idx, ok := merged[key]; ok {
				item := &items[idx]
				item.ActualQuantity += available
				item.TotalCost += line.CostPrice * float64(available)
				if !strings.Contains(item.SupplierLabel, arrival.SupplierName) {
					item.SupplierLabel += ", " + arrival.SupplierName
				}
				continue
			}

			merged[key] = len(items)
			items = append(items, model.InventoryItem{
				ID:             itemID(arrival.ID, line.LineID, ""),
				ProductName:    line.ProductName,
				SupplierLabel:  arrival.SupplierName,
				SupplierID:     arrival.SupplierID,
				ActualQuantity: available,
				CostPrice:      line.CostPrice,
				TotalCost:      line.CostPrice * float64(available),
				IsAccessory:    line.IsAccessory,
				IsService:      line.IsService,
				ArrivalID:      arrival.ID,
				Barcode:        line.Barcode,
			})
		}
	}

	return items
}

// resolveSuppliers returns the set of supplier ids in scope, or nil when
// every supplier is in scope.
func resolveSuppliers(settings *model.InventorySettings, suppliers []model.Supplier) map[string]struct{} {
	if settings.Scope != model.ScopeSupplierSubset {
		return nil
	}

	set := make(map[string]struct{}, len(settings.SupplierIDs))
	for _, id := range settings.SupplierIDs {
		set[id] = struct{}{}
	}
	if len(set) > 0 {
		return set
	}

	// Name-based subset: match the brand token against supplier names.
	token := strings.ToLower(strings.TrimSpace(settings.BrandFilter))
	if token == "" {
		return set
	}
	for _, s := range suppliers {
		if strings.Contains(strings.ToLower(s.Name), token) {
			set[s.ID] = struct{}{}
		}
	}
	return set
}

// soldByLine sums non-cancelled receipt quantities per arrival line.
// Cancelled receipts do not reduce availability.
func soldByLine(receipts []model.Receipt) map[string]int {
	sold := make(map[string]int)
	for i := range receipts {
		if receipts[i].Cancelled() {
			continue
		}
		for _, line := range receipts[i].Items {
			sold[line.ArrivalLineID] += line.Quantity
		}
	}
	return sold
}
