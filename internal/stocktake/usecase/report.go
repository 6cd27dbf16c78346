package usecase

import (
	"time"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/google/uuid"
)

// classifyItem derives the counting outcome for one item. The matched,
// missing and excess buckets are pairwise disjoint; partial covers the
// remaining in-progress counts and is derived for display only.
func classifyItem(item *model.InventoryItem) model.CountOutcome {
	switch {
	case item.PickedQuantity > item.ActualQuantity:
		return model.OutcomeExcess
	case item.ActualQuantity == 0:
		return model.OutcomeNone
	case item.PickedQuantity == item.ActualQuantity:
		return model.OutcomeMatched
	case item.PickedQuantity == 0:
		return model.OutcomeMissing
	default:
		return model.OutcomePartial
	}
}

// generateReport snapshots the current item set into an immutable
// reconciliation report. Pure over items; partial items are intentionally
// not stored on the report.
func generateReport(items []model.InventoryItem, settings *model.InventorySettings, createdBy string) *model.ReconciliationReport {
	report := &model.ReconciliationReport{
		ID:           uuid.New().String(),
		CreatedAt:    time.Now().UTC(),
		CreatedBy:    createdBy,
		Settings:     settings,
		MatchedItems: []model.InventoryItem{},
		MissingItems: []model.InventoryItem{},
		ExcessItems:  []model.InventoryItem{},
	}

	for i := range items {
		item := items[i]
		switch classifyItem(&item) {
		case model.OutcomeMatched:
			report.MatchedItems = append(report.MatchedItems, item)
			report.TotalMatched += float64(item.PickedQuantity) * item.CostPrice
		case model.OutcomeMissing:
			report.MissingItems = append(report.MissingItems, item)
			report.TotalMissing += float64(item.ActualQuantity) * item.CostPrice
		case model.OutcomeExcess:
			report.ExcessItems = append(report.ExcessItems, item)
			report.TotalExcess += float64(item.PickedQuantity-item.ActualQuantity) * item.CostPrice
		}
	}

	return report
}
