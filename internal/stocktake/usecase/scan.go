package usecase

import (
	"strings"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
)

type matchStatus int

const (
	matchApplied matchStatus = iota
	matchBlocked
	matchNotFound
)

type matchVia int

const (
	viaSerial matchVia = iota
	viaBarcode
)

// matchOutcome is the discriminated result of one scan event. Item points
// into the session's item slice so an applied outcome reflects the
// increment already committed.
type matchOutcome struct {
	status matchStatus
	via    matchVia
	item   *model.InventoryItem
}

// matchScan resolves a scan or search string against the session items and
// applies a single bounded increment. First hit wins: serial numbers are
// checked across all items before barcodes.
//
// The quantity ceiling is asymmetric per model.DefaultCountPolicy: a serial
// hit on a fully counted item is blocked (a physical unit cannot be counted
// twice), while barcode hits are uncapped and may drive the picked quantity
// above actual. That overflow is the only path into the excess bucket.
func matchScan(items []model.InventoryItem, query string) matchOutcome {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return matchOutcome{status: matchNotFound}
	}

	for i := range items {
		for _, serial := range items[i].SerialNumbers {
			if strings.Contains(strings.ToLower(serial), query) {
				if items[i].PickedQuantity >= items[i].ActualQuantity {
					return matchOutcome{status: matchBlocked, via: viaSerial, item: &items[i]}
				}
				items[i].PickedQuantity++
				return matchOutcome{status: matchApplied, via: viaSerial, item: &items[i]}
			}
		}
	}

	for i := range items {
		if items[i].Barcode == "" {
			continue
		}
		if strings.Contains(strings.ToLower(items[i].Barcode), query) {
			items[i].PickedQuantity++
			return matchOutcome{status: matchApplied, via: viaBarcode, item: &items[i]}
		}
	}

	return matchOutcome{status: matchNotFound}
}
