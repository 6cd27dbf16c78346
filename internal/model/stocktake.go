package model

import "time"

type SessionStatus string

const (
	SessionNotStarted  SessionStatus = "not_started"
	SessionConfiguring SessionStatus = "configuring"
	SessionActive      SessionStatus = "active"
)

type SettingsScope string

const (
	// ScopeAllStock counts every supplier's arrivals.
	ScopeAllStock SettingsScope = "all_stock"
	// ScopeSupplierSubset counts only the suppliers selected in the
	// settings, either by explicit id or by brand-name filter.
	ScopeSupplierSubset SettingsScope = "supplier_subset"
)

// InventorySettings is chosen once when a counting session starts and is
// immutable for the session's lifetime.
type InventorySettings struct {
	Scope              SettingsScope `json:"scope"`
	IncludeAllProducts bool          `json:"includeAllProducts"`
	IncludeAccessories bool          `json:"includeAccessories"`
	SupplierIDs        []string      `json:"supplierIds,omitempty"`
	// BrandFilter selects suppliers whose name contains the token
	// (case-insensitive). Only consulted when SupplierIDs is empty.
	BrandFilter string `json:"brandFilter,omitempty"`
}

// InventoryItem is one expected-stock line of a counting session.
// ActualQuantity is fixed at snapshot-build time; PickedQuantity is the
// operator's running count.
type InventoryItem struct {
	ID             string   `json:"id"`
	ProductName    string   `json:"productName"`
	SupplierLabel  string   `json:"supplierLabel"`
	SupplierID     string   `json:"supplierId"`
	PickedQuantity int      `json:"pickedQuantity"`
	ActualQuantity int      `json:"actualQuantity"`
	CostPrice      float64  `json:"costPrice"`
	TotalCost      float64  `json:"totalCost"`
	IsAccessory    bool     `json:"isAccessory"`
	IsService      bool     `json:"isService"`
	ArrivalID      string   `json:"arrivalId"`
	SerialNumbers  []string `json:"serialNumbers,omitempty"`
	Barcode        string   `json:"barcode,omitempty"`
}

// Serialized reports whether the item represents physically unique units
// identified by serial number.
func (i *InventoryItem) Serialized() bool {
	return !i.IsAccessory && len(i.SerialNumbers) > 0
}

// InventorySession is the per-operator counting session. One operator
// mutates one session at a time; all writes go through the usecase lock.
type InventorySession struct {
	Status   SessionStatus      `json:"status"`
	Settings *InventorySettings `json:"settings,omitempty"`
	Items    []InventoryItem    `json:"items,omitempty"`
}

// CountOutcome classifies one item's counting result.
type CountOutcome string

const (
	OutcomeMatched CountOutcome = "matched"
	OutcomeMissing CountOutcome = "missing"
	OutcomeExcess  CountOutcome = "excess"
	OutcomePartial CountOutcome = "partial"
	// OutcomeNone is returned for items that never had expected stock.
	OutcomeNone CountOutcome = "none"
)

// ReconciliationReport is an immutable audit snapshot. It copies the item
// buckets at generation time and is unaffected by later session mutations.
type ReconciliationReport struct {
	ID           string             `json:"id" db:"id"`
	CreatedAt    time.Time          `json:"createdAt" db:"created_at"`
	CreatedBy    string             `json:"createdBy" db:"created_by"`
	Settings     *InventorySettings `json:"settings" db:"-"`
	MatchedItems []InventoryItem    `json:"matchedItems" db:"-"`
	MissingItems []InventoryItem    `json:"missingItems" db:"-"`
	ExcessItems  []InventoryItem    `json:"excessItems" db:"-"`
	TotalMatched float64            `json:"totalMatched" db:"total_matched"`
	TotalMissing float64            `json:"totalMissing" db:"total_missing"`
	TotalExcess  float64            `json:"totalExcess" db:"total_excess"`
}

// CountPolicy names the quantity-ceiling rules in one place. The asymmetry
// is deliberate: barcode scans are the only path that can produce excess.
type CountPolicy struct {
	// SerialScanCeiling blocks serial-number scans once picked == actual;
	// a serialized unit cannot be counted twice.
	SerialScanCeiling bool
	// BarcodeScanUncapped lets barcode scans drive picked above actual.
	BarcodeScanUncapped bool
	// ManualEditStrictCeiling rejects manual edits above actual.
	ManualEditStrictCeiling bool
}

// DefaultCountPolicy is the behavior the reconciliation reports are
// calibrated against.
var DefaultCountPolicy = CountPolicy{
	SerialScanCeiling:       true,
	BarcodeScanUncapped:     true,
	ManualEditStrictCeiling: true,
}
