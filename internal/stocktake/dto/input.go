package dto

// SessionSettingsInput configures a counting session. Scope is one of
// "all_stock" or "supplier_subset"; the subset is selected by explicit
// supplier ids or, when empty, by the configured brand filter.
type SessionSettingsInput struct {
	Scope              string   `json:"scope" binding:"required,oneof=all_stock supplier_subset"`
	IncludeAllProducts bool     `json:"includeAllProducts"`
	IncludeAccessories bool     `json:"includeAccessories"`
	SupplierIDs        []string `json:"supplierIds"`
}

// ScanInput carries one decoded scan or manual search string. Debouncing of
// rapid duplicate input is the caller's concern; every accepted request is
// one count event.
type ScanInput struct {
	Code string `json:"code" binding:"required"`
}

type SetQuantityInput struct {
	Quantity int `json:"quantity"`
}
