package model

// Catalog-side records fetched from the storefront API. They are read-only
// inputs to snapshot building and never persisted by this service.

type Supplier struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type Arrival struct {
	ID           string            `json:"_id"`
	SupplierID   string            `json:"supplierId"`
	SupplierName string            `json:"supplierName"`
	Items        []ArrivalLineItem `json:"items"`
}

// ArrivalLineItem is one receiving line of a supplier delivery. LineID is
// the identifier receipt lines point back to when quantity is consumed.
type ArrivalLineItem struct {
	LineID        string   `json:"arrivalId"`
	ProductName   string   `json:"productName"`
	Quantity      int      `json:"quantity"`
	CostPrice     float64  `json:"costPrice"`
	IsAccessory   bool     `json:"isAccessory"`
	IsService     bool     `json:"isService"`
	SerialNumbers []string `json:"serialNumbers"`
	Barcode       string   `json:"barcode"`
}

const ReceiptStatusCancelled = "cancelled"

type Receipt struct {
	Status string            `json:"status"`
	Items  []ReceiptLineItem `json:"items"`
}

// ReceiptLineItem traces a sold quantity back to the arrival line it was
// drawn from.
type ReceiptLineItem struct {
	ArrivalLineID string `json:"arrivalId"`
	Quantity      int    `json:"quantity"`
}

func (r *Receipt) Cancelled() bool {
	return r.Status == ReceiptStatusCancelled
}
