package catalog

import (
	"context"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
)

// Gateway is the storefront collaborator that owns arrivals, receipts and
// suppliers. Snapshot building refuses to run on partial data, so every
// method either returns the full list or an error.
type Gateway interface {
	Suppliers(ctx context.Context) ([]model.Supplier, error)
	Arrivals(ctx context.Context) ([]model.Arrival, error)
	Receipts(ctx context.Context) ([]model.Receipt, error)
}
