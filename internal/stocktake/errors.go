package stocktake

import "errors"

// Operator-facing conditions. All of them are recoverable: the session
// stays in its prior valid state and the caller renders a message.
var (
	// ErrSnapshotSourceUnavailable aborts Start when arrivals, receipts
	// or suppliers cannot be fetched. The only error that blocks a state
	// transition.
	ErrSnapshotSourceUnavailable = errors.New("stocktake: snapshot source unavailable")

	// ErrQuantityExceedsActual rejects a manual edit above the expected
	// quantity. Not a clamp; the item is left unchanged.
	ErrQuantityExceedsActual = errors.New("stocktake: picked quantity exceeds actual quantity")

	ErrNegativeQuantity = errors.New("stocktake: picked quantity cannot be negative")

	ErrSessionNotActive = errors.New("stocktake: no active counting session")

	ErrItemNotFound = errors.New("stocktake: item not found in session")

	ErrReportNotFound = errors.New("stocktake: report not found")

	// ErrReportDeletionForbidden surfaces the authorization collaborator's
	// verdict; the report itself is untouched.
	ErrReportDeletionForbidden = errors.New("stocktake: actor may not delete this report")
)
