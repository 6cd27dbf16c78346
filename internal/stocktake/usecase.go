package stocktake

import (
	"context"

	"github.com/Blackprojecttech/technoline-stocktake/internal/auth"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake/dto"
)

// UseCase is the counting-session state machine and the only entry point
// that mutates a session. All mutating calls for one operator serialize on
// a session-scoped lock.
type UseCase interface {
	// Configure moves a fresh session to the configuring state. Pure
	// bookkeeping; nothing is fetched yet.
	Configure(ctx context.Context, actor auth.Actor, input *dto.SessionSettingsInput) (*dto.SessionView, error)

	// Start builds the expected-stock snapshot and activates the session.
	// A failed source fetch returns ErrSnapshotSourceUnavailable and
	// leaves the session where it was.
	Start(ctx context.Context, actor auth.Actor, input *dto.SessionSettingsInput) (*dto.SessionView, error)

	// Session returns the persisted session verbatim; a previously
	// persisted active session resumes without a snapshot rebuild.
	Session(ctx context.Context, actor auth.Actor) (*dto.SessionView, error)

	// Scan applies one count event against the active session.
	Scan(ctx context.Context, actor auth.Actor, code string) (*dto.ScanResult, error)

	// SetQuantity applies a direct manual edit, bounded by the item's
	// actual quantity.
	SetQuantity(ctx context.Context, actor auth.Actor, itemID string, quantity int) (*dto.ItemView, error)

	// GenerateReport snapshots the current item set into an immutable
	// reconciliation report. Does not change session state.
	GenerateReport(ctx context.Context, actor auth.Actor) (*dto.ReportView, error)

	// Reset discards the session unconditionally.
	Reset(ctx context.Context, actor auth.Actor) error

	ListReports(ctx context.Context, actor auth.Actor) ([]dto.ReportView, error)
	DeleteReport(ctx context.Context, actor auth.Actor, reportID string) error
}
