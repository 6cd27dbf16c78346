package stocktake

import (
	"context"

	"github.com/Blackprojecttech/technoline-stocktake/internal/auth"
	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
)

// SessionStore persists one counting session per operator so a session
// survives a restart or reload. A nil session with nil error means no
// session is stored.
type SessionStore interface {
	Load(ctx context.Context, operatorID string) (*model.InventorySession, error)
	Save(ctx context.Context, operatorID string, session *model.InventorySession) error
	Delete(ctx context.Context, operatorID string) error
}

// ReportRepository keeps the reconciliation report history, newest first.
type ReportRepository interface {
	Create(ctx context.Context, report *model.ReconciliationReport) error
	List(ctx context.Context) ([]model.ReconciliationReport, error)
	GetByID(ctx context.Context, id string) (*model.ReconciliationReport, error)
	Delete(ctx context.Context, id string) error
}

// ReportAuthorizer resolves the per-viewer deletion capability at read
// time; the capability is never stored on the report.
type ReportAuthorizer interface {
	CanDelete(actor auth.Actor, report *model.ReconciliationReport) bool
}

// EventPublisher announces session lifecycle milestones to the rest of the
// platform. Implementations must tolerate being nil-wrapped (no broker).
type EventPublisher interface {
	SessionStarted(ctx context.Context, operatorID string, itemCount int)
	ReportCreated(ctx context.Context, report *model.ReconciliationReport)
}
