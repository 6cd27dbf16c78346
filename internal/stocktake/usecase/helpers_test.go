package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"go.uber.org/zap"
)

// In-memory collaborators for exercising the state machine without redis,
// postgres or a live storefront.

type fakeGateway struct {
	suppliers []model.Supplier
	arrivals  []model.Arrival
	receipts  []model.Receipt
	fail      bool
}

var errGatewayDown = errors.New("storefront unreachable")

func (g *fakeGateway) Suppliers(ctx context.Context) ([]model.Supplier, error) {
	if g.fail {
		return nil, errGatewayDown
	}
	return g.suppliers, nil
}

func (g *fakeGateway) Arrivals(ctx context.Context) ([]model.Arrival, error) {
	if g.fail {
		return nil, errGatewayDown
	}
	return g.arrivals, nil
}

func (g *fakeGateway) Receipts(ctx context.Context) ([]model.Receipt, error) {
	if g.fail {
		return nil, errGatewayDown
	}
	return g.receipts, nil
}

type memSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*model.InventorySession
	saves    int
	failSave bool
}

var errStoreDown = errors.New("session store unavailable")

func newMemSessionStore() *memSessionStore {
	return &memSessionStore{sessions: make(map[string]*model.InventorySession)}
}

func (s *memSessionStore) Load(ctx context.Context, operatorID string) (*model.InventorySession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[operatorID]
	if !ok {
		return nil, nil
	}
	return session, nil
}

func (s *memSessionStore) Save(ctx context.Context, operatorID string, session *model.InventorySession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failSave {
		return errStoreDown
	}
	s.saves++
	s.sessions[operatorID] = session
	return nil
}

func (s *memSessionStore) Delete(ctx context.Context, operatorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, operatorID)
	return nil
}

type memReportRepo struct {
	mu      sync.Mutex
	reports []model.ReconciliationReport
}

func (r *memReportRepo) Create(ctx context.Context, report *model.ReconciliationReport) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first, matching the SQL repository's ordering.
	r.reports = append([]model.ReconciliationReport{*report}, r.reports...)
	return nil
}

func (r *memReportRepo) List(ctx context.Context) ([]model.ReconciliationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.ReconciliationReport, len(r.reports))
	copy(out, r.reports)
	return out, nil
}

func (r *memReportRepo) GetByID(ctx context.Context, id string) (*model.ReconciliationReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reports {
		if r.reports[i].ID == id {
			report := r.reports[i]
			return &report, nil
		}
	}
	return nil, nil
}

func (r *memReportRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.reports {
		if r.reports[i].ID == id {
			r.reports = append(r.reports[:i], r.reports[i+1:]...)
			return nil
		}
	}
	return nil
}

type recordingPublisher struct {
	mu       sync.Mutex
	started  int
	reported int
}

func (p *recordingPublisher) SessionStarted(ctx context.Context, operatorID string, itemCount int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.started++
}

func (p *recordingPublisher) ReportCreated(ctx context.Context, report *model.ReconciliationReport) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reported++
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
