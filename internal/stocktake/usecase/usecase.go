package usecase

import (
	"context"
	"fmt"

	"github.com/Blackprojecttech/technoline-stocktake/internal/auth"
	"github.com/Blackprojecttech/technoline-stocktake/internal/catalog"
	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake"
	"github.com/Blackprojecttech/technoline-stocktake/internal/stocktake/dto"
	"go.uber.org/zap"
)

type stocktakeUseCase struct {
	catalog     catalog.Gateway
	sessions    stocktake.SessionStore
	reports     stocktake.ReportRepository
	authz       stocktake.ReportAuthorizer
	events      stocktake.EventPublisher
	logger      *zap.Logger
	brandFilter string
	locks       *sessionLockManager
}

func NewStocktakeUseCase(
	gateway catalog.Gateway,
	sessions stocktake.SessionStore,
	reports stocktake.ReportRepository,
	authz stocktake.ReportAuthorizer,
	events stocktake.EventPublisher,
	log *zap.Logger,
	brandFilter string,
) stocktake.UseCase {
	return &stocktakeUseCase{
		catalog:     gateway,
		sessions:    sessions,
		reports:     reports,
		authz:       authz,
		events:      events,
		logger:      log,
		brandFilter: brandFilter,
		locks:       newSessionLockManager(),
	}
}

func (uc *stocktakeUseCase) Configure(ctx context.Context, actor auth.Actor, input *dto.SessionSettingsInput) (*dto.SessionView, error) {
	lock := uc.locks.get(actor.ID)
	lock.Lock()
	defer lock.Unlock()

	session := &model.InventorySession{
		Status:   model.SessionConfiguring,
		Settings: uc.settingsFromInput(input),
	}
	if err := uc.sessions.Save(ctx, actor.ID, session); err != nil {
		return nil, fmt.Errorf("save configuring session: %w", err)
	}
	return sessionView(session), nil
}

func (uc *stocktakeUseCase) Start(ctx context.Context, actor auth.Actor, input *dto.SessionSettingsInput) (*dto.SessionView, error) {
	lock := uc.locks.get(actor.ID)
	lock.Lock()
	defer lock.Unlock()

	settings := uc.settingsFromInput(input)

	// All three sources must succeed; a partial snapshot would silently
	// misreport missing stock.
	suppliers, err := uc.catalog.Suppliers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: suppliers: %v", stocktake.ErrSnapshotSourceUnavailable, err)
	}
	arrivals, err := uc.catalog.Arrivals(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: arrivals: %v", stocktake.ErrSnapshotSourceUnavailable, err)
	}
	receipts, err := uc.catalog.Receipts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: receipts: %v", stocktake.ErrSnapshotSourceUnavailable, err)
	}

	items := BuildSnapshot(settings, suppliers, arrivals, receipts)

	session := &model.InventorySession{
		Status:   model.SessionActive,
		Settings: settings,
		Items:    items,
	}
	if err := uc.sessions.Save(ctx, actor.ID, session); err != nil {
		return nil, fmt.Errorf("save active session: %w", err)
	}

	uc.logger.Info("counting session started",
		zap.String("operator_id", actor.ID),
		zap.Int("items", len(items)),
		zap.String("scope", string(settings.Scope)),
	)
	uc.events.SessionStarted(ctx, actor.ID, len(items))

	return sessionView(session), nil
}

func (uc *stocktakeUseCase) Session(ctx context.Context, actor auth.Actor) (*dto.SessionView, error) {
	session, err := uc.sessions.Load(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil {
		return sessionView(&model.InventorySession{Status: model.SessionNotStarted}), nil
	}
	return sessionView(session), nil
}

func (uc *stocktakeUseCase) Scan(ctx context.Context, actor auth.Actor, code string) (*dto.ScanResult, error) {
	lock := uc.locks.get(actor.ID)
	lock.Lock()
	defer lock.Unlock()

	session, err := uc.activeSession(ctx, actor)
	if err != nil {
		return nil, err
	}

	outcome := matchScan(session.Items, code)
	switch outcome.status {
	case matchApplied:
		// The increment must be persisted before the scan is confirmed,
		// otherwise rapid sequential input can lose counts on reload.
		if err := uc.sessions.Save(ctx, actor.ID, session); err != nil {
			outcome.item.PickedQuantity--
			return nil, fmt.Errorf("persist scan: %w", err)
		}
		return &dto.ScanResult{Status: dto.ScanApplied, Item: itemView(outcome.item)}, nil
	case matchBlocked:
		return &dto.ScanResult{
			Status:  dto.ScanBlocked,
			Item:    itemView(outcome.item),
			Message: "all units of this serial number are already counted",
		}, nil
	default:
		return &dto.ScanResult{Status: dto.ScanNotFound, Message: "no item matches the scanned code"}, nil
	}
}

func (uc *stocktakeUseCase) SetQuantity(ctx context.Context, actor auth.Actor, itemID string, quantity int) (*dto.ItemView, error) {
	lock := uc.locks.get(actor.ID)
	lock.Lock()
	defer lock.Unlock()

	session, err := uc.activeSession(ctx, actor)
	if err != nil {
		return nil, err
	}

	previous := findItem(session.Items, itemID)
	var previousQuantity int
	if previous != nil {
		previousQuantity = previous.PickedQuantity
	}

	item, err := setPickedQuantity(session.Items, itemID, quantity)
	if err != nil {
		return nil, err
	}
	if err := uc.sessions.Save(ctx, actor.ID, session); err != nil {
		item.PickedQuantity = previousQuantity
		return nil, fmt.Errorf("persist quantity edit: %w", err)
	}
	return itemView(item), nil
}

func (uc *stocktakeUseCase) GenerateReport(ctx context.Context, actor auth.Actor) (*dto.ReportView, error) {
	lock := uc.locks.get(actor.ID)
	lock.Lock()
	defer lock.Unlock()

	session, err := uc.activeSession(ctx, actor)
	if err != nil {
		return nil, err
	}

	report := generateReport(session.Items, session.Settings, actor.Username)
	if err := uc.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("store report: %w", err)
	}

	uc.logger.Info("reconciliation report created",
		zap.String("report_id", report.ID),
		zap.String("created_by", report.CreatedBy),
		zap.Int("matched", len(report.MatchedItems)),
		zap.Int("missing", len(report.MissingItems)),
		zap.Int("excess", len(report.ExcessItems)),
	)
	uc.events.ReportCreated(ctx, report)

	return &dto.ReportView{
		ReconciliationReport: *report,
		CanDelete:            uc.authz.CanDelete(actor, report),
	}, nil
}

func (uc *stocktakeUseCase) Reset(ctx context.Context, actor auth.Actor) error {
	lock := uc.locks.get(actor.ID)
	lock.Lock()
	defer lock.Unlock()

	if err := uc.sessions.Delete(ctx, actor.ID); err != nil {
		return fmt.Errorf("reset session: %w", err)
	}
	uc.logger.Info("counting session reset", zap.String("operator_id", actor.ID))
	return nil
}

func (uc *stocktakeUseCase) ListReports(ctx context.Context, actor auth.Actor) ([]dto.ReportView, error) {
	reports, err := uc.reports.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}

	views := make([]dto.ReportView, len(reports))
	for i := range reports {
		views[i] = dto.ReportView{
			ReconciliationReport: reports[i],
			CanDelete:            uc.authz.CanDelete(actor, &reports[i]),
		}
	}
	return views, nil
}

func (uc *stocktakeUseCase) DeleteReport(ctx context.Context, actor auth.Actor, reportID string) error {
	report, err := uc.reports.GetByID(ctx, reportID)
	if err != nil {
		return fmt.Errorf("load report: %w", err)
	}
	if report == nil {
		return stocktake.ErrReportNotFound
	}
	if !uc.authz.CanDelete(actor, report) {
		return stocktake.ErrReportDeletionForbidden
	}
	if err := uc.reports.Delete(ctx, reportID); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	uc.logger.Info("reconciliation report deleted",
		zap.String("report_id", reportID),
		zap.String("deleted_by", actor.Username),
	)
	return nil
}

func (uc *stocktakeUseCase) activeSession(ctx context.Context, actor auth.Actor) (*model.InventorySession, error) {
	session, err := uc.sessions.Load(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session == nil || session.Status != model.SessionActive {
		return nil, stocktake.ErrSessionNotActive
	}
	return session, nil
}

func (uc *stocktakeUseCase) settingsFromInput(input *dto.SessionSettingsInput) *model.InventorySettings {
	settings := &model.InventorySettings{
		Scope:              model.SettingsScope(input.Scope),
		IncludeAllProducts: input.IncludeAllProducts,
		IncludeAccessories: input.IncludeAccessories,
		SupplierIDs:        input.SupplierIDs,
	}
	if settings.Scope == model.ScopeSupplierSubset && len(settings.SupplierIDs) == 0 {
		settings.BrandFilter = uc.brandFilter
	}
	return settings
}

func itemView(item *model.InventoryItem) *dto.ItemView {
	return &dto.ItemView{
		InventoryItem: *item,
		Outcome:       classifyItem(item),
	}
}

func sessionView(session *model.InventorySession) *dto.SessionView {
	view := &dto.SessionView{
		Status:     session.Status,
		Settings:   session.Settings,
		TotalItems: len(session.Items),
	}
	if len(session.Items) > 0 {
		view.Items = make([]dto.ItemView, len(session.Items))
		for i := range session.Items {
			view.Items[i] = *itemView(&session.Items[i])
			view.TotalPicked += session.Items[i].PickedQuantity
			view.TotalActual += session.Items[i].ActualQuantity
		}
	}
	return view
}
