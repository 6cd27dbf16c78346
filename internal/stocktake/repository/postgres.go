package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Blackprojecttech/technoline-stocktake/internal/model"
	"github.com/jmoiron/sqlx"
)

// PGReportRepository stores the reconciliation report history. Item buckets
// and settings are kept as JSONB alongside the queryable totals.
type PGReportRepository struct {
	DB *sqlx.DB
}

func NewPGReportRepository(db *sqlx.DB) *PGReportRepository {
	return &PGReportRepository{DB: db}
}

type reportRow struct {
	ID           string    `db:"id"`
	CreatedAt    time.Time `db:"created_at"`
	CreatedBy    string    `db:"created_by"`
	Settings     []byte    `db:"settings"`
	MatchedItems []byte    `db:"matched_items"`
	MissingItems []byte    `db:"missing_items"`
	ExcessItems  []byte    `db:"excess_items"`
	TotalMatched float64   `db:"total_matched"`
	TotalMissing float64   `db:"total_missing"`
	TotalExcess  float64   `db:"total_excess"`
}

func toRow(r *model.ReconciliationReport) (*reportRow, error) {
	settings, err := json.Marshal(r.Settings)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}
	matched, err := json.Marshal(r.MatchedItems)
	if err != nil {
		return nil, fmt.Errorf("encode matched items: %w", err)
	}
	missing, err := json.Marshal(r.MissingItems)
	if err != nil {
		return nil, fmt.Errorf("encode missing items: %w", err)
	}
	excess, err := json.Marshal(r.ExcessItems)
	if err != nil {
		return nil, fmt.Errorf("encode excess items: %w", err)
	}
	return &reportRow{
		ID:           r.ID,
		CreatedAt:    r.CreatedAt,
		CreatedBy:    r.CreatedBy,
		Settings:     settings,
		MatchedItems: matched,
		MissingItems: missing,
		ExcessItems:  excess,
		TotalMatched: r.TotalMatched,
		TotalMissing: r.TotalMissing,
		TotalExcess:  r.TotalExcess,
	}, nil
}

func (row *reportRow) toModel() (*model.ReconciliationReport, error) {
	r := &model.ReconciliationReport{
		ID:           row.ID,
		CreatedAt:    row.CreatedAt,
		CreatedBy:    row.CreatedBy,
		TotalMatched: row.TotalMatched,
		TotalMissing: row.TotalMissing,
		TotalExcess:  row.TotalExcess,
	}
	if err := json.Unmarshal(row.Settings, &r.Settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}
	if err := json.Unmarshal(row.MatchedItems, &r.MatchedItems); err != nil {
		return nil, fmt.Errorf("decode matched items: %w", err)
	}
	if err := json.Unmarshal(row.MissingItems, &r.MissingItems); err != nil {
		return nil, fmt.Errorf("decode missing items: %w", err)
	}
	if err := json.Unmarshal(row.ExcessItems, &r.ExcessItems); err != nil {
		return nil, fmt.Errorf("decode excess items: %w", err)
	}
	return r, nil
}

func (repo *PGReportRepository) Create(ctx context.Context, report *model.ReconciliationReport) error {
	row, err := toRow(report)
	if err != nil {
		return err
	}

	query := `
        INSERT INTO reconciliation_reports (
            id, created_at, created_by, settings,
            matched_items, missing_items, excess_items,
            total_matched, total_missing, total_excess
        )
        VALUES (
            :id, :created_at, :created_by, :settings,
            :matched_items, :missing_items, :excess_items,
            :total_matched, :total_missing, :total_excess
        )
    `
	if _, err := repo.DB.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (repo *PGReportRepository) List(ctx context.Context) ([]model.ReconciliationReport, error) {
	var rows []reportRow
	query := `SELECT * FROM reconciliation_reports ORDER BY created_at DESC`
	if err := repo.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select reports: %w", err)
	}

	reports := make([]model.ReconciliationReport, 0, len(rows))
	for i := range rows {
		report, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		reports = append(reports, *report)
	}
	return reports, nil
}

func (repo *PGReportRepository) GetByID(ctx context.Context, id string) (*model.ReconciliationReport, error) {
	var row reportRow
	query := `SELECT * FROM reconciliation_reports WHERE id = $1`
	if err := repo.DB.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select report: %w", err)
	}
	return row.toModel()
}

func (repo *PGReportRepository) Delete(ctx context.Context, id string) error {
	if _, err := repo.DB.ExecContext(ctx, `DELETE FROM reconciliation_reports WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}
