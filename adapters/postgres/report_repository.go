package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"scistat/domain/core"
	"scistat/domain/report"
	"scistat/ports"
)

// reportRepository implements ports.ReportRepository on PostgreSQL
type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *sqlx.DB) ports.ReportRepository {
	return &reportRepository{db: db}
}

// Migrate creates the reports table if it does not exist
func Migrate(db *sqlx.DB) error {
	schema := `CREATE TABLE IF NOT EXISTS reports (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL,
		alpha DOUBLE PRECISION NOT NULL,
		title TEXT,
		sections JSONB NOT NULL,
		dropped_members INT NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create reports table: %w", err)
	}
	return nil
}

type reportRow struct {
	ID             string       `db:"id"`
	Kind           string       `db:"kind"`
	Alpha          float64      `db:"alpha"`
	Title          string       `db:"title"`
	Sections       []byte       `db:"sections"`
	DroppedMembers int          `db:"dropped_members"`
	CreatedAt      sql.NullTime `db:"created_at"`
}

// Save stores a report
func (r *reportRepository) Save(ctx context.Context, rep *report.Report) error {
	sections, err := json.Marshal(rep.Sections)
	if err != nil {
		return fmt.Errorf("failed to marshal sections: %w", err)
	}

	query := `INSERT INTO reports (id, kind, alpha, title, sections, dropped_members, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			kind = EXCLUDED.kind, alpha = EXCLUDED.alpha, title = EXCLUDED.title,
			sections = EXCLUDED.sections, dropped_members = EXCLUDED.dropped_members`

	_, err = r.db.ExecContext(ctx, query,
		rep.ID.String(), string(rep.Kind), rep.Alpha, rep.Title,
		sections, rep.DroppedMembers, rep.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}
	return nil
}

// GetByID fetches a single report
func (r *reportRepository) GetByID(ctx context.Context, id core.ReportID) (*report.Report, error) {
	var row reportRow
	query := `SELECT id, kind, alpha, title, sections, dropped_members, created_at
		FROM reports WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id.String()); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("report %s: %w", id, core.ErrNoData)
		}
		return nil, fmt.Errorf("failed to fetch report: %w", err)
	}
	return row.toDomain()
}

// List returns reports newest-first
func (r *reportRepository) List(ctx context.Context, limit, offset int) ([]*report.Report, error) {
	var rows []reportRow
	query := `SELECT id, kind, alpha, title, sections, dropped_members, created_at
		FROM reports ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &rows, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	reports := make([]*report.Report, 0, len(rows))
	for _, row := range rows {
		rep, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		reports = append(reports, rep)
	}
	return reports, nil
}

func (row reportRow) toDomain() (*report.Report, error) {
	rep := &report.Report{
		ID:             core.ReportID(row.ID),
		Kind:           report.Kind(row.Kind),
		Alpha:          row.Alpha,
		Title:          row.Title,
		DroppedMembers: row.DroppedMembers,
	}
	if row.CreatedAt.Valid {
		rep.CreatedAt = row.CreatedAt.Time
	}
	if err := json.Unmarshal(row.Sections, &rep.Sections); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sections: %w", err)
	}
	return rep, nil
}
