package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/povarna/generative-ai-agents/vent-agent/internal/models"
	"github.com/rs/zerolog/log"
)

var ErrReportNotFound = errors.New("report not found")

const schema = `
CREATE TABLE IF NOT EXISTS overlap_reports (
	id           TEXT PRIMARY KEY,
	threshold    INTEGER NOT NULL,
	lines        INTEGER NOT NULL,
	axis_aligned INTEGER NOT NULL,
	all_lines    INTEGER NOT NULL,
	validated    BOOLEAN NOT NULL,
	duration_ns  BIGINT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
)`

func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.conn.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create overlap_reports table: %w", err)
	}
	return nil
}

// SaveReport upserts a result by ID.
func (db *DB) SaveReport(ctx context.Context, result models.CountResult) error {
	query := `
	INSERT INTO overlap_reports (id, threshold, lines, axis_aligned, all_lines, validated, duration_ns, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (id) DO UPDATE SET
	  threshold = EXCLUDED.threshold,
	  lines = EXCLUDED.lines,
	  axis_aligned = EXCLUDED.axis_aligned,
	  all_lines = EXCLUDED.all_lines,
	  validated = EXCLUDED.validated,
	  duration_ns = EXCLUDED.duration_ns,
	  created_at = EXCLUDED.created_at`

	_, err := db.conn.Exec(ctx, query,
		result.ID,
		result.Threshold,
		result.Lines,
		result.AxisAligned,
		result.All,
		result.Validated,
		result.Duration.Nanoseconds(),
		result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save report %s: %w", result.ID, err)
	}

	log.Debug().Str("report_id", result.ID).Msg("Report saved")
	return nil
}

func (db *DB) GetReport(ctx context.Context, id string) (models.CountResult, error) {
	query := `
	SELECT id, threshold, lines, axis_aligned, all_lines, validated, duration_ns, created_at
	FROM overlap_reports
	WHERE id = $1`

	result, err := scanReport(db.conn.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.CountResult{}, ErrReportNotFound
		}
		return models.CountResult{}, fmt.Errorf("failed to load report %s: %w", id, err)
	}
	return result, nil
}

// ListReports returns the most recent reports first.
func (db *DB) ListReports(ctx context.Context, limit int) ([]models.CountResult, error) {
	query := `
	SELECT id, threshold, lines, axis_aligned, all_lines, validated, duration_ns, created_at
	FROM overlap_reports
	ORDER BY created_at DESC
	LIMIT $1`

	rows, err := db.conn.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("unable to query reports: %w", err)
	}
	defer rows.Close()

	var reports []models.CountResult
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}

	return reports, rows.Err()
}

func scanReport(row pgx.Row) (models.CountResult, error) {
	var (
		result     models.CountResult
		durationNs int64
	)
	err := row.Scan(
		&result.ID,
		&result.Threshold,
		&result.Lines,
		&result.AxisAligned,
		&result.All,
		&result.Validated,
		&durationNs,
		&result.CreatedAt,
	)
	result.Duration = time.Duration(durationNs)
	return result, err
}
