package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/thirukguru/boundary-scan/service/scanner"
	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.boundary-scan/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

// SaveRun persists the run summary and every record in one transaction.
func (s *service) SaveRun(ctx context.Context, input SaveRunInput) (int64, error) {
	if input.Run == nil {
		return 0, errors.New("run is required")
	}
	if input.Boundary == "" {
		return 0, errors.New("boundary is required")
	}
	if input.RunUUID == "" {
		input.RunUUID = fmt.Sprintf("run-%d", time.Now().UnixNano())
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	interrupted := 0
	if input.Run.Interrupted {
		interrupted = 1
	}
	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (
			run_uuid, boundary, role_name, started_at, finished_at,
			accounts_total, accounts_accessible, compliant_roles, total_records,
			interrupted, cli_version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.RunUUID, input.Boundary, input.RoleName,
		input.Run.StartedAt.UTC().Format(time.RFC3339), input.Run.FinishedAt.UTC().Format(time.RFC3339),
		input.Run.AccountsTotal, input.Run.AccountsAccessible, input.Run.CompliantRoles,
		len(input.Run.Records), interrupted, input.Version)
	if err != nil {
		return 0, err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, rec := range input.Run.Records {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO run_records (run_id, account_id, account_name, role_name, status, total_roles)
			VALUES (?, ?, ?, ?, ?, ?)
		`, runID, rec.AccountID, rec.AccountName, rec.RoleName, string(rec.Status), rec.TotalRoles)
		if err != nil {
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return runID, nil
}

func (s *service) GetRecentRuns(limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT run_id, run_uuid, boundary, role_name, started_at, finished_at,
			accounts_total, accounts_accessible, compliant_roles, total_records,
			interrupted, COALESCE(cli_version, '')
		FROM runs
		ORDER BY started_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var rsum RunSummary
		var started, finished string
		var interrupted int
		if err := rows.Scan(&rsum.RunID, &rsum.RunUUID, &rsum.Boundary, &rsum.RoleName,
			&started, &finished, &rsum.AccountsTotal, &rsum.AccountsAccessible,
			&rsum.CompliantRoles, &rsum.TotalRecords, &interrupted, &rsum.Version); err != nil {
			return nil, err
		}
		if rsum.StartedAt, err = time.Parse(time.RFC3339, started); err != nil {
			return nil, fmt.Errorf("invalid started_at %q: %w", started, err)
		}
		if rsum.FinishedAt, err = time.Parse(time.RFC3339, finished); err != nil {
			return nil, fmt.Errorf("invalid finished_at %q: %w", finished, err)
		}
		rsum.Interrupted = interrupted != 0
		runs = append(runs, rsum)
	}
	return runs, rows.Err()
}

func (s *service) ListRecords(runID int64) ([]scanner.RoleRecord, error) {
	rows, err := s.db.Query(`
		SELECT account_id, account_name, role_name, status, total_roles
		FROM run_records WHERE run_id=?
		ORDER BY account_id ASC, role_name ASC
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []scanner.RoleRecord{}
	for rows.Next() {
		var rec scanner.RoleRecord
		var status string
		if err := rows.Scan(&rec.AccountID, &rec.AccountName, &rec.RoleName, &status, &rec.TotalRoles); err != nil {
			return nil, err
		}
		rec.Status = scanner.BoundaryStatus(status)
		records = append(records, rec)
	}
	return records, rows.Err()
}

func (s *service) CoverageTrend(days int) ([]CoveragePoint, error) {
	if days <= 0 {
		days = 30
	}
	rows, err := s.db.Query(`
		SELECT
			DATE(started_at) as day,
			boundary,
			MAX(accounts_total),
			MAX(accounts_accessible),
			MAX(compliant_roles)
		FROM runs
		WHERE started_at >= DATETIME('now', ?)
		GROUP BY DATE(started_at), boundary
		ORDER BY day ASC, boundary ASC
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []CoveragePoint{}
	for rows.Next() {
		var p CoveragePoint
		if err := rows.Scan(&p.Date, &p.Boundary, &p.AccountsTotal, &p.AccountsAccessible, &p.CompliantRoles); err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE started_at < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
