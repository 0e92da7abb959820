package storage

import (
	"context"
	"time"

	"github.com/thirukguru/boundary-scan/service/scanner"
)

// Service defines persistence and history query operations.
type Service interface {
	SaveRun(ctx context.Context, input SaveRunInput) (int64, error)
	GetRecentRuns(limit int) ([]RunSummary, error)
	ListRecords(runID int64) ([]scanner.RoleRecord, error)
	CoverageTrend(days int) ([]CoveragePoint, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveRunInput is the payload saved for a completed scan run.
type SaveRunInput struct {
	RunUUID  string
	Boundary string
	RoleName string
	Version  string
	Run      *scanner.ScanRun
}

// RunSummary provides compact run metadata.
type RunSummary struct {
	RunID              int64
	RunUUID            string
	Boundary           string
	RoleName           string
	StartedAt          time.Time
	FinishedAt         time.Time
	AccountsTotal      int
	AccountsAccessible int
	CompliantRoles     int
	TotalRecords       int
	Interrupted        bool
	Version            string
}

// CoveragePoint is a daily aggregate of boundary coverage.
type CoveragePoint struct {
	Date               string `json:"date"`
	Boundary           string `json:"boundary"`
	AccountsTotal      int    `json:"accounts_total"`
	AccountsAccessible int    `json:"accounts_accessible"`
	CompliantRoles     int    `json:"compliant_roles"`
}
