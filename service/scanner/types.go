package scanner

import (
	"context"
	"fmt"
	"time"

	"github.com/thirukguru/boundary-scan/service/broker"
	"github.com/thirukguru/boundary-scan/service/directory"
	"github.com/thirukguru/boundary-scan/service/enumerator"
)

// BoundaryStatus classifies one report row.
type BoundaryStatus string

const (
	// StatusExists marks a role carrying the target boundary.
	StatusExists BoundaryStatus = "Exists"
	// StatusMissing marks an account whose roles were enumerated without a
	// single match.
	StatusMissing BoundaryStatus = "Missing"
	// StatusNotApplicable marks an account that refused role delegation.
	StatusNotApplicable BoundaryStatus = "N/A"
	// StatusError marks an account whose enumeration failed unexpectedly.
	StatusError BoundaryStatus = "Error"
)

// Sentinel role names for accounts that produced no real match.
const (
	RoleNameAccessDenied = "ACCESS_DENIED"
	RoleNameNoBoundary   = "NO_ROLES_WITH_BOUNDARY"
)

// RoleRecord is one row of the final report. Records are created inside the
// per-account task and never mutated after being published.
type RoleRecord struct {
	AccountID   string         `json:"account_id"`
	AccountName string         `json:"account_name"`
	RoleName    string         `json:"role_name"`
	Status      BoundaryStatus `json:"status"`
	// TotalRoles carries the account's role count on the Missing sentinel.
	TotalRoles int `json:"total_roles,omitempty"`
}

// Label is the reportable role name; the Missing sentinel embeds the
// account's total role count.
func (r RoleRecord) Label() string {
	if r.Status == StatusMissing {
		return fmt.Sprintf("%s (%d total roles)", r.RoleName, r.TotalRoles)
	}
	return r.RoleName
}

// ScanRun is the aggregate result of one invocation.
type ScanRun struct {
	Records            []RoleRecord `json:"records"`
	StartedAt          time.Time    `json:"started_at"`
	FinishedAt         time.Time    `json:"finished_at"`
	AccountsTotal      int          `json:"accounts_total"`
	AccountsAccessible int          `json:"accounts_accessible"`
	CompliantRoles     int          `json:"compliant_roles"`
	Interrupted        bool         `json:"interrupted,omitempty"`
}

// Duration is the wall-clock time of the run.
func (r *ScanRun) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}

// ScanOptions configures one run.
type ScanOptions struct {
	// Boundary is the permission boundary short name to match.
	Boundary string
	// RoleName is the role assumed in every member account.
	RoleName string
	// Concurrency bounds the worker pool.
	Concurrency int
	// OnProgress, when set, is invoked after each account completes with the
	// number of finished accounts and the total. It is called outside the
	// result lock.
	OnProgress func(done, total int)
}

type service struct {
	directoryService  directory.Service
	brokerService     broker.Service
	enumeratorService enumerator.Service
}

// Service is the interface for the scan coordinator.
type Service interface {
	ScanAll(ctx context.Context, opts ScanOptions) (*ScanRun, error)
}
