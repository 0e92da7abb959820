package scanner

import (
	"context"
	"errors"

	"github.com/thirukguru/boundary-scan/service/broker"
	"github.com/thirukguru/boundary-scan/service/directory"
)

type outcomeKind int

const (
	outcomeMatched outcomeKind = iota
	outcomeMissing
	outcomeDenied
	outcomeFailed
	outcomeAbandoned
)

// taskOutcome is the tagged result of one account's task. The coordinator
// switches on kind instead of inspecting record strings.
type taskOutcome struct {
	kind       outcomeKind
	matches    []string
	totalRoles int
	err        error
}

// evaluateAccount runs the assume -> enumerate -> classify pipeline for one
// account. Every failure below the account boundary is folded into the
// outcome; nothing propagates to the coordinator.
func (s *service) evaluateAccount(ctx context.Context, account directory.Account, opts ScanOptions) taskOutcome {
	creds, err := s.brokerService.Assume(ctx, account.ID, opts.RoleName)
	if err != nil {
		switch {
		case errors.Is(err, broker.ErrDelegationDenied):
			return taskOutcome{kind: outcomeDenied}
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			return taskOutcome{kind: outcomeAbandoned}
		default:
			return taskOutcome{kind: outcomeFailed, err: err}
		}
	}

	roles, err := s.enumeratorService.ListRoles(ctx, creds)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return taskOutcome{kind: outcomeAbandoned}
		}
		return taskOutcome{kind: outcomeFailed, err: err}
	}

	outcome := taskOutcome{kind: outcomeMissing, totalRoles: len(roles)}
	for _, role := range roles {
		if Matches(role.BoundaryARN, opts.Boundary) {
			outcome.matches = append(outcome.matches, role.RoleName)
		}
	}
	if len(outcome.matches) > 0 {
		outcome.kind = outcomeMatched
	}
	return outcome
}

// buildRecords materialises an outcome into report rows: all matches for a
// matched account, exactly one sentinel otherwise, nothing for an abandoned
// task.
func buildRecords(account directory.Account, outcome taskOutcome) []RoleRecord {
	switch outcome.kind {
	case outcomeMatched:
		records := make([]RoleRecord, 0, len(outcome.matches))
		for _, roleName := range outcome.matches {
			records = append(records, RoleRecord{
				AccountID:   account.ID,
				AccountName: account.Name,
				RoleName:    roleName,
				Status:      StatusExists,
			})
		}
		return records
	case outcomeMissing:
		return []RoleRecord{{
			AccountID:   account.ID,
			AccountName: account.Name,
			RoleName:    RoleNameNoBoundary,
			Status:      StatusMissing,
			TotalRoles:  outcome.totalRoles,
		}}
	case outcomeDenied:
		return []RoleRecord{{
			AccountID:   account.ID,
			AccountName: account.Name,
			RoleName:    RoleNameAccessDenied,
			Status:      StatusNotApplicable,
		}}
	case outcomeFailed:
		return []RoleRecord{{
			AccountID:   account.ID,
			AccountName: account.Name,
			RoleName:    errorRoleName(outcome.err),
			Status:      StatusError,
		}}
	default:
		return nil
	}
}

const maxErrorLabelLen = 50

func errorRoleName(err error) string {
	msg := "unknown failure"
	if err != nil {
		msg = err.Error()
	}
	if len(msg) > maxErrorLabelLen {
		msg = msg[:maxErrorLabelLen] + "..."
	}
	return "ERROR: " + msg
}
