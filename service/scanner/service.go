// Package scanner fans the permission boundary audit out across every
// account of the organization and aggregates one ordered report.
package scanner

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/thirukguru/boundary-scan/service/broker"
	"github.com/thirukguru/boundary-scan/service/directory"
	"github.com/thirukguru/boundary-scan/service/enumerator"
	"golang.org/x/sync/errgroup"
)

// ErrNoAccounts is returned when the directory yields zero ACTIVE accounts;
// the run is aborted before any worker starts.
var ErrNoAccounts = errors.New("no active accounts discovered")

// NewService creates a new scan coordinator.
func NewService(
	directoryService directory.Service,
	brokerService broker.Service,
	enumeratorService enumerator.Service,
) Service {
	return &service{
		directoryService:  directoryService,
		brokerService:     brokerService,
		enumeratorService: enumeratorService,
	}
}

// ScanAll discovers the account set, dispatches one task per account into a
// bounded pool, and aggregates records into a sorted run. Accounts complete
// in arbitrary order; the only guaranteed order is the final sort by
// (AccountID, RoleName). Each account is attempted exactly once.
func (s *service) ScanAll(ctx context.Context, opts ScanOptions) (*ScanRun, error) {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}

	run := &ScanRun{StartedAt: time.Now()}

	accounts, err := s.directoryService.ListActiveAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("account directory unavailable: %w", err)
	}
	if len(accounts) == 0 {
		return nil, ErrNoAccounts
	}
	run.AccountsTotal = len(accounts)

	g := new(errgroup.Group)
	g.SetLimit(opts.Concurrency)

	// The record set and the completion counter are the only state shared
	// across workers; both are updated under one lock so the counter never
	// outpaces the published records.
	var mu sync.Mutex
	completed := 0

	for _, account := range accounts {
		if ctx.Err() != nil {
			// Interrupted: stop dispatching, let submitted tasks drain.
			break
		}
		g.Go(func() error {
			records := s.scanAccount(ctx, account, opts)
			mu.Lock()
			run.Records = append(run.Records, records...)
			completed++
			done := completed
			mu.Unlock()
			if opts.OnProgress != nil {
				opts.OnProgress(done, len(accounts))
			}
			return nil
		})
	}

	_ = g.Wait()

	run.Interrupted = ctx.Err() != nil
	sortRecords(run.Records)
	run.FinishedAt = time.Now()
	summarize(run)

	return run, nil
}

// scanAccount is the dispatch-site boundary: a panic anywhere below it is
// logged and converted into an Error row so sibling accounts keep running.
func (s *service) scanAccount(ctx context.Context, account directory.Account, opts ScanOptions) (records []RoleRecord) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "error processing account %s: %v\n", account.ID, r)
			records = buildRecords(account, taskOutcome{kind: outcomeFailed, err: fmt.Errorf("panic: %v", r)})
		}
	}()

	return buildRecords(account, s.evaluateAccount(ctx, account, opts))
}

func sortRecords(records []RoleRecord) {
	slices.SortFunc(records, func(a, b RoleRecord) int {
		if c := strings.Compare(a.AccountID, b.AccountID); c != 0 {
			return c
		}
		return strings.Compare(a.RoleName, b.RoleName)
	})
}

func summarize(run *ScanRun) {
	denied := map[string]bool{}
	seen := map[string]bool{}
	for _, rec := range run.Records {
		seen[rec.AccountID] = true
		switch rec.Status {
		case StatusNotApplicable:
			denied[rec.AccountID] = true
		case StatusExists:
			run.CompliantRoles++
		}
	}
	for id := range seen {
		if !denied[id] {
			run.AccountsAccessible++
		}
	}
}
