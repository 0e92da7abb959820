package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/thirukguru/boundary-scan/service/scanner"
)

func newTestStorage(t *testing.T) Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	svc, err := NewService(dbPath)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func sampleRun() *scanner.ScanRun {
	started := time.Now().Add(-30 * time.Second)
	return &scanner.ScanRun{
		StartedAt:          started,
		FinishedAt:         started.Add(25 * time.Second),
		AccountsTotal:      3,
		AccountsAccessible: 2,
		CompliantRoles:     1,
		Records: []scanner.RoleRecord{
			{AccountID: "111111111111", AccountName: "locked", RoleName: scanner.RoleNameAccessDenied, Status: scanner.StatusNotApplicable},
			{AccountID: "222222222222", AccountName: "empty", RoleName: scanner.RoleNameNoBoundary, Status: scanner.StatusMissing, TotalRoles: 5},
			{AccountID: "333333333333", AccountName: "good", RoleName: "sandbox-dev", Status: scanner.StatusExists},
		},
	}
}

func TestSaveRunAndQueries(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	runID, err := svc.SaveRun(ctx, SaveRunInput{
		RunUUID:  "run-1",
		Boundary: "syf-Sandbox-permission-boundary",
		RoleName: "ca-iam-cie-engineer",
		Version:  "test",
		Run:      sampleRun(),
	})
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if runID <= 0 {
		t.Fatalf("expected positive runID, got %d", runID)
	}

	recent, err := svc.GetRecentRuns(10)
	if err != nil {
		t.Fatalf("GetRecentRuns failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent run, got %d", len(recent))
	}
	got := recent[0]
	if got.Boundary != "syf-Sandbox-permission-boundary" || got.AccountsTotal != 3 ||
		got.AccountsAccessible != 2 || got.CompliantRoles != 1 || got.TotalRecords != 3 {
		t.Fatalf("unexpected run summary: %+v", got)
	}
	if got.Interrupted {
		t.Fatalf("run should not be marked interrupted: %+v", got)
	}

	records, err := svc.ListRecords(runID)
	if err != nil {
		t.Fatalf("ListRecords failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	if records[1].Status != scanner.StatusMissing || records[1].TotalRoles != 5 {
		t.Fatalf("unexpected missing sentinel: %+v", records[1])
	}

	points, err := svc.CoverageTrend(30)
	if err != nil {
		t.Fatalf("CoverageTrend failed: %v", err)
	}
	if len(points) != 1 || points[0].AccountsAccessible != 2 || points[0].CompliantRoles != 1 {
		t.Fatalf("unexpected trend points: %+v", points)
	}
}

func TestSaveRunValidation(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	if _, err := svc.SaveRun(ctx, SaveRunInput{Boundary: "b"}); err == nil {
		t.Fatalf("expected error for missing run")
	}
	if _, err := svc.SaveRun(ctx, SaveRunInput{Run: sampleRun()}); err == nil {
		t.Fatalf("expected error for missing boundary")
	}
}

func TestPurgeAndMaintenance(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	if _, err := svc.SaveRun(ctx, SaveRunInput{Boundary: "b", RoleName: "r", Run: sampleRun()}); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	// Recent run survives the purge window.
	count, err := svc.PurgeOlderThan(ctx, 30)
	if err != nil {
		t.Fatalf("PurgeOlderThan failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 purged runs, got %d", count)
	}
	if _, err := svc.PurgeOlderThan(ctx, 0); err == nil {
		t.Fatalf("expected error for non-positive days")
	}

	if err := svc.Vacuum(ctx); err != nil {
		t.Fatalf("Vacuum failed: %v", err)
	}
	if err := svc.Reindex(ctx); err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}
}
