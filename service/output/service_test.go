package output

import (
	"testing"

	"github.com/thirukguru/boundary-scan/service/scanner"
)

type fakeRenderer struct {
	tableCalls   int
	jsonCalls    int
	spinnerOn    bool
	progressSeen []int
}

func (f *fakeRenderer) DrawScanTable(_ *scanner.ScanRun, _ string) { f.tableCalls++ }
func (f *fakeRenderer) OutputScanJSON(_ *scanner.ScanRun) error {
	f.jsonCalls++
	return nil
}
func (f *fakeRenderer) StartSpinner() { f.spinnerOn = true }
func (f *fakeRenderer) UpdateProgress(done, _ int) { f.progressSeen = append(f.progressSeen, done) }
func (f *fakeRenderer) StopSpinner() { f.spinnerOn = false }

func TestRenderScanTableMode(t *testing.T) {
	r := &fakeRenderer{}
	svc := &service{format: FormatTable, renderer: r}

	if err := svc.RenderScan(&scanner.ScanRun{}, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.tableCalls != 1 || r.jsonCalls != 0 {
		t.Fatalf("expected table render, got table=%d json=%d", r.tableCalls, r.jsonCalls)
	}
}

func TestRenderScanJSONMode(t *testing.T) {
	r := &fakeRenderer{}
	svc := &service{format: FormatJSON, renderer: r}

	if err := svc.RenderScan(&scanner.ScanRun{}, "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.jsonCalls != 1 || r.tableCalls != 0 {
		t.Fatalf("expected json render, got table=%d json=%d", r.tableCalls, r.jsonCalls)
	}
}

func TestProgressSuppressedInJSONMode(t *testing.T) {
	r := &fakeRenderer{}
	svc := &service{format: FormatJSON, renderer: r}

	svc.StartProgress()
	svc.Progress(1, 2)
	if r.spinnerOn || len(r.progressSeen) != 0 {
		t.Fatalf("spinner must stay off in json mode: %+v", r)
	}
}

func TestProgressInTableMode(t *testing.T) {
	r := &fakeRenderer{}
	svc := &service{format: FormatTable, renderer: r}

	svc.StartProgress()
	if !r.spinnerOn {
		t.Fatalf("expected spinner started")
	}
	svc.Progress(1, 2)
	svc.Progress(2, 2)
	if len(r.progressSeen) != 2 || r.progressSeen[1] != 2 {
		t.Fatalf("unexpected progress updates: %v", r.progressSeen)
	}
	svc.StopSpinner()
	if r.spinnerOn {
		t.Fatalf("expected spinner stopped")
	}
}
