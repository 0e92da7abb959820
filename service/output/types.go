package output

import (
	"encoding/json"
	"fmt"

	"github.com/thirukguru/boundary-scan/service/scanner"
	scantable "github.com/thirukguru/boundary-scan/shared/scan_table"
	"github.com/thirukguru/boundary-scan/shared/spinner"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing results
type Renderer interface {
	DrawScanTable(run *scanner.ScanRun, boundary string)
	OutputScanJSON(run *scanner.ScanRun) error
	StartSpinner()
	UpdateProgress(done, total int)
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawScanTable(run *scanner.ScanRun, boundary string) {
	scantable.DrawScanTable(run, boundary)
}

func (r *realRenderer) OutputScanJSON(run *scanner.ScanRun) error {
	b, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal scan run: %w", err)
	}
	fmt.Println(string(b))
	return nil
}

func (r *realRenderer) StartSpinner() {
	spinner.StartSpinner()
}

func (r *realRenderer) UpdateProgress(done, total int) {
	spinner.UpdateProgress(done, total)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

type service struct {
	format   Format
	renderer Renderer
}

// Service is the interface for the output service.
type Service interface {
	RenderScan(run *scanner.ScanRun, boundary string) error
	StartProgress()
	Progress(done, total int)
	StopSpinner()
}
