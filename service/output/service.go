// Package output provides a service for rendering results to the console.
package output

import "github.com/thirukguru/boundary-scan/service/scanner"

// NewService creates a new output service with the specified format
func NewService(format string) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{
		format:   f,
		renderer: &realRenderer{},
	}
}

func (s *service) RenderScan(run *scanner.ScanRun, boundary string) error {
	if s.format == FormatJSON {
		return s.renderer.OutputScanJSON(run)
	}
	s.renderer.DrawScanTable(run, boundary)
	return nil
}

// StartProgress starts the spinner; table mode only, JSON output must stay
// machine-readable.
func (s *service) StartProgress() {
	if s.format == FormatTable {
		s.renderer.StartSpinner()
	}
}

func (s *service) Progress(done, total int) {
	if s.format == FormatTable {
		s.renderer.UpdateProgress(done, total)
	}
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}
