package flag

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/thirukguru/boundary-scan/model"
)

// Defaults for the scan configuration.
const (
	DefaultBoundary    = "syf-Sandbox-permission-boundary"
	DefaultRoleName    = "ca-iam-cie-engineer"
	DefaultConcurrency = 50
)

// NewService creates a new flag service.
func NewService() Service {
	return &service{}
}

// GetParsedFlags parses and returns the command-line flags.
func (s *service) GetParsedFlags() (model.Flags, error) {
	profile := pflag.StringP("profile", "p", "", "AWS profile to use for the management account")
	region := pflag.StringP("region", "r", "", "AWS region to use")
	boundary := pflag.StringP("boundary", "b", DefaultBoundary, "Permission boundary short name to match")
	roleName := pflag.String("role-name", DefaultRoleName, "Role assumed in every member account")
	concurrency := pflag.IntP("concurrency", "c", DefaultConcurrency, "Number of accounts scanned in parallel")
	version := pflag.BoolP("version", "v", false, "Show version information")
	output := pflag.StringP("output", "o", "table", "Output format (table or json)")
	csvPath := pflag.String("csv", "", "CSV output path (default permission_boundary_scan_<timestamp>.csv)")
	noCSV := pflag.Bool("no-csv", false, "Skip CSV export")
	store := pflag.Bool("store", false, "Persist scan results in local SQLite database")
	dbPath := pflag.String("db-path", "", "Custom SQLite database path (default ~/.boundary-scan/history.db)")

	pflag.Parse()

	if *concurrency < 1 {
		return model.Flags{}, fmt.Errorf("concurrency must be at least 1, got %d", *concurrency)
	}

	flags := model.Flags{
		Profile:     *profile,
		Region:      *region,
		Boundary:    *boundary,
		RoleName:    *roleName,
		Concurrency: *concurrency,
		Version:     *version,
		Output:      *output,
		CSVPath:     *csvPath,
		NoCSV:       *noCSV,
		Store:       *store,
		DBPath:      *dbPath,
	}

	return flags, nil
}
