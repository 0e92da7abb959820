package main

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thirukguru/boundary-scan/service/scanner"
)

func TestDefaultCSVPath(t *testing.T) {
	now := time.Date(2026, 8, 31, 14, 5, 9, 0, time.UTC)
	assert.Equal(t, "permission_boundary_scan_20260831_140509.csv", defaultCSVPath(now))
}

func TestWriteRecordsCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	records := []scanner.RoleRecord{
		{AccountID: "111111111111", AccountName: "sandbox-dev", RoleName: "app-role", Status: scanner.StatusExists},
		{AccountID: "222222222222", AccountName: "sandbox-qa", RoleName: scanner.RoleNameNoBoundary, Status: scanner.StatusMissing, TotalRoles: 7},
		{AccountID: "333333333333", AccountName: "sandbox-prod", RoleName: scanner.RoleNameAccessDenied, Status: scanner.StatusNotApplicable},
	}

	err := writeRecordsCSV(path, "syf-Sandbox-permission-boundary", records)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"AccountID", "AccountName", "RoleName", "syf-Sandbox-permission-boundary"}, rows[0])
	assert.Equal(t, []string{"111111111111", "sandbox-dev", "app-role", "Exists"}, rows[1])
	assert.Equal(t, []string{"222222222222", "sandbox-qa", "NO_ROLES_WITH_BOUNDARY (7 total roles)", "Missing"}, rows[2])
	assert.Equal(t, []string{"333333333333", "sandbox-prod", "ACCESS_DENIED", "N/A"}, rows[3])
}

func TestWriteRecordsCSVBadPath(t *testing.T) {
	err := writeRecordsCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), "b", nil)
	assert.Error(t, err)
}
