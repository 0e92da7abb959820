// Package scantable renders the permission boundary scan results in a table
// format.
package scantable

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/thirukguru/boundary-scan/service/scanner"
)

const (
	maxNameWidth = 25
	maxRoleWidth = 40
)

// DrawScanTable renders the ordered record set followed by the run summary.
func DrawScanTable(run *scanner.ScanRun, boundary string) {
	DrawRecordTable(run.Records, boundary)
	drawSummary(run)
}

// DrawRecordTable renders a record set on its own, without a run summary.
// Used when replaying records stored from an earlier run.
func DrawRecordTable(records []scanner.RoleRecord, boundary string) {
	fmt.Printf("\n🔍 Permission Boundary Scan Results - %q\n", boundary)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Account ID", "Account Name", "Role Name", "Permission Boundary"})

	for _, rec := range records {
		t.AppendRow(table.Row{
			rec.AccountID,
			truncate(rec.AccountName, maxNameWidth),
			truncate(rec.Label(), maxRoleWidth),
			formatStatus(rec.Status),
		})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}

func drawSummary(run *scanner.ScanRun) {
	fmt.Println("\n📊 Scan Summary:")
	secs := run.Duration().Seconds()
	fmt.Printf("⏱️  Execution Time: %.2f seconds (%.2f minutes)\n", secs, secs/60)
	fmt.Printf("🏢 Total Accounts: %d\n", run.AccountsTotal)
	fmt.Printf("🔑 Accessible Accounts: %d\n", run.AccountsAccessible)
	fmt.Printf("📋 Total Results: %d\n", len(run.Records))
	fmt.Printf("✅ Roles with Target Boundary: %d\n", run.CompliantRoles)
	if run.Interrupted {
		fmt.Println(text.FgYellow.Sprint("⚠️  Scan interrupted; results above are partial"))
	}
}

func formatStatus(status scanner.BoundaryStatus) string {
	switch status {
	case scanner.StatusExists:
		return text.FgGreen.Sprint(status)
	case scanner.StatusMissing:
		return text.FgRed.Sprint(status)
	default:
		return text.FgYellow.Sprint(status)
	}
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
