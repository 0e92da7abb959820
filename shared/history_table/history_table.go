// Package historytable renders stored scan runs and coverage trends.
package historytable

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/thirukguru/boundary-scan/service/storage"
)

// RenderRunTable prints an ASCII table of recent runs.
func RenderRunTable(runs []storage.RunSummary) {
	if len(runs) == 0 {
		fmt.Println("No stored runs found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Run", "Started", "Boundary", "Accounts", "Accessible", "Compliant", "Records"})
	for _, r := range runs {
		started := r.StartedAt.Format("2006-01-02 15:04:05")
		if r.Interrupted {
			started += " (interrupted)"
		}
		t.AppendRow(table.Row{r.RunID, started, r.Boundary, r.AccountsTotal, r.AccountsAccessible, r.CompliantRoles, r.TotalRecords})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderCoverageTable prints an ASCII table of daily coverage aggregates.
func RenderCoverageTable(points []storage.CoveragePoint) {
	if len(points) == 0 {
		fmt.Println("No coverage data found")
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Date", "Boundary", "Accounts", "Accessible", "Compliant Roles"})
	for _, p := range points {
		t.AppendRow(table.Row{p.Date, p.Boundary, p.AccountsTotal, p.AccountsAccessible, p.CompliantRoles})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
