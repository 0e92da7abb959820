package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
	"github.com/thirukguru/boundary-scan/service/flag"
	"github.com/thirukguru/boundary-scan/service/storage"
	historytable "github.com/thirukguru/boundary-scan/shared/history_table"
	scantable "github.com/thirukguru/boundary-scan/shared/scan_table"
)

func runStorageCommand(cmd string, args []string) error {
	switch cmd {
	case "db":
		return runDBCommand(args)
	case "history":
		return runHistoryCommand(args)
	default:
		return fmt.Errorf("unsupported command: %s", cmd)
	}
}

func runDBCommand(args []string) error {
	fs := pflag.NewFlagSet("db", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	olderThan := fs.Int("older-than", 30, "Purge runs older than N days")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: boundary-scan db <vacuum|reindex|purge> [--db-path ...]")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "vacuum":
		return store.Vacuum(context.Background())
	case "reindex":
		return store.Reindex(context.Background())
	case "purge":
		count, err := store.PurgeOlderThan(context.Background(), *olderThan)
		if err != nil {
			return err
		}
		fmt.Printf("Purged %d runs\n", count)
		return nil
	default:
		return fmt.Errorf("unsupported db command: %s", sub)
	}
}

func runHistoryCommand(args []string) error {
	fs := pflag.NewFlagSet("history", pflag.ContinueOnError)
	dbPath := fs.String("db-path", "", "SQLite database path")
	limit := fs.Int("limit", 20, "Number of runs to list")
	days := fs.Int("days", 30, "Coverage trend window in days")
	boundary := fs.String("permission-boundary", flag.DefaultBoundary, "Permission boundary name for record rendering")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return fmt.Errorf("usage: boundary-scan history <list|show|trend>")
	}

	store, err := storage.NewService(*dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	sub := rest[0]
	switch sub {
	case "list":
		runs, err := store.GetRecentRuns(*limit)
		if err != nil {
			return err
		}
		historytable.RenderRunTable(runs)
		return nil
	case "show":
		if len(rest) < 2 {
			return fmt.Errorf("usage: boundary-scan history show <run-id>")
		}
		runID, err := strconv.ParseInt(rest[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid run id %q: %w", rest[1], err)
		}
		records, err := store.ListRecords(runID)
		if err != nil {
			return err
		}
		scantable.DrawRecordTable(records, *boundary)
		return nil
	case "trend":
		points, err := store.CoverageTrend(*days)
		if err != nil {
			return err
		}
		historytable.RenderCoverageTable(points)
		return nil
	default:
		return fmt.Errorf("unsupported history command: %s", sub)
	}
}
