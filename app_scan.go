package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thirukguru/boundary-scan/model"
	"github.com/thirukguru/boundary-scan/service/awsconfig"
	"github.com/thirukguru/boundary-scan/service/broker"
	"github.com/thirukguru/boundary-scan/service/directory"
	"github.com/thirukguru/boundary-scan/service/enumerator"
	"github.com/thirukguru/boundary-scan/service/output"
	"github.com/thirukguru/boundary-scan/service/scanner"
	"github.com/thirukguru/boundary-scan/service/storage"
)

func runBoundaryScan(flags model.Flags, versionInfo model.VersionInfo, storageService storage.Service) error {
	// Ctrl-C stops dispatching new accounts; whatever has been published is
	// still rendered and exported below.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgService := awsconfig.NewService()
	awsCfg, err := cfgService.GetAWSCfg(ctx, flags.Region, flags.Profile)
	if err != nil {
		return fmt.Errorf("failed to load AWS config: %w", err)
	}
	if flags.Region == "" {
		flags.Region = awsCfg.Region
	}

	directoryService := directory.NewService(awsCfg)
	brokerService := broker.NewService(awsCfg)
	enumeratorService := enumerator.NewService(flags.Region)
	scannerService := scanner.NewService(directoryService, brokerService, enumeratorService)
	outputService := output.NewService(flags.Output)

	if flags.Output != "json" {
		fmt.Printf("🎯 Target Permission Boundary: %s\n", flags.Boundary)
		fmt.Printf("👤 Assuming Role: %s\n", flags.RoleName)
		fmt.Printf("🚀 Scanning with %d workers...\n", flags.Concurrency)
	}

	outputService.StartProgress()
	scanRun, err := scannerService.ScanAll(ctx, scanner.ScanOptions{
		Boundary:    flags.Boundary,
		RoleName:    flags.RoleName,
		Concurrency: flags.Concurrency,
		OnProgress:  outputService.Progress,
	})
	outputService.StopSpinner()
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if err := outputService.RenderScan(scanRun, flags.Boundary); err != nil {
		return err
	}

	if !flags.NoCSV {
		path := flags.CSVPath
		if path == "" {
			path = defaultCSVPath(time.Now())
		}
		if err := writeRecordsCSV(path, flags.Boundary, scanRun.Records); err != nil {
			return fmt.Errorf("failed to write CSV: %w", err)
		}
		if flags.Output != "json" {
			fmt.Printf("✅ Results saved to %s\n", path)
		}
	}

	if storageService != nil {
		// Persist even after an interrupt; the scan context is likely dead.
		if _, err := storageService.SaveRun(context.Background(), storage.SaveRunInput{
			Boundary: flags.Boundary,
			RoleName: flags.RoleName,
			Version:  versionInfo.Version,
			Run:      scanRun,
		}); err != nil {
			return fmt.Errorf("failed to store run: %w", err)
		}
	}

	return nil
}

func defaultCSVPath(now time.Time) string {
	return fmt.Sprintf("permission_boundary_scan_%s.csv", now.Format("20060102_150405"))
}

func writeRecordsCSV(path, boundary string, records []scanner.RoleRecord) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	_ = w.Write([]string{"AccountID", "AccountName", "RoleName", boundary})
	for _, rec := range records {
		_ = w.Write([]string{rec.AccountID, rec.AccountName, rec.Label(), string(rec.Status)})
	}
	w.Flush()
	return w.Error()
}
