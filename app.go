// Package main is the entry point for the boundary-scan application.
package main

import (
	"fmt"
	"os"

	"github.com/thirukguru/boundary-scan/model"
	"github.com/thirukguru/boundary-scan/service/flag"
	"github.com/thirukguru/boundary-scan/service/storage"
	"github.com/thirukguru/boundary-scan/shared/banner"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "db", "history":
			return runStorageCommand(os.Args[1], os.Args[2:])
		}
	}

	flagService := flag.NewService()
	flags, err := flagService.GetParsedFlags()
	if err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	versionInfo := model.VersionInfo{Version: version, Commit: commit, Date: date}

	if flags.Version {
		fmt.Printf("boundary-scan version %s\n", versionInfo.Version)
		fmt.Printf("commit: %s\n", versionInfo.Commit)
		fmt.Printf("built at: %s\n", versionInfo.Date)
		return nil
	}

	if flags.Output != "json" {
		banner.DrawBannerTitle()
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	return runBoundaryScan(flags, versionInfo, storageService)
}
