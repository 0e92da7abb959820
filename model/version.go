// Package model defines the data structures shared across the application.
package model

// VersionInfo carries build-time metadata injected via ldflags.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}
