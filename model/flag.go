package model

// Flags represents the command line flags.
type Flags struct {
	Profile     string
	Region      string
	Boundary    string
	RoleName    string
	Concurrency int
	Version     bool
	Output      string
	CSVPath     string
	NoCSV       bool
	Store       bool
	DBPath      string
}
