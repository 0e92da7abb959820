package spinner

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

var loader *spinner.Spinner

// StartSpinner starts the CLI loading spinner.
func StartSpinner() {
	loader = spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	loader.Color("yellow") //nolint:errcheck
	loader.Suffix = " Scanning organization accounts for permission boundaries..."
	loader.Start()
}

// UpdateProgress refreshes the spinner suffix with the number of scanned
// accounts. Safe to call from worker completions; the spinner serializes
// its own repaints.
func UpdateProgress(done, total int) {
	if loader != nil {
		loader.Suffix = fmt.Sprintf(" Scanning accounts... %d/%d complete", done, total)
	}
}

// StopSpinner stops the CLI loading spinner.
func StopSpinner() {
	if loader != nil {
		loader.Stop()
	}
}
