package cli

import (
	"fmt"
	"os"
)

// For proper builds, these variables should be set via ldflags.
var version = "development"
var hash = "unknown"

// VersionCommand holds the flags for the `version` command line command, for
// `go-flags` to parse command line args into.
type VersionCommand struct {
}

// Execute executes the version command.
// (This gets called by `go-flags` when `version` is provided on the command
// line)
func (command *VersionCommand) Execute(args []string) error {
	_, err := fmt.Fprintln(os.Stdout, versionString())
	return err
}

func versionString() string {
	return fmt.Sprintf("utomato %s (%s)", version, hash)
}
