// Package cli provides the command-line interface for utomato.
package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// CommandLineOpts are the options and commands for `go-flags` to parse the
// command line into.
type CommandLineOpts struct {
	Version bool `short:"v" long:"version" description:"Show the program version"`

	TuiCommand     TUICommand     `command:"tui" subcommands-optional:"true" description:"Run the timer"`
	ShowCommand    ShowCommand    `command:"show" subcommands-optional:"true" description:"Print the records of a task list file"`
	VersionCommand VersionCommand `command:"version" subcommands-optional:"true" description:"Show the program version"`
}

// Opts is what the command line is parsed into.
var Opts CommandLineOpts

// baseDirPath returns the directory the config is read from, which is
// $UTOMATO_HOME or, if that is not set, $HOME/.config/utomato.
func baseDirPath() string {
	utomatoHome := os.Getenv("UTOMATO_HOME")
	if utomatoHome == "" {
		return filepath.Join(os.Getenv("HOME"), ".config", "utomato")
	}
	return strings.TrimRight(utomatoHome, "/")
}
