package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/ja-he/utomato/internal/clock"
	"github.com/ja-he/utomato/internal/tasklog"
)

// ShowCommand holds the flags for the `show` command line command, for
// `go-flags` to parse command line args into.
type ShowCommand struct {
	Args struct {
		File string `positional-arg-name:"<file>" description:"the task list file to show"`
	} `positional-args:"true" required:"true"`
}

// Execute executes the show command.
// (This gets called by `go-flags` when `show` is provided on the command line)
func (command *ShowCommand) Execute(args []string) error {
	data, err := os.ReadFile(command.Args.File)
	if err != nil {
		return fmt.Errorf("could not read task list (%w)", err)
	}
	return show(os.Stdout, data)
}

// show prints the records of an encoded task list, one per line, after
// checking that all of their timestamps can be read.
func show(out io.Writer, data []byte) error {
	records, err := tasklog.Decode(data)
	if err != nil {
		return fmt.Errorf("could not decode task list (%w)", err)
	}

	for i, record := range records {
		for _, timestamp := range []string{record.Start, record.End} {
			_, err := clock.Parse(timestamp)
			if err != nil {
				return fmt.Errorf("record %d has an invalid timestamp (%w)", i+1, err)
			}
		}
	}

	for _, record := range records {
		description := record.Description
		if description == "" {
			description = "-"
		}
		_, err := fmt.Fprintf(out, "%s -- %s  %s\n", record.Start, record.End, description)
		if err != nil {
			return err
		}
	}
	return nil
}
