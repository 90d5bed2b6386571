// Package persist writes the task log to durable storage, once, at the end of
// a run.
package persist

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/ja-he/utomato/internal/clock"
	"github.com/ja-he/utomato/internal/tasklog"
)

// Extension is appended to the formatted timestamp to form the file name.
const Extension = ".tasklist"

// ErrAlreadyFlushed is returned by every Flush after the first.
var ErrAlreadyFlushed = errors.New("task log was already flushed")

// CollisionError is returned when the target file already has content.
// The file is left untouched; Contents holds what could not be written.
type CollisionError struct {
	Filename string
	Contents []byte
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("file '%s' already has content, not overwriting it", e.Filename)
}

// Source provides the records to flush.
type Source interface {
	Snapshot() []tasklog.Record
}

// Writer flushes a task log into a file in Dir named after the time of the
// flush.
type Writer struct {
	// Dir is the directory the file is created in; empty means the working
	// directory.
	Dir string
	// Location is the time zone the file name is formatted in; nil means local
	// time.
	Location *time.Location

	clock   clock.Clock
	log     zerolog.Logger
	flushed bool
}

// NewWriter returns a Writer for the given directory.
func NewWriter(dir string, c clock.Clock, logger zerolog.Logger) *Writer {
	return &Writer{
		Dir:   dir,
		clock: c,
		log:   logger,
	}
}

// Filename returns the path a flush at time now writes to.
func (w *Writer) Filename(now time.Time) string {
	return filepath.Join(w.Dir, clock.Format(now, w.Location)+Extension)
}

// Flushed returns whether Flush was called before.
func (w *Writer) Flushed() bool { return w.flushed }

// Flush serializes the records of src and writes them to the file for the
// current time.
//
// A target file that already has content is never modified; a
// *CollisionError is returned instead.
// Only the first call does anything; later calls return ErrAlreadyFlushed.
func (w *Writer) Flush(src Source) error {
	if w.flushed {
		return ErrAlreadyFlushed
	}
	w.flushed = true

	records := src.Snapshot()
	contents, err := tasklog.Encode(records)
	if err != nil {
		return err
	}

	filename := w.Filename(w.clock.Now())
	err = writeIfEmpty(filename, contents)
	if err != nil {
		return err
	}

	w.log.Info().Str("file", filename).Int("records", len(records)).Msg("wrote task list")
	return nil
}

func writeIfEmpty(filename string, contents []byte) error {
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("could not open '%s' (%w)", filename, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("could not stat '%s' (%w)", filename, err)
	}
	if info.Size() > 0 {
		return &CollisionError{Filename: filename, Contents: contents}
	}

	_, err = f.Write(contents)
	if err != nil {
		return fmt.Errorf("could not write '%s' (%w)", filename, err)
	}
	return f.Close()
}

// Report tells the operator about a failed flush.
// For a collision, the file name and the unwritten contents are printed, so
// that nothing is lost.
func Report(out io.Writer, err error) {
	var collision *CollisionError
	if errors.As(err, &collision) {
		fmt.Fprintf(out, "Problem writing %s!\n", collision.Filename)
		fmt.Fprintln(out, "The contents which could not be saved are:")
		fmt.Fprintln(out, string(collision.Contents))
		return
	}
	fmt.Fprintf(out, "Problem writing task list: %s\n", err.Error())
}
