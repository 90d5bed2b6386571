// Package tasklog holds the records of completed intervals for the lifetime
// of the process and encodes them for storage.
package tasklog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is a completed interval: what was done, and when it started and
// ended (both formatted timestamps).
type Record struct {
	Description string
	Start       string
	End         string
}

// MarshalJSON encodes the record as a [description, start, end] triple.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode([3]string{r.Description, r.Start, r.End}); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// UnmarshalJSON decodes a [description, start, end] triple.
func (r *Record) UnmarshalJSON(data []byte) error {
	var triple []string
	if err := json.Unmarshal(data, &triple); err != nil {
		return fmt.Errorf("record is not an array of strings (%w)", err)
	}
	if len(triple) != 3 {
		return fmt.Errorf("record has %d fields instead of 3", len(triple))
	}
	r.Description, r.Start, r.End = triple[0], triple[1], triple[2]
	return nil
}

// Log is an append-only, ordered sequence of records.
// The zero value is an empty log ready for use.
type Log struct {
	records []Record
}

// New returns an empty log.
func New() *Log {
	return &Log{records: []Record{}}
}

// Append adds r to the end of the log.
// Records are not validated; an empty description is fine.
func (l *Log) Append(r Record) {
	l.records = append(l.records, r)
}

// Len returns the number of records in the log.
func (l *Log) Len() int { return len(l.records) }

// Snapshot returns the records in insertion order.
// The returned slice is a copy; the log is not cleared.
func (l *Log) Snapshot() []Record {
	result := make([]Record, len(l.records))
	copy(result, l.records)
	return result
}

// Encode serializes records as a JSON array of triples, indented by one space
// per level. Non-ASCII text is kept as UTF-8.
func Encode(records []Record) ([]byte, error) {
	if records == nil {
		records = []Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", " ")
	if err := enc.Encode(records); err != nil {
		return nil, fmt.Errorf("could not encode task records (%w)", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode parses the output of Encode.
func Decode(data []byte) ([]Record, error) {
	records := []Record{}
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("could not decode task records (%w)", err)
	}
	return records, nil
}
