package potatolog_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/utomato/internal/potatolog"
)

func TestMemoryLogReaderWriter(t *testing.T) {
	w := potatolog.NewMemoryLogReaderWriter(3)
	logger := zerolog.New(w)

	if _, _, ok := w.Last(); ok {
		t.Error("empty log has last entry")
	}

	logger.Info().Msg("one")
	logger.Warn().Str("file", "x").Msg("two")
	logger.Debug().Msg("three")

	level, message, ok := w.Last()
	if !ok || level != "warn" || message != "two" {
		t.Errorf("unexpected last entry (%s, %s, %t)", level, message, ok)
	}

	logger.Info().Msg("four")
	entries := w.Get()
	if len(entries) != 3 {
		t.Fatalf("expected capacity to limit to 3 entries, got %d", len(entries))
	}
	if entries[0]["message"] != "two" || entries[0]["file"] != "x" {
		t.Error("unexpected oldest entry:", entries[0])
	}

	t.Run("invalid", func(t *testing.T) {
		if _, err := w.Write([]byte("not json")); err == nil {
			t.Error("expected error for non-json input")
		}
	})
}
