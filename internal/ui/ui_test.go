package ui_test

import (
	"testing"

	"github.com/ja-he/utomato/internal/styling"
	"github.com/ja-he/utomato/internal/ui"
)

type drawCall struct {
	x, y, w, h int
	text       string
}

type recordingRenderer struct {
	boxes []drawCall
	texts []drawCall
}

func (r *recordingRenderer) DrawBox(x, y, w, h int, _ styling.DrawStyling) {
	r.boxes = append(r.boxes, drawCall{x, y, w, h, ""})
}
func (r *recordingRenderer) DrawText(x, y, w, h int, _ styling.DrawStyling, text string) {
	r.texts = append(r.texts, drawCall{x, y, w, h, text})
}
func (r *recordingRenderer) Dimensions() (x, y, w, h int) { return 0, 0, 80, 24 }

func TestConstrainedRenderer(t *testing.T) {
	style, err := styling.StyleFromHex("#ffffff", "#000000")
	if err != nil {
		t.Fatal(err)
	}

	t.Run("within bounds is unchanged", func(t *testing.T) {
		rec := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(rec, func() (int, int, int, int) { return 0, 0, 10, 3 })
		cr.DrawText(1, 1, 5, 1, style, "hello")
		if len(rec.texts) != 1 || rec.texts[0] != (drawCall{1, 1, 5, 1, "hello"}) {
			t.Error("unexpected draw calls:", rec.texts)
		}
	})

	t.Run("overlong is shortened", func(t *testing.T) {
		rec := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(rec, func() (int, int, int, int) { return 0, 0, 10, 3 })
		cr.DrawBox(5, 1, 20, 20, style)
		if len(rec.boxes) != 1 || rec.boxes[0] != (drawCall{5, 1, 5, 2, ""}) {
			t.Error("unexpected draw calls:", rec.boxes)
		}
	})

	t.Run("text left of constraint is cut at the front", func(t *testing.T) {
		rec := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(rec, func() (int, int, int, int) { return 2, 0, 10, 3 })
		cr.DrawText(0, 0, 10, 1, style, "abcdef")
		if len(rec.texts) != 1 || rec.texts[0] != (drawCall{2, 0, 8, 1, "cdef"}) {
			t.Error("unexpected draw calls:", rec.texts)
		}
	})

	t.Run("outside is not drawn", func(t *testing.T) {
		rec := &recordingRenderer{}
		cr := ui.NewConstrainedRenderer(rec, func() (int, int, int, int) { return 0, 0, 10, 3 })
		cr.DrawText(12, 0, 5, 1, style, "nope")
		cr.DrawBox(0, 5, 5, 1, style)
		if len(rec.texts) != 0 || len(rec.boxes) != 0 {
			t.Error("expected no draw calls, got", rec.texts, rec.boxes)
		}
	})
}

type cursorRecorder struct {
	shown   bool
	x, y    int
	hidings int
}

func (c *cursorRecorder) HideCursor() { c.shown = false; c.hidings++ }
func (c *cursorRecorder) ShowCursor(x, y int) {
	c.shown = true
	c.x, c.y = x, y
}

func TestCursor(t *testing.T) {
	cc := &cursorRecorder{}
	c := ui.NewCursor(cc)

	c.Enact()
	if cc.shown || cc.hidings != 1 {
		t.Error("expected cursor hidden without requests")
	}

	c.Request(ui.CursorLocation{X: 9, Y: 9})
	c.Request(ui.CursorLocation{X: 3, Y: 2})
	c.Enact()
	if !cc.shown || cc.x != 3 || cc.y != 2 {
		t.Error("expected cursor at the last requested 3:2, got", cc)
	}

	// nothing requested in the next frame
	c.Enact()
	if cc.shown || cc.hidings != 2 {
		t.Error("expected cursor hidden in a frame without request")
	}
}
