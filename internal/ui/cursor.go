package ui

import "sync"

// CursorRequester is what a pane asks for the text cursor through.
type CursorRequester interface {
	Request(l CursorLocation)
}

// Cursor decides where the text cursor is shown for each drawn frame.
// Panes that want the cursor request it while drawing; the last request
// wins. A frame without a request hides the cursor.
type Cursor struct {
	mtx sync.Mutex

	cc        TextCursorController
	requested *CursorLocation
}

// NewCursor returns a Cursor controlling cc.
func NewCursor(cc TextCursorController) *Cursor {
	return &Cursor{cc: cc}
}

// Request asks for the cursor at l in the frame being drawn.
func (c *Cursor) Request(l CursorLocation) {
	c.mtx.Lock()
	defer c.mtx.Unlock()
	c.requested = &l
}

// Enact shows the cursor where it was requested, or hides it, and starts the
// next frame without a request.
func (c *Cursor) Enact() {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	if c.requested == nil {
		c.cc.HideCursor()
		return
	}
	c.cc.ShowCursor(c.requested.X, c.requested.Y)
	c.requested = nil
}
