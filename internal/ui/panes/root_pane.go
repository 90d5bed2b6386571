// Package panes contains the panes making up the timer screen.
package panes

import (
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/utomato/internal/ui"
)

// RootPane acts as the root UI pane, wrapping all subpanes, managing the
// render cycle, invoking the subpanes' rendering, etc.
type RootPane struct {
	ID ui.PaneID

	renderer ui.RenderOrchestratorControl
	cursor   *ui.Cursor

	dimensions func() (x, y, w, h int)

	subpanesMtx sync.Mutex
	subpanes    []ui.Pane

	log zerolog.Logger
}

// Dimensions gives the dimensions (x-axis offset, y-axis offset, width,
// height) for this pane.
func (p *RootPane) Dimensions() (x, y, w, h int) {
	return p.dimensions()
}

// IsVisible returns true; the root pane is always visible.
func (p *RootPane) IsVisible() bool { return true }

// Identify returns the panes ID.
func (p *RootPane) Identify() ui.PaneID { return p.ID }

// Draw draws this pane.
func (p *RootPane) Draw() {
	p.subpanesMtx.Lock()
	defer p.subpanesMtx.Unlock()

	p.renderer.Clear()

	for _, pane := range p.subpanes {
		if pane.IsVisible() {
			p.log.Trace().Msgf("drawing %d...", pane.Identify())
			pane.Draw()
		} else {
			pane.Undraw()
		}
	}

	// the subpanes have had their say on the cursor by now
	p.cursor.Enact()

	p.renderer.Show()
}

// Undraw undraws all subpanes and shows the cleared screen.
func (p *RootPane) Undraw() {
	p.subpanesMtx.Lock()
	defer p.subpanesMtx.Unlock()

	p.renderer.Clear()
	for _, pane := range p.subpanes {
		pane.Undraw()
	}
	p.cursor.Enact()
	p.renderer.Show()
}

// PushSubpane allows adding a subpane over top of other subpanes.
func (p *RootPane) PushSubpane(pane ui.Pane) {
	p.subpanesMtx.Lock()
	defer p.subpanesMtx.Unlock()
	p.subpanes = append(p.subpanes, pane)
}

// NewRootPane constructs and returns a new RootPane drawing the given
// subpanes in order, i.E. later ones on top.
func NewRootPane(
	renderer ui.RenderOrchestratorControl,
	cursor *ui.Cursor,
	dimensions func() (x, y, w, h int),
	subpanes ...ui.Pane,
) *RootPane {
	rootPane := &RootPane{
		ID:         ui.GeneratePaneID(),
		renderer:   renderer,
		cursor:     cursor,
		dimensions: dimensions,
		subpanes:   subpanes,
		log:        log.With().Str("component", "root-pane").Logger(),
	}
	defer rootPane.log.Trace().Msgf("created root pane with id '%d'", rootPane.Identify())
	return rootPane
}
