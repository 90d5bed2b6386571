package panes

import (
	"time"

	"github.com/ja-he/utomato/internal/session"
	"github.com/ja-he/utomato/internal/styling"
	"github.com/ja-he/utomato/internal/ui"
)

// SessionView is what the panes need to know of the session.
type SessionView interface {
	Phase() session.Phase
	Running() bool
	Remaining() time.Duration
	TimerString() string
}

// TimerPane shows the program title and, below it, the countdown.
type TimerPane struct {
	ui.LeafPane

	title   string
	session SessionView
}

// Draw draws this pane.
func (p *TimerPane) Draw() {
	x, y, w, h := p.Dimensions()

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Normal)
	p.Renderer.DrawText(x+1, y, w-1, 1, p.Stylesheet.Title.Bolded(), p.title)

	timerStyle := p.Stylesheet.Timer
	if p.session.Phase() != session.Idle && p.session.Remaining() < 0 {
		timerStyle = p.Stylesheet.TimerOverrun
	}
	if !p.session.Running() {
		timerStyle = timerStyle.LightenedFG(40)
	}
	p.Renderer.DrawText(x+1, y+1, w-1, 1, timerStyle, p.session.TimerString())
}

// NewTimerPane constructs and returns a new TimerPane.
func NewTimerPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	title string,
	session SessionView,
) *TimerPane {
	return &TimerPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		title:   title,
		session: session,
	}
}
