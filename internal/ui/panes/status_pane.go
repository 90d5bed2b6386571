package panes

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ja-he/utomato/internal/input"
	"github.com/ja-he/utomato/internal/potatolog"
	"github.com/ja-he/utomato/internal/session"
	"github.com/ja-he/utomato/internal/styling"
	"github.com/ja-he/utomato/internal/ui"
)

// StatusPane is a status bar that displays the current phase, the available
// key mappings and the most recent log message.
type StatusPane struct {
	ui.LeafPane

	session   SessionView
	help      func() input.Help
	logReader potatolog.LogReader
}

// Draw draws this pane.
func (p *StatusPane) Draw() {
	x, y, w, h := p.Dimensions()

	bgStyle := p.Stylesheet.Status
	phaseStyle := bgStyle.Bolded()

	p.Renderer.DrawBox(x, y, w, h, bgStyle)

	phaseStr := PhaseString(p.session.Phase(), p.session.Running())
	p.Renderer.DrawText(x, y, len(phaseStr), 1, phaseStyle, phaseStr)
	col := x + len(phaseStr) + 1

	helpStr := HelpString(p.help())
	p.Renderer.DrawText(col, y, w-col, 1, bgStyle.Italicized(), helpStr)
	col += len([]rune(helpStr)) + 2

	if p.logReader == nil {
		return
	}
	if level, message, ok := p.logReader.Last(); ok {
		logStr := fmt.Sprintf("%s: %s", level, message)
		p.Renderer.DrawText(col, y, w-col, 1, bgStyle.LightenedFG(30), logStr)
	}
}

// PhaseString renders the phase for the status bar, e.g. " WORKING ", noting
// when the countdown is stopped.
func PhaseString(phase session.Phase, running bool) string {
	result := " " + strings.ToUpper(phase.String()) + " "
	if phase != session.Idle && !running {
		result += "(stopped) "
	}
	return result
}

// HelpString renders a help map in a single line, grouping the keys that map
// to the same action, e.g. "<cr>|<space>:start f:finish".
func HelpString(help input.Help) string {
	keysByAction := map[string][]string{}
	for keyspec, action := range help {
		keysByAction[action] = append(keysByAction[action], string(keyspec))
	}
	actions := make([]string, 0, len(keysByAction))
	for action := range keysByAction {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	parts := make([]string, len(actions))
	for i, action := range actions {
		keys := keysByAction[action]
		sort.Strings(keys)
		parts[i] = strings.Join(keys, "|") + ":" + action
	}
	return strings.Join(parts, " ")
}

// NewStatusPane constructs and returns a new StatusPane.
func NewStatusPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	session SessionView,
	help func() input.Help,
	logReader potatolog.LogReader,
) *StatusPane {
	return &StatusPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID: ui.GeneratePaneID(),
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		session:   session,
		help:      help,
		logReader: logReader,
	}
}
