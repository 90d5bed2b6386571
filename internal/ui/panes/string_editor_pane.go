package panes

import (
	"github.com/ja-he/utomato/internal/control/editor"
	"github.com/ja-he/utomato/internal/styling"
	"github.com/ja-he/utomato/internal/ui"
)

// StringEditorPane visualizes the editing of a string (as seen by a
// StringEditorView), i.E. the description prompt.
// It is visible only while there is a view to show.
type StringEditorPane struct {
	ui.LeafPane

	view func() editor.StringEditorView

	cursor ui.CursorRequester
}

// Draw draws the prompt and places the cursor in it.
func (p *StringEditorPane) Draw() {
	view := p.view()
	if view == nil {
		return
	}
	x, y, w, h := p.Dimensions()

	name := []rune(view.GetName())
	contentOffset := len(name) + 2

	p.Renderer.DrawBox(x, y, w, h, p.Stylesheet.Editor)
	p.Renderer.DrawText(x+1, y, len(name), 1, p.Stylesheet.Editor.Bolded(), string(name))
	p.Renderer.DrawText(x+contentOffset, y, w-contentOffset, 1, p.Stylesheet.Editor, view.GetContent())

	p.cursor.Request(ui.CursorLocation{X: x + contentOffset + view.GetCursorPos(), Y: y})
}

// NewStringEditorPane creates a new StringEditorPane.
// view may return nil, meaning there is nothing being edited.
func NewStringEditorPane(
	renderer ui.ConstrainedRenderer,
	dimensions func() (x, y, w, h int),
	stylesheet styling.Stylesheet,
	view func() editor.StringEditorView,
	cursor ui.CursorRequester,
) *StringEditorPane {
	return &StringEditorPane{
		LeafPane: ui.LeafPane{
			BasePane: ui.BasePane{
				ID:      ui.GeneratePaneID(),
				Visible: func() bool { return view() != nil },
			},
			Renderer:   renderer,
			Dims:       dimensions,
			Stylesheet: stylesheet,
		},
		view:   view,
		cursor: cursor,
	}
}
