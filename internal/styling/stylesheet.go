package styling

import (
	"fmt"

	"github.com/ja-he/utomato/internal/config"
)

// Stylesheet represents all styles used by the application for rendering.
type Stylesheet struct {
	Normal DrawStyling

	Title        DrawStyling
	Timer        DrawStyling
	TimerOverrun DrawStyling

	Status DrawStyling
	Editor DrawStyling
}

// NewStylesheetFromConfig constructs a new stylesheet from a given config
// stylesheet.
func NewStylesheetFromConfig(c config.Stylesheet) (*Stylesheet, error) {
	stylesheet := Stylesheet{}

	for _, entry := range []struct {
		name   string
		from   config.Styling
		target *DrawStyling
	}{
		{"normal", c.Normal, &stylesheet.Normal},
		{"title", c.Title, &stylesheet.Title},
		{"timer", c.Timer, &stylesheet.Timer},
		{"timer-overrun", c.TimerOverrun, &stylesheet.TimerOverrun},
		{"status", c.Status, &stylesheet.Status},
		{"editor", c.Editor, &stylesheet.Editor},
	} {
		style, err := StyleFromConfig(entry.from)
		if err != nil {
			return nil, fmt.Errorf("invalid style '%s' (%w)", entry.name, err)
		}
		*entry.target = style
	}

	return &stylesheet, nil
}

// StyleFromConfig constructs the styling described by a config styling.
func StyleFromConfig(c config.Styling) (DrawStyling, error) {
	style, err := StyleFromHex(c.Fg, c.Bg)
	if err != nil {
		return nil, err
	}
	if c.Style != nil {
		style.bold = c.Style.Bold
		style.italic = c.Style.Italic
		style.underlined = c.Style.Underlined
	}
	return style, nil
}
