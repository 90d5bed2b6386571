package config

import "time"

// Default returns the default configuration with the colorscheme for the
// given type (light or dark).
// Keys are left empty, meaning the built-in key bindings apply.
func Default(colorschemeType ColorschemeType) Config {
	autoAdvance := true
	return Config{
		WorkDuration:  Duration{25 * time.Minute},
		BreakDuration: Duration{5 * time.Minute},
		PollInterval:  Duration{200 * time.Millisecond},
		Capture:       "both",
		AutoAdvance:   &autoAdvance,
		Stylesheet:    defaultStylesheet(colorschemeType),
	}
}

func defaultStylesheet(colorschemeType ColorschemeType) Stylesheet {
	if colorschemeType == Light {
		return Stylesheet{
			Normal:       Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{}},
			Title:        Styling{Fg: "#000000", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Timer:        Styling{Fg: "#3a751a", Bg: "#ffffff", Style: &FontStyle{}},
			TimerOverrun: Styling{Fg: "#882222", Bg: "#ffffff", Style: &FontStyle{Bold: true}},
			Status:       Styling{Fg: "#000000", Bg: "#f0f0f0", Style: &FontStyle{}},
			Editor:       Styling{Fg: "#000000", Bg: "#cccccc", Style: &FontStyle{}},
		}
	}
	return Stylesheet{
		Normal:       Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{}},
		Title:        Styling{Fg: "#ffffff", Bg: "#000000", Style: &FontStyle{Bold: true}},
		Timer:        Styling{Fg: "#c2edab", Bg: "#000000", Style: &FontStyle{}},
		TimerOverrun: Styling{Fg: "#ffaaaa", Bg: "#000000", Style: &FontStyle{Bold: true}},
		Status:       Styling{Fg: "#f0f0f0", Bg: "#202020", Style: &FontStyle{}},
		Editor:       Styling{Fg: "#ffffff", Bg: "#606060", Style: &FontStyle{}},
	}
}
