// Package config reads the configuration file of utomato.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the configuration data as present in a config file at
// '${UTOMATO_HOME}/config.yaml'.
type Config struct {
	WorkDuration  Duration `yaml:"work-duration"`
	BreakDuration Duration `yaml:"break-duration"`
	PollInterval  Duration `yaml:"poll-interval"`

	// Capture is one of "work", "break" or "both".
	Capture     string `yaml:"capture"`
	AutoAdvance *bool  `yaml:"auto-advance"`
	OutputDir   string `yaml:"output-dir"`

	Keys       map[string]string `yaml:"keys"`
	Stylesheet Stylesheet        `yaml:"stylesheet"`
}

// Duration is a time.Duration written in time.ParseDuration format, e.g.
// "25m".
type Duration struct {
	time.Duration
}

// UnmarshalYAML parses the duration from a YAML string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: invalid duration '%s' (%w)", value.Line, s, err)
	}
	d.Duration = parsed
	return nil
}

// MarshalYAML writes the duration in time.Duration's string format.
func (d Duration) MarshalYAML() (interface{}, error) {
	return d.Duration.String(), nil
}

// A Stylesheet is the stylesheet contents defined in a config file.
type Stylesheet struct {
	Normal       Styling `yaml:"normal"`
	Title        Styling `yaml:"title"`
	Timer        Styling `yaml:"timer"`
	TimerOverrun Styling `yaml:"timer-overrun"`
	Status       Styling `yaml:"status"`
	Editor       Styling `yaml:"editor"`
}

// A Styling is a styling as defined in a config file.
// It must contain fore- and background colors and can optionally specify font
// style (bold, italic, underlined).
type Styling struct {
	Fg    string     `yaml:"fg"`
	Bg    string     `yaml:"bg"`
	Style *FontStyle `yaml:"style"`
}

// A FontStyle can be any combination of bold, italic, and underlined.
type FontStyle struct {
	Bold       bool `yaml:"bold,omitempty"`
	Italic     bool `yaml:"italic,omitempty"`
	Underlined bool `yaml:"underlined,omitempty"`
}

// ParseConfigAugmentDefaults parses the configuration specified in
// YAML-formatted data and uses it to augment a given default configuration.
func ParseConfigAugmentDefaults(defaultTheme ColorschemeType, yamlData []byte) (Config, error) {
	defaultConfig := Default(defaultTheme)

	parsedConfig := Config{}
	err := yaml.Unmarshal(yamlData, &parsedConfig)
	if err != nil {
		return defaultConfig, fmt.Errorf("error unmarshaling yaml (%w)", err)
	}

	result := defaultConfig.augmentWith(parsedConfig)

	err = result.Validate()
	if err != nil {
		return defaultConfig, err
	}

	return result, nil
}

// Validate checks the values that can be checked without further context.
func (c Config) Validate() error {
	if c.WorkDuration.Duration < time.Second {
		return fmt.Errorf("work-duration must be at least 1s (is %s)", c.WorkDuration.Duration)
	}
	if c.BreakDuration.Duration < time.Second {
		return fmt.Errorf("break-duration must be at least 1s (is %s)", c.BreakDuration.Duration)
	}
	if c.PollInterval.Duration < 10*time.Millisecond || c.PollInterval.Duration > time.Second {
		return fmt.Errorf("poll-interval must be between 10ms and 1s (is %s)", c.PollInterval.Duration)
	}
	switch c.Capture {
	case "work", "break", "both":
	default:
		return fmt.Errorf("capture must be 'work', 'break' or 'both' (is '%s')", c.Capture)
	}
	return nil
}

func (base Config) augmentWith(augment Config) Config {
	result := base

	if augment.WorkDuration.Duration != 0 {
		result.WorkDuration = augment.WorkDuration
	}
	if augment.BreakDuration.Duration != 0 {
		result.BreakDuration = augment.BreakDuration
	}
	if augment.PollInterval.Duration != 0 {
		result.PollInterval = augment.PollInterval
	}
	if augment.Capture != "" {
		result.Capture = augment.Capture
	}
	if augment.AutoAdvance != nil {
		result.AutoAdvance = augment.AutoAdvance
	}
	if augment.OutputDir != "" {
		result.OutputDir = augment.OutputDir
	}
	if len(augment.Keys) > 0 {
		result.Keys = augment.Keys
	}

	result.Stylesheet = base.Stylesheet.augmentWith(augment.Stylesheet)

	return result
}

func (base Stylesheet) augmentWith(augment Stylesheet) Stylesheet {
	result := base

	result.Normal.overwriteIfDefined(augment.Normal)
	result.Title.overwriteIfDefined(augment.Title)
	result.Timer.overwriteIfDefined(augment.Timer)
	result.TimerOverrun.overwriteIfDefined(augment.TimerOverrun)
	result.Status.overwriteIfDefined(augment.Status)
	result.Editor.overwriteIfDefined(augment.Editor)

	return result
}

func (s *Styling) overwriteIfDefined(augment Styling) {
	if augment.Fg != "" && augment.Bg != "" {
		s.Fg = augment.Fg
		s.Bg = augment.Bg
	}
	if augment.Style != nil {
		s.Style = &FontStyle{
			Bold:       augment.Style.Bold,
			Italic:     augment.Style.Italic,
			Underlined: augment.Style.Underlined,
		}
	}
}

// A ColorschemeType can either be light or dark.
type ColorschemeType = int

const (
	_ ColorschemeType = iota
	Dark
	Light
)
