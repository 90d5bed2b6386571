// Package processors contains input processors beyond the plain key tree.
package processors

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/ja-he/utomato/internal/control/action"
	"github.com/ja-he/utomato/internal/input"
)

// TextInputProcessor is an input.Processor specifically for text input.
// It can have a number of defined mappings for non-runes (e.g. ENTER to commit
// the text).
// Any runes it is asked to process will be given to its callback function for
// runes, which could, e.g., insert the given rune into a string.
type TextInputProcessor struct {
	mappings map[input.Key]action.Action

	runeCallback func(r rune)
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input.
func (p *TextInputProcessor) ProcessInput(key input.Key) bool {
	if key.Key == tcell.KeyRune {
		p.runeCallback(key.Ch)
		return true
	}
	action, mappingExists := p.mappings[key]
	if !mappingExists {
		return false
	}
	action.Do()
	return true
}

// CapturesInput returns whether this processor "captures" input.
// A text processor always takes precedence.
func (p *TextInputProcessor) CapturesInput() bool {
	return true
}

// GetHelp returns the input help map for this processor.
func (p *TextInputProcessor) GetHelp() input.Help {
	result := input.Help{}
	for k, a := range p.mappings {
		result[input.Keyspec(input.ToConfigIdentifierString(k))] = a.Explain()
	}
	return result
}

// NewTextInputProcessor returns a pointer to a new TextInputProcessor.
// Every keyspec in mappings must be exactly one key and must not be a rune.
func NewTextInputProcessor(
	mappings map[input.Keyspec]action.Action,
	runeCallback func(r rune),
) (*TextInputProcessor, error) {
	result := map[input.Key]action.Action{}
	for keyspec, action := range mappings {
		keys, err := input.ConfigKeyspecToKeys(keyspec)
		if err != nil {
			return nil, fmt.Errorf("could not convert '%s' to keys (%w)", keyspec, err)
		}
		if len(keys) != 1 {
			return nil, fmt.Errorf("keyspec '%s' for text processor has not exactly one key (but %d)", keyspec, len(keys))
		}
		if keys[0].Key == tcell.KeyRune {
			return nil, fmt.Errorf("keyspec '%s' for text processor is a rune, which would be shadowed by text input", keyspec)
		}
		result[keys[0]] = action
	}
	return &TextInputProcessor{
		mappings:     result,
		runeCallback: runeCallback,
	}, nil
}
