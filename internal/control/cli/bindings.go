package cli

import (
	"fmt"

	"github.com/ja-he/utomato/internal/control/action"
	"github.com/ja-he/utomato/internal/input"
)

// bindingsFromConfig returns the configured key bindings, or the defaults if
// none are configured.
func bindingsFromConfig(keys map[string]string) map[input.Keyspec]input.Actionspec {
	if len(keys) == 0 {
		return input.DefaultBindings()
	}
	result := make(map[input.Keyspec]input.Actionspec, len(keys))
	for keyspec, actionspec := range keys {
		result[input.Keyspec(keyspec)] = input.Actionspec(actionspec)
	}
	return result
}

// constructBindingsTree builds the input tree for the timer view, looking up
// the named actions in available.
func constructBindingsTree(
	bindings map[input.Keyspec]input.Actionspec,
	available map[input.Actionspec]action.Action,
) (*input.Tree, error) {
	spec := make(map[input.Keyspec]action.Action, len(bindings))
	for keyspec, actionspec := range bindings {
		a, ok := available[actionspec]
		if !ok {
			return nil, fmt.Errorf("key '%s' is bound to unknown action '%s'", keyspec, actionspec)
		}
		spec[keyspec] = a
	}
	tree, err := input.ConstructInputTree(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid key bindings (%w)", err)
	}
	return tree, nil
}
