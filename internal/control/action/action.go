// Package action provides the actions key bindings resolve to.
package action

// Action is something a key binding can trigger.
type Action interface {
	// Do performs the action.
	Do()
	// Explain returns a short description of what Do does, e.g. for help
	// output.
	Explain() string
}
