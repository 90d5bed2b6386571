package input

// Keyspec is a key sequence as written in the config, e.g. "<cr>" or "q".
type Keyspec string

// Actionspec names an action as written in the config, e.g. "start".
type Actionspec string

// Help maps key sequences to explanations of what they do.
type Help map[Keyspec]string

// The actions a key can be bound to in the timer view.
const (
	ActionStart  Actionspec = "start"
	ActionStop   Actionspec = "stop"
	ActionQuit   Actionspec = "quit"
	ActionFinish Actionspec = "finish"
)

// DefaultBindings are the key bindings of the timer view, unless configured
// otherwise.
func DefaultBindings() map[Keyspec]Actionspec {
	return map[Keyspec]Actionspec{
		"<cr>":    ActionStart,
		"<space>": ActionStart,
		"s":       ActionStop,
		"q":       ActionQuit,
		"f":       ActionFinish,
	}
}
