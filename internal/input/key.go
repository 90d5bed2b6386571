package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press as this package expects it.
// Any Key for a tcell.EventKey should be obtained via KeyFromTcellEvent.
type Key struct {
	Mod tcell.ModMask
	Key tcell.Key
	Ch  rune
}

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// ToDebugString returns a representation of the key for logging.
func (k *Key) ToDebugString() string {
	return fmt.Sprintf(
		"(%s (%d),'%s'(%d))",
		tcell.KeyNames[k.Key],
		int(k.Key),
		string(k.Ch),
		int(k.Ch),
	)
}

// IsInterrupt returns whether the key is the terminal's interrupt (Ctrl-C),
// which the TUI receives as a key press rather than a signal.
func (k Key) IsInterrupt() bool {
	return k.Key == tcell.KeyCtrlC
}
