package input

import (
	"fmt"

	"github.com/ja-he/utomato/internal/control/action"
)

// Tree represents an input tree, which can contain various input sequences
// that terminate in an action.
//
// Example:
//
//	tree:                       mapping:
//
//	x
//	+-y
//	| +-z   -> action1          "xyz" -> action1
//	+-z     -> action2          "xz"  -> action2
//	z       -> action3          "z"   -> action3
type Tree struct {
	Root    *Node
	Current *Node
}

// ProcessInput attempts to process the provided input.
// Returns whether the provided input "applied", i.E. the processor performed
// an action based on the input (or advanced along a sequence).
func (t *Tree) ProcessInput(k Key) (applied bool) {
	next := t.Current.Child(k)
	switch {
	case next == nil:
		t.Current = t.Root
		return false
	case next.IsLeaf():
		t.Current = t.Root
		next.Action.Do()
		return true
	default:
		t.Current = next
		return true
	}
}

// CapturesInput returns whether this processor "captures" input, i.E. whether
// it is in the middle of a sequence.
func (t *Tree) CapturesInput() bool {
	return t.Current != t.Root
}

// GetHelp returns the input help map for this tree.
func (t *Tree) GetHelp() Help {
	result := Help{}
	var walk func(prefix string, n *Node)
	walk = func(prefix string, n *Node) {
		if n.IsLeaf() {
			result[Keyspec(prefix)] = n.Action.Explain()
			return
		}
		for k, child := range n.Children {
			walk(prefix+ToConfigIdentifierString(k), child)
		}
	}
	walk("", t.Root)
	return result
}

// ConstructInputTree construct a Tree for the given mappings of input
// sequence strings to actions.
// If the given mapping is invalid (including one sequence being the prefix
// of another), this returns an error.
func ConstructInputTree(
	spec map[Keyspec]action.Action,
) (*Tree, error) {
	root := branch()

	for mapping, action := range spec {
		sequence, err := ConfigKeyspecToKeys(mapping)
		if err != nil {
			return nil, fmt.Errorf("error converting config keyspec (%w)", err)
		}
		if len(sequence) == 0 {
			return nil, fmt.Errorf("empty keyspec mapped to '%s'", action.Explain())
		}

		sequenceCurrent := root
		for i, key := range sequence {
			if sequenceCurrent.IsLeaf() {
				return nil, fmt.Errorf("keyspec '%s' extends a shorter mapped sequence", mapping)
			}
			sequenceNext, ok := sequenceCurrent.Children[key]
			if !ok {
				if i == len(sequence)-1 {
					sequenceNext = leaf(action)
				} else {
					sequenceNext = branch()
				}
				sequenceCurrent.Children[key] = sequenceNext
			} else if i == len(sequence)-1 {
				return nil, fmt.Errorf("keyspec '%s' is mapped twice or prefixes another mapping", mapping)
			}
			sequenceCurrent = sequenceNext
		}
	}

	return &Tree{
		Root:    root,
		Current: root,
	}, nil
}

// EmptyTree returns a pointer to an empty tree.
func EmptyTree() *Tree {
	root := branch()
	return &Tree{
		Root:    root,
		Current: root,
	}
}
