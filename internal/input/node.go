package input

import (
	"github.com/ja-he/utomato/internal/control/action"
)

// Node is one step of a key sequence in a Tree.
// A node either ends a sequence, in which case it holds the bound Action, or
// leads on to further keys through Children; never both.
type Node struct {
	Children map[Key]*Node
	Action   action.Action
}

// Child returns the node that key k leads to from n, or nil.
func (n *Node) Child(k Key) *Node { return n.Children[k] }

// IsLeaf returns whether n ends a sequence.
func (n *Node) IsLeaf() bool { return n.Action != nil }

func branch() *Node { return &Node{Children: map[Key]*Node{}} }

func leaf(a action.Action) *Node { return &Node{Action: a} }
