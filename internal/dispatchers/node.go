// Package dispatchers runs an interactive menu over a static command tree.
package dispatchers

// Kind tells a Leaf from a Branch.
type Kind int

const (
	KindLeaf Kind = iota
	KindBranch
)

func (k Kind) String() string {
	if k == KindBranch {
		return "branch"
	}
	return "leaf"
}

// Action is invoked with the positional arguments typed after a leaf's key.
type Action func(args []string) error

// Node is either a leaf (an Action with optional help text) or a branch (a
// display name and keyed children). Only the constructors build Nodes, so
// the kind never changes after creation.
type Node struct {
	kind   Kind
	key    string
	name   string
	help   string
	action Action

	children map[string]*Node
	order    []string
}

func (n *Node) Kind() Kind { return n.kind }

// Key is the command name the node is typed as in its parent's menu.
func (n *Node) Key() string { return n.key }

// Name is the display name used in breadcrumbs. It defaults to the key.
func (n *Node) Name() string {
	if n.name != "" {
		return n.name
	}
	return n.key
}

// Help returns the leaf help text, "" for branches and undocumented leaves.
func (n *Node) Help() string { return n.help }

// Child looks up a direct child by key.
func (n *Node) Child(key string) (*Node, bool) {
	c, ok := n.children[key]
	return c, ok
}

// Children returns direct children in insertion order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, len(n.order))
	for _, key := range n.order {
		out = append(out, n.children[key])
	}
	return out
}

// Keys returns the children's keys in insertion order.
func (n *Node) Keys() []string {
	return append([]string(nil), n.order...)
}
