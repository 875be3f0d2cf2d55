package dispatchers

import "fmt"

// NewRoot returns an empty branch to hang a menu tree from.
func NewRoot(name string) *Node {
	return &Node{
		kind:     KindBranch,
		name:     name,
		children: make(map[string]*Node),
	}
}

// NewBranch adds a submenu typed as key under parent. An empty name
// displays the key.
func NewBranch(key string, parent *Node, name string) *Node {
	node := &Node{
		kind:     KindBranch,
		key:      key,
		name:     name,
		children: make(map[string]*Node),
	}
	attach(parent, node)
	return node
}

// NewLeaf adds a command typed as key under parent.
func NewLeaf(key string, parent *Node, help string, action Action) *Node {
	if action == nil {
		panic(fmt.Sprintf("dispatchers: leaf %q has no action", key))
	}
	node := &Node{
		kind:   KindLeaf,
		key:    key,
		help:   help,
		action: action,
	}
	attach(parent, node)
	return node
}

// attach panics on malformed trees; they are programming errors.
func attach(parent, child *Node) {
	switch {
	case parent == nil:
		panic(fmt.Sprintf("dispatchers: %q has no parent", child.key))
	case parent.kind != KindBranch:
		panic(fmt.Sprintf("dispatchers: cannot add %q under leaf %q", child.key, parent.key))
	case child.key == "":
		panic("dispatchers: empty command key")
	}
	if _, dup := parent.children[child.key]; dup {
		panic(fmt.Sprintf("dispatchers: duplicate command %q under %q", child.key, parent.Name()))
	}
	parent.children[child.key] = child
	parent.order = append(parent.order, child.key)
}
