package dispatchers

import (
	"unicode"
	"unicode/utf8"

	"github.com/interutils/cli/internal/ui/style"
)

// Describe returns the text shown next to a child in the help listing.
func Describe(n *Node) string {
	if n.kind == KindBranch {
		return "Enter " + capitalize(n.Name()) + " menu"
	}
	if n.help == "" {
		return "-"
	}
	return n.help
}

// printHelp lists every child of node in insertion order.
func (d *Dispatcher) printHelp(node *Node) {
	for _, child := range node.Children() {
		d.out.Line("  " + style.Info(child.key) + " -> " + style.Warning(Describe(child)))
	}
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
