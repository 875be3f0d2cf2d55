package usage

import (
	"fmt"
	"strings"
)

// UnknownCommand is returned when a menu command does not exist at the
// current level. Suggestions, when present, are listed as alternatives.
func UnknownCommand(command string, suggestions ...string) *Error {
	var b strings.Builder
	fmt.Fprintf(&b, "No such command %q!", command)
	if len(suggestions) > 0 {
		quoted := make([]string, len(suggestions))
		for i, s := range suggestions {
			quoted[i] = fmt.Sprintf("%q", s)
		}
		fmt.Fprintf(&b, " Did you mean %s?", strings.Join(quoted, ", "))
	}
	b.WriteString(` Try "help".`)
	return &Error{Kind: ErrUnknownCommand, Message: b.String()}
}
