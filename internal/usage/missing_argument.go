package usage

import "fmt"

// MissingArgument is returned when a required argument is not provided.
// usageLine is shown as a hint, e.g. "ping <host> [count]".
func MissingArgument(arg, usageLine string) *Error {
	msg := fmt.Sprintf("Missing argument <%s>", arg)
	if usageLine != "" {
		msg += fmt.Sprintf(" (usage: %s)", usageLine)
	}
	return &Error{Kind: ErrMissingArgument, Message: msg}
}

// InvalidArgument is returned when an argument cannot be used as given.
func InvalidArgument(arg, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidArgument,
		Message: fmt.Sprintf("Invalid argument %q: %s", arg, reason),
	}
}

// InvalidPath is returned when a path does not exist or has the wrong type.
func InvalidPath(path, reason string) *Error {
	return &Error{
		Kind:    ErrInvalidPath,
		Message: fmt.Sprintf("%s: %s", path, reason),
	}
}
