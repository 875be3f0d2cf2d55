package usage

// ErrorKind represents the type of usage error.
type ErrorKind int

const (
	ErrUnknown ErrorKind = iota
	ErrUnknownCommand
	ErrMissingArgument
	ErrInvalidArgument
	ErrInvalidPath
)

// Exit codes:
//
//	Exit 1: Environment/system errors
//	  - Unknown errors
//	  - Unknown command
//	  - Invalid path
//
//	Exit 2: User input errors
//	  - Missing argument
//	  - Invalid argument
var exitCodes = map[ErrorKind]int{
	ErrUnknown:         1,
	ErrUnknownCommand:  1,
	ErrMissingArgument: 2,
	ErrInvalidArgument: 2,
	ErrInvalidPath:     1,
}

// Error is a user-facing usage error with semantic type information.
type Error struct {
	Kind     ErrorKind
	Message  string
	ExitCode int // overrides the Kind-derived code when non-zero
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// GetExitCode returns the process exit code for this error.
func (e *Error) GetExitCode() int {
	if e.ExitCode != 0 {
		return e.ExitCode
	}
	if code, ok := exitCodes[e.Kind]; ok {
		return code
	}
	return 1
}

var _ error = (*Error)(nil)
