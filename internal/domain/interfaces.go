package domain

// Reporter prints user-facing lines.
type Reporter interface {
	// Report prints text prefixed with the severity's glyph and color.
	Report(sev Severity, text string)

	// Line prints text as-is, followed by a newline.
	Line(text string)
}

// LineReader reads a single line of user input.
//
// ReadLine blocks until a line is entered. A bare Enter yields "".
// An interrupt (^C) yields input.ErrInterrupted and end of input yields io.EOF.
type LineReader interface {
	ReadLine(marker string) (string, error)
}

// ConfigProvider defines operations for reading and writing configuration.
type ConfigProvider interface {
	// Get returns the value for a configuration key.
	Get(key string) (string, bool)

	// All returns a copy of every stored key and value.
	All() map[string]string

	// Set sets and persists a configuration value.
	Set(key, value string) error

	// Unset removes and persists a configuration value.
	// Reports whether the key existed.
	Unset(key string) (bool, error)
}

// Logger defines logging operations.
type Logger interface {
	// Debug logs a debug message.
	Debug(format string, args ...any)

	// Info logs an info message.
	Info(format string, args ...any)

	// Warn logs a warning message.
	Warn(format string, args ...any)

	// Error logs an error message.
	Error(format string, args ...any)

	// Close closes the logger.
	Close() error
}

// Application holds the wired dependencies of one iu process.
type Application struct {
	Config ConfigProvider
	Logger Logger
	Output Reporter
	Input  LineReader
}
