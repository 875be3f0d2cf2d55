package style

import "github.com/interutils/cli/internal/domain"

// For maps a report severity to its style function.
func For(sev domain.Severity) func(string) string {
	switch sev {
	case domain.SeveritySuccess:
		return Success
	case domain.SeverityInfo:
		return Info
	case domain.SeverityCaution:
		return Warning
	case domain.SeverityError:
		return Error
	case domain.SeverityQuestion:
		return Question
	case domain.SeverityHeading:
		return Header
	case domain.SeverityVerbose:
		return Muted
	default:
		return func(s string) string { return s }
	}
}
