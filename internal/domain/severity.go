package domain

// Severity tags a reported line. Each severity maps to a glyph and a color.
type Severity int

const (
	SeveritySuccess Severity = iota
	SeverityInfo
	SeverityCaution
	SeverityError
	SeverityQuestion
	SeverityHeading
	SeverityVerbose
)

// Glyph returns the bracketed marker printed before the text.
// Headings have no marker.
func (s Severity) Glyph() string {
	switch s {
	case SeveritySuccess:
		return "+"
	case SeverityInfo:
		return "*"
	case SeverityCaution:
		return "!"
	case SeverityError:
		return "X"
	case SeverityQuestion:
		return "?"
	case SeverityVerbose:
		return "~"
	default:
		return ""
	}
}

func (s Severity) String() string {
	switch s {
	case SeveritySuccess:
		return "success"
	case SeverityInfo:
		return "info"
	case SeverityCaution:
		return "caution"
	case SeverityError:
		return "error"
	case SeverityQuestion:
		return "question"
	case SeverityHeading:
		return "heading"
	case SeverityVerbose:
		return "verbose"
	default:
		return "unknown"
	}
}
