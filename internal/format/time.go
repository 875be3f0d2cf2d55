// Package format turns the date_format and time_format settings into Go
// time layouts.
package format

import "time"

// DefaultDate is the date_format used when none is configured.
const DefaultDate = "dd.mm.yyyy"

// DateLayout returns the Go layout for a date_format setting. Presets are
// dd.mm.yyyy, dd/mm/yyyy, mm/dd/yyyy and yyyy-mm-dd; anything else is taken
// as a Go layout such as "Jan 02".
func DateLayout(setting string) string {
	switch setting {
	case "", DefaultDate:
		return "02.01.2006"
	case "dd/mm/yyyy":
		return "02/01/2006"
	case "mm/dd/yyyy":
		return "01/02/2006"
	case "yyyy-mm-dd":
		return "2006-01-02"
	default:
		return setting
	}
}

// TimeLayout returns the Go layout for a time_format setting, "12h" or "24h".
// Unknown values mean 24h.
func TimeLayout(setting string) string {
	if setting == "12h" {
		return "3:04:05 PM"
	}
	return "15:04:05"
}

// Date renders t with the date_format setting.
func Date(t time.Time, setting string) string {
	return t.Format(DateLayout(setting))
}

// Time renders t with the time_format setting.
func Time(t time.Time, setting string) string {
	return t.Format(TimeLayout(setting))
}
