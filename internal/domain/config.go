package domain

// ConfigKey defines a configuration key with its metadata.
type ConfigKey struct {
	Name        string
	Default     string
	Description string
	Section     string // Section for grouping in `config list` (Display, Logging, Network, Files)
}

// ConfigKeys defines all known configuration keys.
// Order determines display order in `config list`.
var ConfigKeys = []ConfigKey{
	// Display
	{
		Name:        "color_theme",
		Default:     "default",
		Description: "Color theme: default, mono, ocean, contrast (optionally -dark/-light)",
		Section:     "Display",
	},
	{
		Name:        "verbose",
		Default:     "false",
		Description: "Show verbose [~] lines (true/false)",
		Section:     "Display",
	},
	{
		Name:        "date_format",
		Default:     "dd.mm.yyyy",
		Description: "Date shown by `date`: dd.mm.yyyy, dd/mm/yyyy, mm/dd/yyyy, yyyy-mm-dd or a Go layout",
		Section:     "Display",
	},
	{
		Name:        "time_format",
		Default:     "24h",
		Description: "Clock shown by `time`: 24h or 12h",
		Section:     "Display",
	},
	// Logging
	{
		Name:        "enable_log",
		Default:     "true",
		Description: "Enable logging to file (true/false)",
		Section:     "Logging",
	},
	{
		Name:        "log_level",
		Default:     "info",
		Description: "Minimum log level: debug, info, warn, error",
		Section:     "Logging",
	},
	// Network
	{
		Name:        "ping_count",
		Default:     "1",
		Description: "Echo requests sent by `net ping`",
		Section:     "Network",
	},
	{
		Name:        "ping_timeout",
		Default:     "1",
		Description: "Seconds to wait for `net ping` replies",
		Section:     "Network",
	},
	// Files
	{
		Name:        "browse_root",
		Default:     ".",
		Description: "Directory `files browse` starts from",
		Section:     "Files",
	},
}

// DefaultConfig returns the default value of every known key.
func DefaultConfig() map[string]string {
	out := make(map[string]string, len(ConfigKeys))
	for _, k := range ConfigKeys {
		out[k.Name] = k.Default
	}
	return out
}

// LookupConfigKey returns the metadata for a key, or nil when unknown.
func LookupConfigKey(name string) *ConfigKey {
	for i := range ConfigKeys {
		if ConfigKeys[i].Name == name {
			return &ConfigKeys[i]
		}
	}
	return nil
}
