package style

import (
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/muesli/termenv"
)

// ColorConfig holds all configurable colors for the UI.
// Values can be ANSI color numbers (0-255) or "bold" for bold styling.
type ColorConfig struct {
	Success  string
	Warning  string
	Error    string
	Info     string
	Question string
	Muted    string
	Header   string
	Prompt   string
}

// BaseThemeNames lists available theme bases (auto-detects dark/light).
var BaseThemeNames = []string{
	"default",
	"mono",
	"ocean",
	"contrast",
}

// Themes contains the built-in color themes.
// Dark themes use bright colors, light themes use dark saturated ones.
var Themes = map[string]ColorConfig{
	// Classic terminal colors: green/cyan/yellow/red/blue like most CLIs.
	"default-dark": {
		Success:  "10",
		Warning:  "11",
		Error:    "9",
		Info:     "14",
		Question: "12",
		Muted:    "245",
		Header:   "14",
		Prompt:   "9",
	},
	"default-light": {
		Success:  "28",
		Warning:  "130",
		Error:    "124",
		Info:     "30",
		Question: "27",
		Muted:    "240",
		Header:   "30",
		Prompt:   "124",
	},

	// Grayscale only.
	"mono-dark": {
		Success:  "255",
		Warning:  "250",
		Error:    "bold",
		Info:     "252",
		Question: "255",
		Muted:    "243",
		Header:   "bold",
		Prompt:   "255",
	},
	"mono-light": {
		Success:  "232",
		Warning:  "238",
		Error:    "bold",
		Info:     "236",
		Question: "232",
		Muted:    "244",
		Header:   "bold",
		Prompt:   "232",
	},

	// Blues and teals.
	"ocean-dark": {
		Success:  "49",
		Warning:  "222",
		Error:    "204",
		Info:     "81",
		Question: "111",
		Muted:    "67",
		Header:   "45",
		Prompt:   "39",
	},
	"ocean-light": {
		Success:  "29",
		Warning:  "136",
		Error:    "161",
		Info:     "25",
		Question: "19",
		Muted:    "66",
		Header:   "24",
		Prompt:   "18",
	},

	// Maximum contrast for accessibility.
	"contrast-dark": {
		Success:  "46",
		Warning:  "226",
		Error:    "196",
		Info:     "51",
		Question: "201",
		Muted:    "250",
		Header:   "231",
		Prompt:   "196",
	},
	"contrast-light": {
		Success:  "22",
		Warning:  "94",
		Error:    "88",
		Info:     "18",
		Question: "53",
		Muted:    "236",
		Header:   "16",
		Prompt:   "88",
	},
}

// colorConfigKeys maps config keys to ColorConfig fields.
var colorConfigKeys = map[string]func(*ColorConfig, string){
	"color_success":  func(c *ColorConfig, v string) { c.Success = v },
	"color_warning":  func(c *ColorConfig, v string) { c.Warning = v },
	"color_error":    func(c *ColorConfig, v string) { c.Error = v },
	"color_info":     func(c *ColorConfig, v string) { c.Info = v },
	"color_question": func(c *ColorConfig, v string) { c.Question = v },
	"color_muted":    func(c *ColorConfig, v string) { c.Muted = v },
	"color_header":   func(c *ColorConfig, v string) { c.Header = v },
	"color_prompt":   func(c *ColorConfig, v string) { c.Prompt = v },
}

// IsDarkBackground reports whether the terminal background is dark.
// termenv answers true when detection fails.
func IsDarkBackground() bool {
	return termenv.HasDarkBackground()
}

// ResolveThemeName appends -dark or -light to a base theme name based on
// the terminal background. Names that already carry a suffix are kept.
func ResolveThemeName(name string) string {
	if strings.HasSuffix(name, "-dark") || strings.HasSuffix(name, "-light") {
		return name
	}
	if IsDarkBackground() {
		return name + "-dark"
	}
	return name + "-light"
}

// LoadColorConfig builds a ColorConfig from the given configuration map.
// Resolution priority:
//  1. Environment variable (IU_COLOR_*)
//  2. Config value (color_*)
//  3. Theme value (IU_COLOR_THEME, then color_theme)
//  4. default theme for the detected background
func LoadColorConfig(cfg map[string]string) ColorConfig {
	themeName := ResolveThemeName("default")

	if envTheme := os.Getenv("IU_COLOR_THEME"); envTheme != "" {
		themeName = ResolveThemeName(envTheme)
	} else if cfgTheme, ok := cfg["color_theme"]; ok && cfgTheme != "" {
		themeName = ResolveThemeName(cfgTheme)
	}

	result, ok := Themes[themeName]
	if !ok {
		result = Themes["default-dark"]
	}

	for key, set := range colorConfigKeys {
		if envVal := os.Getenv("IU_" + strings.ToUpper(key)); envVal != "" {
			set(&result, envVal)
			continue
		}
		if cfgVal, ok := cfg[key]; ok && cfgVal != "" {
			set(&result, cfgVal)
		}
	}

	return result
}

// IsKnownTheme reports whether name (with or without suffix) is a built-in theme.
func IsKnownTheme(name string) bool {
	if _, ok := Themes[name]; ok {
		return true
	}
	_, ok := Themes[name+"-dark"]
	return ok
}

// ThemeNames returns every built-in theme variant, sorted.
func ThemeNames() []string {
	return slices.Sorted(maps.Keys(Themes))
}
