package paths

import (
	"os"
	"path/filepath"
)

const (
	appDirName     = "interutils"
	configFileName = "config.json"
	logFileName    = "iu.log"

	// ConfigEnvVar overrides the config file location when set.
	ConfigEnvVar = "IU_CONFIG"
)

// AppDataDir returns the application directory for config and logs.
// Uses os.UserConfigDir() which returns:
//   - macOS: ~/Library/Application Support
//   - Linux: $XDG_CONFIG_HOME or ~/.config
//   - Windows: %AppData% (roaming)
//
// Falls back to "." when no config dir can be determined.
func AppDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appDirName)
}

// EnsureAppDataDir creates AppDataDir with owner-only permissions.
func EnsureAppDataDir() (string, error) {
	dir := AppDataDir()
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// ConfigFilePath returns the JSON config location, honouring IU_CONFIG.
func ConfigFilePath() string {
	if p := os.Getenv(ConfigEnvVar); p != "" {
		return p
	}
	return filepath.Join(AppDataDir(), configFileName)
}

// LogFilePath returns the path of the application log file.
func LogFilePath() string {
	return filepath.Join(AppDataDir(), logFileName)
}

// LogFileNextTo returns the log file path in the directory holding configPath,
// so a relocated config keeps its log beside it.
func LogFileNextTo(configPath string) string {
	return filepath.Join(filepath.Dir(configPath), logFileName)
}
