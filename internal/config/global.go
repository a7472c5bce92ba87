// SPDX-License-Identifier: MPL-2.0

package config

import "context"

var (
	// configDirOverride allows tests to override the config directory.
	// This is necessary because os.UserHomeDir() doesn't reliably respect
	// the HOME environment variable on all platforms (e.g., macOS in CI).
	configDirOverride string

	// dataDirOverride allows tests to override the data directory.
	dataDirOverride string

	// configFilePathOverride is set from the --config flag and forces
	// loading from a specific file.
	configFilePathOverride string
)

// Reset clears test overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	dataDirOverride = ""
	configFilePathOverride = ""
}

// SetConfigDirOverride sets a custom config directory path.
// Primarily intended for testing to bypass os.UserHomeDir().
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetDataDirOverride sets a custom data directory path.
// Primarily intended for testing.
func SetDataDirOverride(dir string) {
	dataDirOverride = dir
}

// SetConfigFilePathOverride forces loading from a specific config file.
// Set from the --config flag.
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// Load reads the configuration honoring the --config override. A missing
// config file is not an error; defaults apply.
func Load() (*Config, error) {
	cfg, _, err := loadWithOptions(context.Background(), LoadOptions{
		ConfigFilePath: configFilePathOverride,
	})
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
