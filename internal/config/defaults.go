package config

import (
	"os"
	"path/filepath"
)

// Default values
const (
	// Build defaults; source and assets are resolved relative to the
	// working directory, the conventional extension repo layout
	DefaultManifest  = "package.json"
	DefaultSourceDir = "."
	DefaultAssetsDir = "../assets"
	DefaultScriptExt = ".lua"

	// Publish defaults
	DefaultPublishDir = "../publish"
	DefaultArchiveExt = "aseprite-extension"

	// Logging defaults
	DefaultLogLevel  = "info"
	DefaultLogFormat = "pretty"
)

// ConfigDir returns the config directory path
func ConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".asepack"
	}
	return filepath.Join(home, ".asepack")
}

// ConfigFilePath returns the config file path
func ConfigFilePath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Build: BuildConfig{
			Manifest:  DefaultManifest,
			SourceDir: DefaultSourceDir,
			AssetsDir: DefaultAssetsDir,
			ScriptExt: DefaultScriptExt,
		},
		Publish: PublishConfig{
			Directory:  DefaultPublishDir,
			ArchiveExt: DefaultArchiveExt,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
