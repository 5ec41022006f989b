package config

import "strings"

// Config represents the application configuration
type Config struct {
	Build   BuildConfig   `mapstructure:"build" yaml:"build"`
	Publish PublishConfig `mapstructure:"publish" yaml:"publish"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
}

// BuildConfig describes where the extension's pieces live
type BuildConfig struct {
	Manifest  string `mapstructure:"manifest" yaml:"manifest"`
	SourceDir string `mapstructure:"source_dir" yaml:"source_dir"`
	AssetsDir string `mapstructure:"assets_dir" yaml:"assets_dir"`
	ScriptExt string `mapstructure:"script_ext" yaml:"script_ext"`
}

// PublishConfig contains artifact output settings
type PublishConfig struct {
	Directory  string `mapstructure:"directory" yaml:"directory"`
	ArchiveExt string `mapstructure:"archive_ext" yaml:"archive_ext"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// Validate validates the configuration and normalizes extension fields
func (c *Config) Validate() error {
	if c.Build.Manifest == "" {
		c.Build.Manifest = DefaultManifest
	}
	if c.Build.SourceDir == "" {
		c.Build.SourceDir = DefaultSourceDir
	}
	if c.Build.AssetsDir == "" {
		c.Build.AssetsDir = DefaultAssetsDir
	}
	if c.Build.ScriptExt == "" {
		c.Build.ScriptExt = DefaultScriptExt
	}
	if !strings.HasPrefix(c.Build.ScriptExt, ".") {
		c.Build.ScriptExt = "." + c.Build.ScriptExt
	}
	if c.Publish.Directory == "" {
		c.Publish.Directory = DefaultPublishDir
	}
	if c.Publish.ArchiveExt == "" {
		c.Publish.ArchiveExt = DefaultArchiveExt
	}
	c.Publish.ArchiveExt = strings.TrimPrefix(c.Publish.ArchiveExt, ".")
	return nil
}
