package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeCLI    = "cli"
	ModeStdio  = "stdio"
	ModeServer = "server"

	// Default values
	DefaultLogLevel    = "info"
	DefaultRegion      = "US"
	DefaultMaxFileSize = 20 * 1024 * 1024 // 20MB
)

// Config holds all configuration for the resume extractor.
type Config struct {
	// Execution mode: "cli" extracts a single file and prints the fields,
	// "stdio"/"server" expose the extractor as an MCP server.
	Mode string

	// File is the resume to extract in CLI mode.
	File string

	// ResumeDirectory is the default directory for directory search tools.
	ResumeDirectory string

	// SkillsFile is an optional path to a skill word list; empty uses the
	// embedded default vocabulary.
	SkillsFile string

	// Region is the default phone-number region for grammar validation.
	Region string

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum document file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:            ModeCLI,
		ResumeDirectory: currentDir,
		Region:          DefaultRegion,
		Version:         "1.0.0",
		ServerName:      "resume-extract",
		LogLevel:        DefaultLogLevel,
		MaxFileSize:     DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()

	pflag.Parse()

	populateConfigFromViper(cfg)

	if cfg.ResumeDirectory != "" {
		if expandedPath, err := filepath.Abs(cfg.ResumeDirectory); err == nil {
			cfg.ResumeDirectory = expandedPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("RESUME")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("file", cfg.File)
	viper.SetDefault("dir", cfg.ResumeDirectory)
	viper.SetDefault("skills", cfg.SkillsFile)
	viper.SetDefault("region", cfg.Region)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Execution mode: 'cli', 'stdio' (MCP standard I/O) or 'server'")
	pflag.String("file", cfg.File, "Resume file to extract (cli mode)")
	pflag.String("dir", cfg.ResumeDirectory, "Directory containing resume files")
	pflag.String("skills", cfg.SkillsFile, "Path to a skill word list (one phrase per line)")
	pflag.String("region", cfg.Region, "Default phone-number region (e.g. US, GB)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum document file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("file", pflag.Lookup("file"))
	_ = viper.BindPFlag("dir", pflag.Lookup("dir"))
	_ = viper.BindPFlag("skills", pflag.Lookup("skills"))
	_ = viper.BindPFlag("region", pflag.Lookup("region"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.File = viper.GetString("file")
	cfg.ResumeDirectory = viper.GetString("dir")
	cfg.SkillsFile = viper.GetString("skills")
	cfg.Region = viper.GetString("region")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != ModeCLI && c.Mode != ModeStdio && c.Mode != ModeServer {
		return errors.New("mode must be one of 'cli', 'stdio' or 'server'")
	}

	if c.Mode == ModeCLI && c.File == "" {
		return errors.New("cli mode requires --file")
	}

	if c.ResumeDirectory == "" {
		return errors.New("resume directory cannot be empty")
	}

	if c.SkillsFile != "" {
		if _, err := os.Stat(c.SkillsFile); err != nil {
			return fmt.Errorf("cannot access skills file %s: %w", c.SkillsFile, err)
		}
	}

	if c.Region == "" {
		return errors.New("phone region cannot be empty")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsStdioMode returns true if the extractor runs as an MCP stdio server.
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// IsCLIMode returns true if the extractor runs as a one-shot CLI.
func (c *Config) IsCLIMode() bool {
	return c.Mode == ModeCLI
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, ResumeDirectory: %s, SkillsFile: %s, Region: %s, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.ResumeDirectory, c.SkillsFile, c.Region, c.LogLevel, c.MaxFileSize)
}
