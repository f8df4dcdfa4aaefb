package config

import (
	"os"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != ModeCLI {
		t.Errorf("Expected default mode to be 'cli', got '%s'", cfg.Mode)
	}

	if cfg.Region != "US" {
		t.Errorf("Expected default region to be 'US', got '%s'", cfg.Region)
	}

	if cfg.ServerName != "resume-extract" {
		t.Errorf("Expected default server name to be 'resume-extract', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 20*1024*1024 {
		t.Errorf("Expected default max file size to be 20MB, got %d", cfg.MaxFileSize)
	}

	currentDir, _ := os.Getwd()
	if cfg.ResumeDirectory != currentDir {
		t.Errorf("Expected default resume directory to be '%s', got '%s'", currentDir, cfg.ResumeDirectory)
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Mode:            ModeCLI,
			File:            "resume.pdf",
			ResumeDirectory: "/tmp",
			Region:          "US",
			LogLevel:        "info",
			MaxFileSize:     1024,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid cli config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:    "valid stdio config without file",
			mutate:  func(c *Config) { c.Mode = ModeStdio; c.File = "" },
			wantErr: false,
		},
		{
			name:    "invalid mode",
			mutate:  func(c *Config) { c.Mode = "daemon" },
			wantErr: true,
		},
		{
			name:    "cli mode requires file",
			mutate:  func(c *Config) { c.File = "" },
			wantErr: true,
		},
		{
			name:    "empty resume directory",
			mutate:  func(c *Config) { c.ResumeDirectory = "" },
			wantErr: true,
		},
		{
			name:    "missing skills file",
			mutate:  func(c *Config) { c.SkillsFile = "/nonexistent/skills.txt" },
			wantErr: true,
		},
		{
			name:    "empty region",
			mutate:  func(c *Config) { c.Region = "" },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
		{
			name:    "non-positive max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigModeHelpers(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.IsCLIMode() {
		t.Error("Expected default config to be in CLI mode")
	}
	if cfg.IsStdioMode() {
		t.Error("Expected default config not to be in stdio mode")
	}

	cfg.Mode = ModeStdio
	if !cfg.IsStdioMode() {
		t.Error("Expected stdio mode")
	}

	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("Expected debug logging to be enabled")
	}
}
