package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"dgrm/shape"
)

const configName = ".dgrmrc.yaml"

type Config struct {
	SaveDirectory string       `yaml:"save_directory"`
	Confirmations bool         `yaml:"confirmations"`
	LogLevel      string       `yaml:"log_level"`
	LogFile       string       `yaml:"log_file"`
	FontSize      float64      `yaml:"font_size"`
	CellWidth     float64      `yaml:"cell_width"`
	CellHeight    float64      `yaml:"cell_height"`
	Geometry      shape.Config `yaml:"geometry"`
}

func defaultConfig() *Config {
	return &Config{
		Confirmations: true,
		LogLevel:      "info",
		FontSize:      16,
		CellWidth:     8,
		CellHeight:    16,
		Geometry:      shape.DefaultConfig(),
	}
}

func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, configName)
}

// loadConfig reads path over the defaults. A missing file is not an error;
// keys absent from the file keep their default values.
func loadConfig(path string) (*Config, error) {
	config := defaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if config.SaveDirectory != "" {
		config.SaveDirectory = expandPath(config.SaveDirectory)
	}
	if config.LogFile != "" {
		config.LogFile = expandPath(config.LogFile)
	}
	if config.CellWidth <= 0 || config.CellHeight <= 0 {
		return nil, fmt.Errorf("parse config %s: cell size must be positive", path)
	}
	return config, nil
}

func expandPath(value string) string {
	if strings.HasPrefix(value, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
		}
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func (c *Config) GetSavePath(filename string) string {
	if c.SaveDirectory == "" {
		return filename
	}
	os.MkdirAll(c.SaveDirectory, 0755)
	return filepath.Join(c.SaveDirectory, filename)
}
