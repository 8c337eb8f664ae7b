package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the project configuration file name.
const FileName = "seldom.json"

// Config is the project configuration.
type Config struct {
	// Server configures the preview server.
	Server ServerConfig `json:"server"`

	// Export configures static export.
	Export ExportConfig `json:"export"`

	// Deploy configures S3 deployment.
	Deploy DeployConfig `json:"deploy"`

	// Watch lists the paths the preview server watches for changes.
	Watch []string `json:"watch"`

	// root is the directory the config was loaded from (or the
	// working directory when no file was found).
	root string
}

// ServerConfig configures the preview server.
type ServerConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

// ExportConfig configures static export.
type ExportConfig struct {
	// OutDir is where exported HTML is written.
	OutDir string `json:"outDir"`
}

// DeployConfig configures S3 deployment.
type DeployConfig struct {
	Bucket string `json:"bucket"`
	Prefix string `json:"prefix"`
	Region string `json:"region"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 3000,
		},
		Export: ExportConfig{
			OutDir: "dist",
		},
		Deploy: DeployConfig{
			Region: "us-east-1",
		},
		Watch: []string{"."},
	}
}

// Load reads seldom.json starting at dir and walking up toward the
// filesystem root. A missing file is not an error; defaults apply.
func Load(dir string) (*Config, error) {
	cfg := Default()
	cfg.root = dir

	path, ok := findFile(dir)
	if !ok {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	cfg.root = filepath.Dir(path)
	cfg.applyDefaults()
	return cfg, nil
}

// Root returns the project root directory.
func (c *Config) Root() string {
	return c.root
}

// applyDefaults fills fields the file left empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Server.Host == "" {
		c.Server.Host = def.Server.Host
	}
	if c.Server.Port == 0 {
		c.Server.Port = def.Server.Port
	}
	if c.Export.OutDir == "" {
		c.Export.OutDir = def.Export.OutDir
	}
	if c.Deploy.Region == "" {
		c.Deploy.Region = def.Deploy.Region
	}
	if len(c.Watch) == 0 {
		c.Watch = def.Watch
	}
}

// findFile walks from dir up to the filesystem root looking for the
// config file.
func findFile(dir string) (string, bool) {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
