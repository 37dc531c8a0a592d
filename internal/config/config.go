package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataPath  string `mapstructure:"data_path" yaml:"data_path"`
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	TopN      int    `mapstructure:"top_n" yaml:"top_n"`
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
	ViewsPath string `mapstructure:"views_path" yaml:"views_path"`
	LogLevel  string `mapstructure:"log_level" yaml:"log_level"`
}

// DelimiterRune returns the configured CSV delimiter as a rune, or 0 when
// unset (the parser then defaults to comma).
func (c *Global) DelimiterRune() rune {
	if c == nil || c.Delimiter == "" {
		return 0
	}
	return []rune(c.Delimiter)[0]
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.surveyscope/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".surveyscope")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("SURVEYSCOPE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_path", "digcul-study.csv")
	v.SetDefault("delimiter", "")
	v.SetDefault("top_n", 10)
	v.SetDefault("output_dir", ".")
	v.SetDefault("log_level", "info")

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".surveyscope")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	// Resolve views_path default: ~/.surveyscope/views.json
	if c.ViewsPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.ViewsPath = filepath.Join(home, ".surveyscope", "views.json")
	}
	return &c, nil
}
