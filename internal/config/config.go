package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level ideval configuration.
type Config struct {
	TasksDir    string         `mapstructure:"tasks_dir"`
	ResultsDir  string         `mapstructure:"results_dir"`
	IgnoreDirs  []string       `mapstructure:"ignore_dirs"`
	IgnoreFiles []string       `mapstructure:"ignore_files"`
	Output      Output         `mapstructure:"output"`
	IDEs        map[string]IDE `mapstructure:"ides"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// IDE describes how to drive one editor integration.
type IDE struct {
	// Command is the executable used both to launch the workspace and,
	// absent VersionCmd, to probe the version via `<command> --version`.
	Command string `mapstructure:"command"`

	// VersionCmd overrides version probing with an explicit argv.
	VersionCmd []string `mapstructure:"version_cmd"`
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default
// location) and returns a Config with all defaults applied. A missing
// config file is not an error.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("tasks_dir", DefaultTasksDir)
	v.SetDefault("results_dir", DefaultResultsDir)
	v.SetDefault("ignore_dirs", DefaultIgnoreDirs)
	v.SetDefault("ignore_files", DefaultIgnoreFiles)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	// Configured IDEs extend the defaults rather than replacing them.
	if cfg.IDEs == nil {
		cfg.IDEs = make(map[string]IDE, len(DefaultIDEs))
	}
	for name, ide := range DefaultIDEs {
		if _, ok := cfg.IDEs[name]; !ok {
			cfg.IDEs[name] = ide
		}
	}

	cfg.TasksDir = expandPath(cfg.TasksDir)
	cfg.ResultsDir = expandPath(cfg.ResultsDir)

	return &cfg, nil
}

// DBPath returns the full path to the SQLite snapshot database.
func DBPath() string {
	return filepath.Join(expandPath(DefaultConfigDir), DefaultDBName)
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
