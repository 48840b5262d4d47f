package config

import (
	"github.com/spf13/viper"
)

// DefaultWorkers bounds how many entries are processed concurrently
const DefaultWorkers = 100

// DefaultExclude lists the system folders skipped at every depth
var DefaultExclude = []string{"$RECYCLE.BIN", "System Volume Information"}

// Config represents the discovery tool configuration
type Config struct {
	Workers      int      `mapstructure:"workers"`       // number of worker goroutines
	Exclude      []string `mapstructure:"exclude"`       // directory basenames to skip
	ExcludeFile  string   `mapstructure:"exclude_file"`  // YAML file with extra exclusions
	ReportPrefix string   `mapstructure:"report_prefix"` // report filename prefix
	OutputDir    string   `mapstructure:"output_dir"`    // report output directory
}

// LoadConfig loads configuration from environment variables and defaults
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("exclude", DefaultExclude)
	v.SetDefault("report_prefix", "FileDiscovery")

	// Read environment variables
	v.SetEnvPrefix("FILEDISCOVERY")
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ApplyExcludeFile merges exclusions from the configured YAML file into the
// exclude list. A missing setting is not an error.
func (c *Config) ApplyExcludeFile() error {
	if c.ExcludeFile == "" {
		return nil
	}

	extra, err := LoadExcludeFile(c.ExcludeFile)
	if err != nil {
		return err
	}

	c.Exclude = append(c.Exclude, extra...)
	return nil
}
