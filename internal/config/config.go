package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings. Values come from code defaults, then
// ~/.taskflow/config.yaml, then TASKFLOW_* environment variables, then flags.
type Config struct {
	DataDir      string        `mapstructure:"data_dir"`
	DBPath       string        `mapstructure:"db_path"`
	Ephemeral    bool          `mapstructure:"ephemeral"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
	LeadTime     time.Duration `mapstructure:"lead_time"`
	BellInterval time.Duration `mapstructure:"bell_interval"`
	LogLevel     string        `mapstructure:"log_level"`
	Verbose      bool          `mapstructure:"verbose"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	dataDir := defaultDataDir()
	v.SetDefault("data_dir", dataDir)
	v.SetDefault("db_path", "")
	v.SetDefault("ephemeral", false)
	v.SetDefault("poll_interval", 10*time.Second)
	v.SetDefault("lead_time", time.Minute)
	v.SetDefault("bell_interval", time.Second)
	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
}

// Load reads the optional config file and environment into a Config.
// A missing config file is not an error.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	v.SetEnvPrefix("TASKFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if v.ConfigFileUsed() == "" {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(v.GetString("data_dir"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(cfg.DataDir, "taskflow.db")
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 10 * time.Second
	}
	if cfg.LeadTime <= 0 {
		cfg.LeadTime = time.Minute
	}
	if cfg.BellInterval <= 0 {
		cfg.BellInterval = time.Second
	}
	return cfg, nil
}

// LogDir is where the rotated log file lives
func (c Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

func defaultDataDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".taskflow"
	}
	return filepath.Join(homeDir, ".taskflow")
}
