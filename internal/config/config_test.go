package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	v := viper.New()
	v.Set("data_dir", dir)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, cfg.PollInterval)
	assert.Equal(t, time.Minute, cfg.LeadTime)
	assert.Equal(t, filepath.Join(dir, "taskflow.db"), cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(dir, "logs"), cfg.LogDir())
}

func TestLoad_ConfigFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	yaml := "poll_interval: 2s\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))
	t.Setenv("TASKFLOW_LEAD_TIME", "90s")

	v := viper.New()
	v.Set("data_dir", dir)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, cfg.PollInterval)
	assert.Equal(t, 90*time.Second, cfg.LeadTime)
	assert.Equal(t, "debug", cfg.LogLevel)
}
