package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func setupConfigHome(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestLoadConfig_createsDefault(t *testing.T) {
	a := assert.New(t)
	dir := setupConfigHome(t)

	cfg, err := LoadConfig()
	a.NoError(err)
	a.Equal(Default(), *cfg)
	a.Equal(500*time.Millisecond, cfg.SettleDelay())

	path := filepath.Join(dir, "highlow", "config.toml")
	a.Equal(path, GetConfigFilePath())

	data, err := os.ReadFile(path)
	a.NoError(err)
	a.Contains(string(data), "settle_delay_ms = 500")
	a.Contains(string(data), `input = "select"`)
}

func TestLoadConfig_fileAndEnv(t *testing.T) {
	a := assert.New(t)
	dir := setupConfigHome(t)

	path := filepath.Join(dir, "highlow", "config.toml")
	a.NoError(os.MkdirAll(filepath.Dir(path), 0755))
	a.NoError(os.WriteFile(path, []byte("shuffle_count = 5\ninput = \"line\"\n"), 0644))

	cfg, err := LoadConfig()
	a.NoError(err)
	a.Equal(5, cfg.ShuffleCount)
	a.Equal(InputLine, cfg.Input)
	// missing keys keep their defaults
	a.Equal(500, cfg.SettleDelayMS)
	a.Equal("warn", cfg.LogLevel)

	t.Setenv("HIGHLOW_SETTLE_DELAY_MS", "0")
	t.Setenv("HIGHLOW_LOG_LEVEL", "debug")
	cfg, err = LoadConfig()
	a.NoError(err)
	a.Equal(0, cfg.SettleDelayMS)
	a.Equal("debug", cfg.LogLevel)
	a.Equal(5, cfg.ShuffleCount)

	t.Setenv("HIGHLOW_SHUFFLE_COUNT", "many")
	_, err = LoadConfig()
	a.Error(err)
}

func TestLoadConfig_invalid(t *testing.T) {
	a := assert.New(t)
	dir := setupConfigHome(t)

	path := filepath.Join(dir, "highlow", "config.toml")
	a.NoError(os.MkdirAll(filepath.Dir(path), 0755))

	a.NoError(os.WriteFile(path, []byte("input = \"mouse\"\n"), 0644))
	_, err := LoadConfig()
	a.EqualError(err, `input must be "select" or "line": "mouse"`)

	a.NoError(os.WriteFile(path, []byte("not toml ["), 0644))
	_, err = LoadConfig()
	a.Error(err)
}

func TestSet(t *testing.T) {
	a := assert.New(t)
	setupConfigHome(t)

	a.NoError(Set("shuffle_count", "5"))
	a.NoError(Set("settle_delay_ms", "250"))
	a.NoError(Set("input", "line"))
	a.NoError(Set("log_format", "json"))
	a.NoError(Set("log_level", "info"))

	cfg, err := LoadConfig()
	a.NoError(err)
	a.Equal(Config{
		SettleDelayMS: 250,
		ShuffleCount:  5,
		LogLevel:      "info",
		LogFormat:     "json",
		Input:         InputLine,
	}, *cfg)

	a.EqualError(Set("colour", "blue"), "unknown config key: colour")
	a.Error(Set("shuffle_count", "five"))
	a.EqualError(Set("settle_delay_ms", "-1"), "settle_delay_ms must not be negative: -1")
	a.EqualError(Set("log_format", "xml"), `log_format must be "text" or "json": "xml"`)
	a.EqualError(Set("log_level", "banana"), `log_level: not a valid logrus Level: "banana"`)

	// failed updates leave the file alone
	cfg, err = LoadConfig()
	a.NoError(err)
	a.Equal(250, cfg.SettleDelayMS)
	a.Equal("info", cfg.LogLevel)
	a.Equal("json", cfg.LogFormat)
}

func TestLoadConfig_badLogLevel(t *testing.T) {
	a := assert.New(t)
	setupConfigHome(t)

	t.Setenv("HIGHLOW_LOG_LEVEL", "loud")
	_, err := LoadConfig()
	a.EqualError(err, `log_level: not a valid logrus Level: "loud"`)
}

func TestDir(t *testing.T) {
	a := assert.New(t)

	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	a.Equal(filepath.Join("/tmp/xdg", "highlow"), Dir())

	t.Setenv("XDG_CONFIG_HOME", "")
	home, err := os.UserHomeDir()
	if a.NoError(err) {
		a.Equal(filepath.Join(home, ".config", "highlow"), Dir())
	}
}
