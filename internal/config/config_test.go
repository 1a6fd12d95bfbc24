package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config root at a temp dir and clears overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("APPDATA", "")
	t.Setenv("XDG_CONFIG_HOME", dir)
	for _, k := range []string{"POKENAMES_SOURCE_URL", "POKENAMES_FORMAT", "POKENAMES_TIMEOUT", "POKENAMES_DEBUG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	return dir
}

func TestLoadMerged_DefaultsWithoutProfile(t *testing.T) {
	isolate(t)

	cfg, used, err := LoadMerged(Options{})
	require.NoError(t, err)

	assert.Equal(t, "(default config in memory)", used)
	assert.Equal(t, defaultSourceURL, cfg.SourceURL)
	assert.Equal(t, "plain", cfg.Format)
	assert.Equal(t, "data/german_names.txt", cfg.NamesFile)
	assert.Equal(t, "data/pokemon.txt", cfg.SlugInput)
	assert.Equal(t, "data/list.csv", cfg.SlugOutput)
	assert.Equal(t, "data/list.csv", cfg.ListFile)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadMerged_EnvOverridesDefaults(t *testing.T) {
	isolate(t)
	t.Setenv("POKENAMES_FORMAT", "csv")
	t.Setenv("POKENAMES_TIMEOUT", "5s")

	cfg, _, err := LoadMerged(Options{})
	require.NoError(t, err)

	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadMerged_ProfileEnvAndFlags(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)

	profile := `
source_url: "http://wiki.example/names"
format: csv
timeout: 10s
debug: false
`
	require.NoError(t, os.WriteFile(path, []byte(profile), 0644))
	t.Setenv("POKENAMES_DEBUG", "true")

	cfg, used, err := LoadMerged(Options{NamesFile: "out/names.txt"})
	require.NoError(t, err)

	assert.Equal(t, path, used)
	assert.Equal(t, "http://wiki.example/names", cfg.SourceURL)
	assert.Equal(t, "csv", cfg.Format)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.True(t, cfg.Debug)
	assert.Equal(t, "out/names.txt", cfg.NamesFile)
	// missing keys fall back to defaults
	assert.Equal(t, "data/list.csv", cfg.SlugOutput)
	assert.Equal(t, defaultTableSelector, cfg.TableSelector)
}

func TestLoadMerged_IgnoreConfig(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("format: csv\n"), 0644))

	cfg, used, err := LoadMerged(Options{IgnoreConfig: true, Timeout: time.Minute})
	require.NoError(t, err)

	assert.Equal(t, "(ignored config)", used)
	assert.Equal(t, "plain", cfg.Format)
	assert.Equal(t, time.Minute, cfg.Timeout)
}

func TestLoadMerged_BrokenProfile(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, []byte("timeout: [not, a, duration"), 0644))

	_, _, err = LoadMerged(Options{})
	assert.Error(t, err)
}

func TestInitDefaultConfig_Existing(t *testing.T) {
	isolate(t)

	path, err := InitDefaultConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	label, err := CurrentLabel()
	require.NoError(t, err)
	assert.Equal(t, DefaultLabel, label)

	again, err := InitDefaultConfig()
	assert.True(t, errors.Is(err, os.ErrExist))
	assert.Equal(t, path, again)
}

func TestSwitchAndListConfigs(t *testing.T) {
	isolate(t)

	_, err := InitDefaultConfig()
	require.NoError(t, err)
	require.NoError(t, SaveYAML(DefaultConfig(), PathForLabel("local")))

	require.NoError(t, SwitchConfig("local"))

	list, err := ListConfigs()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Default", list[0].Label)
	assert.False(t, list[0].Active)
	assert.Equal(t, "local", list[1].Label)
	assert.True(t, list[1].Active)

	assert.Error(t, SwitchConfig("missing"))
	assert.Error(t, SwitchConfig(" "))
}

func TestListConfigs_NoDir(t *testing.T) {
	isolate(t)

	list, err := ListConfigs()
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = ActiveConfigPath()
	assert.True(t, errors.Is(err, ErrNoConfig))
}

func TestSaveYAML_RoundTrip(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := DefaultConfig()
	cfg.CloudflareBypass = true
	require.NoError(t, SaveYAML(cfg, path))

	loaded, err := loadYAML(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_Print(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.Cookie = "secret"
	cfg.Print(&buf)

	out := buf.String()
	assert.Contains(t, out, " -source_url: "+defaultSourceURL)
	assert.Contains(t, out, " -cookie: (set)")
	assert.NotContains(t, out, "secret")
}
