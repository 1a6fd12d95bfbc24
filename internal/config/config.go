package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	SourceURL     string `yaml:"source_url" env:"POKENAMES_SOURCE_URL"`
	TableSelector string `yaml:"table_selector" env:"POKENAMES_TABLE_SELECTOR"`
	NamesFile     string `yaml:"names_file" env:"POKENAMES_NAMES_FILE"`
	Format        string `yaml:"format" env:"POKENAMES_FORMAT"`

	SlugInput  string `yaml:"slug_input" env:"POKENAMES_SLUG_INPUT"`
	SlugOutput string `yaml:"slug_output" env:"POKENAMES_SLUG_OUTPUT"`
	ListFile   string `yaml:"list_file" env:"POKENAMES_LIST_FILE"`

	Timeout          time.Duration `yaml:"timeout" env:"POKENAMES_TIMEOUT"`
	UserAgent        string        `yaml:"user_agent" env:"POKENAMES_USER_AGENT"`
	Cookie           string        `yaml:"cookie" env:"POKENAMES_COOKIE"`
	CloudflareBypass bool          `yaml:"cloudflare_bypass" env:"POKENAMES_CLOUDFLARE_BYPASS"`

	Debug      bool   `yaml:"debug" env:"POKENAMES_DEBUG"`
	LogFormat  string `yaml:"log_format" env:"POKENAMES_LOG_FORMAT"`
	NoProgress bool   `yaml:"no_progress" env:"POKENAMES_NO_PROGRESS"`
}

// Options carries CLI flag values. Zero values leave the config untouched.
type Options struct {
	IgnoreConfig     bool
	SourceURL        string
	TableSelector    string
	NamesFile        string
	Format           string
	SlugInput        string
	SlugOutput       string
	ListFile         string
	Timeout          time.Duration
	UserAgent        string
	Cookie           string
	CloudflareBypass bool
	Debug            bool
	NoProgress       bool
}

const (
	defaultSourceURL     = "https://bulbapedia.bulbagarden.net/wiki/List_of_German_Pok%C3%A9mon_names"
	defaultTableSelector = "table.roundy.roundtable"
	defaultNamesFile     = "data/german_names.txt"
	defaultSlugInput     = "data/pokemon.txt"
	defaultSlugOutput    = "data/list.csv"
	defaultTimeout       = 30 * time.Second
)

func DefaultConfig() *Config {
	return &Config{
		SourceURL:     defaultSourceURL,
		TableSelector: defaultTableSelector,
		NamesFile:     defaultNamesFile,
		Format:        "plain",
		SlugInput:     defaultSlugInput,
		SlugOutput:    defaultSlugOutput,
		ListFile:      defaultSlugOutput,
		Timeout:       defaultTimeout,
		LogFormat:     "text",
	}
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// loadYAML reads the file and then applies POKENAMES_* environment overrides.
func loadYAML(path string) (*Config, error) {
	var c Config
	if err := cleanenv.ReadConfig(path, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

// LoadMerged resolves the effective config: active profile (or defaults),
// then environment, then CLI flags. The second return value describes where
// the base config came from.
func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if err == ErrNoConfig || activePath == "" {
		cfg := DefaultConfig()
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, "", fmt.Errorf("read environment: %w", err)
		}
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.SourceURL != "" {
		c.SourceURL = o.SourceURL
	}
	if o.TableSelector != "" {
		c.TableSelector = o.TableSelector
	}
	if o.NamesFile != "" {
		c.NamesFile = o.NamesFile
	}
	if o.Format != "" {
		c.Format = o.Format
	}
	if o.SlugInput != "" {
		c.SlugInput = o.SlugInput
	}
	if o.SlugOutput != "" {
		c.SlugOutput = o.SlugOutput
	}
	if o.ListFile != "" {
		c.ListFile = o.ListFile
	}
	if o.Timeout != 0 {
		c.Timeout = o.Timeout
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CloudflareBypass {
		c.CloudflareBypass = true
	}
	if o.Debug {
		c.Debug = true
	}
	if o.NoProgress {
		c.NoProgress = true
	}
}

func normalizeDefaults(c *Config) {
	def := DefaultConfig()

	if c.SourceURL == "" {
		c.SourceURL = def.SourceURL
	}
	if c.TableSelector == "" {
		c.TableSelector = def.TableSelector
	}
	if c.NamesFile == "" {
		c.NamesFile = def.NamesFile
	}
	if c.Format == "" {
		c.Format = def.Format
	}
	if c.SlugInput == "" {
		c.SlugInput = def.SlugInput
	}
	if c.SlugOutput == "" {
		c.SlugOutput = def.SlugOutput
	}
	if c.ListFile == "" {
		c.ListFile = c.SlugOutput
	}
	if c.Timeout <= 0 {
		c.Timeout = def.Timeout
	}
	if c.LogFormat == "" {
		c.LogFormat = def.LogFormat
	}
}

func (c *Config) Print(w io.Writer) {
	fmt.Fprintf(w, " -source_url: %s\n", c.SourceURL)
	fmt.Fprintf(w, " -table_selector: %s\n", c.TableSelector)
	fmt.Fprintf(w, " -names_file: %s\n", c.NamesFile)
	fmt.Fprintf(w, " -format: %s\n", c.Format)
	fmt.Fprintf(w, " -slug_input: %s\n", c.SlugInput)
	fmt.Fprintf(w, " -slug_output: %s\n", c.SlugOutput)
	fmt.Fprintf(w, " -list_file: %s\n", c.ListFile)
	fmt.Fprintf(w, " -timeout: %s\n", c.Timeout)
	if c.UserAgent != "" {
		fmt.Fprintf(w, " -user_agent: %s\n", c.UserAgent)
	}
	if c.Cookie != "" {
		fmt.Fprintf(w, " -cookie: (set)\n")
	}
	if c.CloudflareBypass {
		fmt.Fprintf(w, " -cloudflare_bypass: %t\n", c.CloudflareBypass)
	}
	if c.Debug {
		fmt.Fprintf(w, " -debug: %t\n", c.Debug)
	}
	fmt.Fprintf(w, " -log_format: %s\n", c.LogFormat)
	if c.NoProgress {
		fmt.Fprintf(w, " -no_progress: %t\n", c.NoProgress)
	}
}
