package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const DefaultCatalogURL = "https://kenjosabers.com/blogs/news/top-15-most-popular-star-wars-characters-icons-from-a-galaxy-far-far-away"

type Config struct {
	Output         string   `yaml:"output"`
	CharactersDir  string   `yaml:"characters_dir"`
	SummaryLimit   int      `yaml:"summary_limit"`
	MaxResults     int      `yaml:"max_results"`
	Workers        int      `yaml:"workers"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
	Debug          bool     `yaml:"debug"`
	Franchise      string   `yaml:"franchise"`
	Sections       []string `yaml:"sections"`
	CatalogURL     string   `yaml:"catalog_url"`

	DefaultRange string `yaml:"default_range"`
	DefaultList  string `yaml:"default_list"`

	Cookie     string `yaml:"cookie"`
	CookieFile string `yaml:"cookie_file"`
	UserAgent  string `yaml:"user_agent"`
}

type Options struct {
	IgnoreConfig   bool
	Debug          bool
	Output         string
	CharactersDir  string
	SummaryLimit   int
	MaxResults     int
	Workers        int
	TimeoutSeconds int
	Franchise      string
	CatalogURL     string
	DefaultRange   string
	DefaultList    string
	Cookie         string
	CookieFile     string
	UserAgent      string
}

func DefaultConfig() *Config {
	return &Config{
		Output:         "WWW1",
		CharactersDir:  "characters",
		SummaryLimit:   300,
		MaxResults:     1,
		Workers:        4,
		TimeoutSeconds: 30,
		Debug:          false,
		Franchise:      "Star Wars",
		Sections:       []string{"Movies", "Games", "Books"},
		CatalogURL:     DefaultCatalogURL,
		DefaultRange:   "",
		DefaultList:    "",
		Cookie:         "",
		CookieFile:     "",
		UserAgent:      "",
	}
}

func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func SaveYAML(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

func loadYAML(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	return &c, nil
}

func LoadMerged(opts Options) (*Config, string, error) {
	if opts.IgnoreConfig {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(ignored config)", nil
	}

	activePath, err := ActiveConfigPath()
	if errors.Is(err, ErrNoConfig) || activePath == "" {
		cfg := DefaultConfig()
		mergeConfig(cfg, opts)
		normalizeDefaults(cfg)
		return cfg, "(default config in memory)\nRun `starsite config init` to create an actual config\n", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := loadYAML(activePath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config %s: %w", activePath, err)
	}

	mergeConfig(cfg, opts)
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid config %s: %w", activePath, err)
	}
	normalizeDefaults(cfg)

	return cfg, activePath, nil
}

func mergeConfig(c *Config, o Options) {
	if o.Output != "" {
		c.Output = o.Output
	}
	if o.CharactersDir != "" {
		c.CharactersDir = o.CharactersDir
	}
	if o.SummaryLimit != 0 {
		c.SummaryLimit = o.SummaryLimit
	}
	if o.MaxResults != 0 {
		c.MaxResults = o.MaxResults
	}
	if o.Workers != 0 {
		c.Workers = o.Workers
	}
	if o.TimeoutSeconds != 0 {
		c.TimeoutSeconds = o.TimeoutSeconds
	}
	if o.Debug {
		c.Debug = true
	}
	if o.Franchise != "" {
		c.Franchise = o.Franchise
	}
	if o.CatalogURL != "" {
		c.CatalogURL = o.CatalogURL
	}
	if o.DefaultRange != "" {
		c.DefaultRange = o.DefaultRange
	}
	if o.DefaultList != "" {
		c.DefaultList = o.DefaultList
	}
	if o.Cookie != "" {
		c.Cookie = o.Cookie
	}
	if o.CookieFile != "" {
		c.CookieFile = o.CookieFile
	}
	if o.UserAgent != "" {
		c.UserAgent = o.UserAgent
	}
}

func normalizeDefaults(c *Config) {
	def := DefaultConfig()

	if c.Output == "" {
		c.Output = def.Output
	}
	if c.CharactersDir == "" {
		c.CharactersDir = def.CharactersDir
	}
	if c.SummaryLimit <= 0 {
		c.SummaryLimit = def.SummaryLimit
	}
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if c.Workers <= 0 {
		c.Workers = def.Workers
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = def.TimeoutSeconds
	}
	if c.Franchise == "" {
		c.Franchise = def.Franchise
	}
	if c.Sections == nil {
		c.Sections = def.Sections
	}
	if c.CatalogURL == "" {
		c.CatalogURL = def.CatalogURL
	}
}

func (c *Config) Print() {
	fmt.Printf(" -output: %s\n", c.Output)
	fmt.Printf(" -characters_dir: %s\n", c.CharactersDir)
	fmt.Printf(" -summary_limit: %d\n", c.SummaryLimit)
	fmt.Printf(" -max_results: %d\n", c.MaxResults)
	fmt.Printf(" -workers: %d\n", c.Workers)
	fmt.Printf(" -timeout_seconds: %d\n", c.TimeoutSeconds)
	fmt.Printf(" -franchise: %s\n", c.Franchise)
	if len(c.Sections) > 0 {
		fmt.Printf(" -sections: %s\n", strings.Join(c.Sections, ", "))
	}
	fmt.Printf(" -catalog_url: %s\n", c.CatalogURL)
	if c.Debug {
		fmt.Printf(" -debug: %t\n", c.Debug)
	}
	if c.DefaultRange != "" {
		fmt.Printf(" -range: %s\n", c.DefaultRange)
	}
	if c.DefaultList != "" {
		fmt.Printf(" -list: %s\n", c.DefaultList)
	}
	if c.CookieFile != "" {
		fmt.Printf(" -cookie_file: %s\n", c.CookieFile)
	}
	if c.UserAgent != "" {
		fmt.Printf(" -user_agent: %s\n", c.UserAgent)
	}
}
