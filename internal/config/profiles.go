package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrNoConfig = errors.New("no config selected")

const defaultLabel = "Default"

// ConfigRoot is <base>/starsite where base is $APPDATA, $XDG_CONFIG_HOME
// or ~/.config, whichever is set first.
func ConfigRoot() string {
	base := os.Getenv("APPDATA")
	if base == "" {
		base = os.Getenv("XDG_CONFIG_HOME")
	}
	if base == "" {
		home, _ := os.UserHomeDir()
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "starsite")
}

func ConfigsDir() string {
	return filepath.Join(ConfigRoot(), "configs")
}

func currentLabelFile() string {
	return filepath.Join(ConfigRoot(), "current_config")
}

// profilePath maps a label to its YAML file. Labels are plain file stems.
func profilePath(label string) (string, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return "", errors.New("label cannot be empty")
	}
	if label == "." || label == ".." || strings.ContainsAny(label, `/\`) {
		return "", fmt.Errorf("invalid label %q", label)
	}
	if err := os.MkdirAll(ConfigsDir(), 0755); err != nil {
		return "", err
	}
	return filepath.Join(ConfigsDir(), label+".yaml"), nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func CurrentLabel() (string, error) {
	b, err := os.ReadFile(currentLabelFile())
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoConfig
	}
	if err != nil {
		return "", err
	}

	label := strings.TrimSpace(string(b))
	if label == "" {
		return "", ErrNoConfig
	}
	return label, nil
}

func setCurrent(label string) error {
	if err := os.MkdirAll(ConfigRoot(), 0755); err != nil {
		return err
	}
	return os.WriteFile(currentLabelFile(), []byte(label), 0644)
}

func ActiveConfigPath() (string, error) {
	label, err := CurrentLabel()
	if err != nil {
		return "", err
	}
	return profilePath(label)
}

// ConfigPathByLabel returns the profile file for label, which must exist.
func ConfigPathByLabel(label string) (string, error) {
	path, err := profilePath(label)
	if err != nil {
		return "", err
	}
	if !exists(path) {
		return "", fmt.Errorf("config %q does not exist", label)
	}
	return path, nil
}

// Validate reports settings no build can run with. Zero values are fine:
// they fall back to the defaults.
func (c *Config) Validate() error {
	var errs []error

	if c.CatalogURL != "" {
		u, err := url.Parse(c.CatalogURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("catalog_url %q is not an http(s) URL", c.CatalogURL))
		}
	}
	for i, s := range c.Sections {
		if strings.TrimSpace(s) == "" {
			errs = append(errs, fmt.Errorf("sections[%d] is empty", i))
		}
	}
	for key, v := range map[string]int{
		"summary_limit":   c.SummaryLimit,
		"max_results":     c.MaxResults,
		"workers":         c.Workers,
		"timeout_seconds": c.TimeoutSeconds,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative", key))
		}
	}

	return errors.Join(errs...)
}

func readProfile(path string) (*Config, error) {
	cfg, err := loadYAML(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

type ConfigInfo struct {
	Label  string
	Path   string
	Active bool

	Franchise string
	Output    string
	// Err is set when the profile cannot be parsed or does not validate.
	Err error
}

// ListConfigs returns every profile sorted by label, with the franchise
// and output folder it would build.
func ListConfigs() ([]ConfigInfo, error) {
	paths, err := filepath.Glob(filepath.Join(ConfigsDir(), "*.yaml"))
	if err != nil {
		return nil, err
	}

	active, _ := CurrentLabel()
	out := make([]ConfigInfo, 0, len(paths))

	for _, p := range paths {
		info := ConfigInfo{
			Label: strings.TrimSuffix(filepath.Base(p), ".yaml"),
			Path:  p,
		}
		info.Active = info.Label == active

		if cfg, err := readProfile(p); err != nil {
			info.Err = err
		} else {
			normalizeDefaults(cfg)
			info.Franchise = cfg.Franchise
			info.Output = cfg.Output
		}

		out = append(out, info)
	}

	return out, nil
}

// SwitchConfig makes label the active profile. A profile that does not
// load is refused.
func SwitchConfig(label string) error {
	path, err := ConfigPathByLabel(label)
	if err != nil {
		return err
	}
	if _, err := readProfile(path); err != nil {
		return fmt.Errorf("config %q is invalid: %w", label, err)
	}

	return setCurrent(strings.TrimSpace(label))
}

// AddConfig copies srcPath as a new profile after checking it parses and
// validates. The file is copied byte for byte.
func AddConfig(label, srcPath string) error {
	dst, err := profilePath(label)
	if err != nil {
		return err
	}
	if exists(dst) {
		return fmt.Errorf("config %q already exists", label)
	}

	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return fmt.Errorf("parse %s: %w", srcPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", srcPath, err)
	}

	return os.WriteFile(dst, raw, 0644)
}

// CreateEmptyConfig writes a profile holding the defaults.
func CreateEmptyConfig(label string) (string, error) {
	path, err := profilePath(label)
	if err != nil {
		return "", err
	}
	if exists(path) {
		return "", fmt.Errorf("config %q already exists", label)
	}

	return path, SaveYAML(DefaultConfig(), path)
}

func RenameConfig(oldLabel, newLabel string) error {
	oldPath, err := ConfigPathByLabel(oldLabel)
	if err != nil {
		return err
	}
	newPath, err := profilePath(newLabel)
	if err != nil {
		return err
	}
	if exists(newPath) {
		return fmt.Errorf("config %q already exists", newLabel)
	}

	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}

	if active, _ := CurrentLabel(); active == oldLabel {
		return setCurrent(strings.TrimSpace(newLabel))
	}
	return nil
}

// RemoveConfig deletes a profile. Removing the active one makes Default
// active again; Default itself cannot be removed.
func RemoveConfig(label string) error {
	if strings.TrimSpace(label) == defaultLabel {
		return errors.New("cannot remove the Default config")
	}

	path, err := ConfigPathByLabel(label)
	if err != nil {
		return err
	}

	if active, _ := CurrentLabel(); active == label {
		if err := SwitchConfig(defaultLabel); err != nil {
			return fmt.Errorf("failed switching to Default: %w", err)
		}
	}

	return os.Remove(path)
}

// InitDefaultConfig writes Default.yaml and activates it. An existing
// Default is activated untouched and os.ErrExist is returned with its path.
func InitDefaultConfig() (string, error) {
	path, err := profilePath(defaultLabel)
	if err != nil {
		return "", err
	}

	if exists(path) {
		return path, errors.Join(setCurrent(defaultLabel), os.ErrExist)
	}

	if err := SaveYAML(DefaultConfig(), path); err != nil {
		return "", err
	}

	return path, setCurrent(defaultLabel)
}
