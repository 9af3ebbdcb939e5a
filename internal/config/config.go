package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vango-dev/minireact/internal/errors"
)

const (
	// ConfigFileName is the name of the JSON configuration file.
	ConfigFileName = "minireact.json"

	// YAMLConfigFileName is the name of the YAML configuration file.
	YAMLConfigFileName = "minireact.yaml"

	// DefaultPort is the default server port.
	DefaultPort = 5000

	// DefaultHost is the default server host.
	DefaultHost = "localhost"

	// DefaultEntry is the page served for "/".
	DefaultEntry = "index.html"

	// DefaultDemoDelay is the pause between the demo's two renders.
	DefaultDemoDelay = 3 * time.Second

	// DefaultDebounce coalesces bursts of file events into one reload.
	DefaultDebounce = 100 * time.Millisecond

	// DefaultMetricsPath is where prometheus metrics are exposed.
	DefaultMetricsPath = "/metrics"

	// DefaultCacheControl is sent with every static file.
	DefaultCacheControl = "no-cache"
)

// Config represents the complete minireact.json configuration.
type Config struct {
	// Port is the server port.
	Port int `json:"port,omitempty" yaml:"port,omitempty"`

	// Host is the host to bind to.
	Host string `json:"host,omitempty" yaml:"host,omitempty"`

	// Root is the directory served as static files, relative to the config
	// file.
	Root string `json:"root,omitempty" yaml:"root,omitempty"`

	// Entry is the page served for "/", relative to Root.
	Entry string `json:"entry,omitempty" yaml:"entry,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"logLevel,omitempty" yaml:"logLevel,omitempty"`

	Static  StaticConfig  `json:"static,omitempty" yaml:"static,omitempty"`
	Dev     DevConfig     `json:"dev,omitempty" yaml:"dev,omitempty"`
	Demo    DemoConfig    `json:"demo,omitempty" yaml:"demo,omitempty"`
	Metrics MetricsConfig `json:"metrics,omitempty" yaml:"metrics,omitempty"`
	Tracing TracingConfig `json:"tracing,omitempty" yaml:"tracing,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// StaticConfig contains static file serving configuration.
type StaticConfig struct {
	// CacheControl is the Cache-Control header sent with static files.
	CacheControl string `json:"cacheControl,omitempty" yaml:"cacheControl,omitempty"`
}

// DevConfig contains live reload settings.
type DevConfig struct {
	// LiveReload injects the reload client and watches Root for changes.
	LiveReload bool `json:"liveReload,omitempty" yaml:"liveReload,omitempty"`

	// Ignore contains directory names skipped by the watcher.
	Ignore []string `json:"ignore,omitempty" yaml:"ignore,omitempty"`

	// Debounce is how long the watcher waits for more events (e.g. "100ms").
	Debounce string `json:"debounce,omitempty" yaml:"debounce,omitempty"`
}

// DemoConfig contains settings for the demo command.
type DemoConfig struct {
	// Delay is the pause before the second render (e.g. "3s").
	Delay string `json:"delay,omitempty" yaml:"delay,omitempty"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `json:"enabled,omitempty" yaml:"enabled,omitempty"`
	Path    string `json:"path,omitempty" yaml:"path,omitempty"`

	// Subsystem is inserted between the namespace and the metric name.
	Subsystem string `json:"subsystem,omitempty" yaml:"subsystem,omitempty"`

	// Labels are constant labels added to every metric.
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`

	// Buckets are the duration histogram buckets in seconds, strictly
	// increasing. Empty means the prometheus defaults.
	Buckets []float64 `json:"buckets,omitempty" yaml:"buckets,omitempty"`
}

// TracingConfig controls OpenTelemetry request spans.
type TracingConfig struct {
	Enabled bool `json:"enabled,omitempty" yaml:"enabled,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	c := &Config{
		Dev:     DevConfig{LiveReload: true},
		Metrics: MetricsConfig{Enabled: true},
	}
	c.applyDefaults()
	return c
}

// Load reads configuration from the specified directory.
// It looks for minireact.json, then minireact.yaml and minireact.yml.
func Load(dir string) (*Config, error) {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName, "minireact.yml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return LoadFile(path)
		}
	}
	return nil, errors.New("E121").
		WithDetail("No " + ConfigFileName + " or " + YAMLConfigFileName + " found in " + dir).
		WithSuggestion("Create " + ConfigFileName + " or pass settings as flags")
}

// LoadOrDefault is Load, falling back to New when no file exists.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if errors.CodeOf(err) == "E121" {
		cfg = New()
		cfg.configPath = filepath.Join(dir, ConfigFileName)
		return cfg, nil
	}
	return cfg, err
}

// LoadFile reads configuration from the specified file path. Files ending in
// .yaml or .yml are parsed as YAML, everything else as JSON.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E121").
				WithDetail("No configuration file at " + path)
		}
		return nil, errors.New("E120").Wrap(err)
	}

	cfg := New()
	// Booleans default to true; the file decides.
	cfg.Dev.LiveReload = false
	cfg.Metrics.Enabled = false

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid YAML")
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E120").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid JSON")
		}
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration as JSON to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("E120").Wrap(err)
	}

	// Add newline at end of file
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E120").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Root == "" {
		c.Root = "."
	}
	if c.Entry == "" {
		c.Entry = DefaultEntry
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.Static.CacheControl == "" {
		c.Static.CacheControl = DefaultCacheControl
	}
	if c.Dev.Ignore == nil {
		c.Dev.Ignore = []string{".git", "node_modules"}
	}
	if c.Dev.Debounce == "" {
		c.Dev.Debounce = DefaultDebounce.String()
	}
	if c.Demo.Delay == "" {
		c.Demo.Delay = DefaultDemoDelay.String()
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return errors.New("E122").
			WithDetail("Port must be between 0 and 65535")
	}
	if strings.Contains(c.Entry, "..") || filepath.IsAbs(c.Entry) {
		return errors.New("E122").
			WithDetailf("Entry %q must be a path inside the root directory", c.Entry)
	}
	if _, err := parseDuration("dev.debounce", c.Dev.Debounce); err != nil {
		return err
	}
	if _, err := parseDuration("demo.delay", c.Demo.Delay); err != nil {
		return err
	}
	if !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("E122").
			WithDetailf("metrics.path %q must start with /", c.Metrics.Path)
	}
	for i := 1; i < len(c.Metrics.Buckets); i++ {
		if c.Metrics.Buckets[i] <= c.Metrics.Buckets[i-1] {
			return errors.New("E122").
				WithDetailf("metrics.buckets must be strictly increasing, got %v", c.Metrics.Buckets)
		}
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return errors.New("E122").
			WithDetailf("logLevel %q is not one of debug, info, warn, error", c.LogLevel)
	}
	return nil
}

// Address returns the address string for the server.
func (c *Config) Address() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// URL returns the full URL for the server.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// RootPath returns the absolute path to the served directory.
func (c *Config) RootPath() string {
	if filepath.IsAbs(c.Root) {
		return c.Root
	}
	base := c.Dir()
	if base == "" {
		base, _ = os.Getwd()
	}
	return filepath.Join(base, c.Root)
}

// DebounceDuration returns Dev.Debounce parsed, or the default if invalid.
func (c *Config) DebounceDuration() time.Duration {
	d, err := parseDuration("dev.debounce", c.Dev.Debounce)
	if err != nil {
		return DefaultDebounce
	}
	return d
}

// DemoDelay returns Demo.Delay parsed, or the default if invalid.
func (c *Config) DemoDelay() time.Duration {
	d, err := parseDuration("demo.delay", c.Demo.Delay)
	if err != nil {
		return DefaultDemoDelay
	}
	return d
}

func parseDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil || d < 0 {
		return 0, errors.New("E122").
			WithDetailf("%s %q is not a valid non-negative duration", field, value).
			WithSuggestion("Use Go duration syntax such as \"250ms\" or \"3s\"")
	}
	return d, nil
}

// Exists checks if a configuration file exists in the directory.
func Exists(dir string) bool {
	for _, name := range []string{ConfigFileName, YAMLConfigFileName, "minireact.yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}
