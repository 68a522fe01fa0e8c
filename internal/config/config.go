package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"usertable/internal/eventbus"
)

// DefaultAPIURL is the endpoint queried when nothing else is configured
const DefaultAPIURL = "https://jsonplaceholder.typicode.com/users"

// Environment variables that override the config file
const (
	EnvAPIURL  = "USERTABLE_API_URL"
	EnvTimeout = "USERTABLE_TIMEOUT"
	EnvLogFile = "USERTABLE_LOG_FILE"
)

// Config represents the application configuration
type Config struct {
	Version    int        `toml:"version" yaml:"version"`
	APIURL     string     `toml:"api_url" yaml:"api_url"`
	Timeout    Duration   `toml:"timeout" yaml:"timeout"`
	LogFile    string     `toml:"log_file" yaml:"log_file"`
	UISettings UISettings `toml:"ui" yaml:"ui"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	DefaultFilters []string `toml:"default_filters" yaml:"default_filters"`
	ShowEmail      bool     `toml:"show_email" yaml:"show_email"`
	AutosaveOnExit bool     `toml:"autosave_on_exit" yaml:"autosave_on_exit"`
}

// Duration is a time.Duration written as a string like "10s"
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	*d = Duration(parsed)
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// DefaultPath returns ~/.config/usertable/config.toml or the closest fallback
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "usertable", "config.toml")
}

// NewConfigService creates a config service reading from path.
// An empty path selects DefaultPath.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultPath()
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service reads and writes
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, falling back to defaults when the
// file does not exist. Environment overrides are applied in both cases.
func (cs *configService) Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	var cfg *Config
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		cfg = DefaultConfig()
	} else {
		loaded, err := cs.LoadFromPath(cs.filePath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnv(cfg)

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{
			APIURL:  cfg.APIURL,
			Filters: cfg.UISettings.DefaultFilters,
		})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// The format is picked from the extension: .yaml/.yml or TOML otherwise.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if isYAML(path) {
		err = yaml.Unmarshal(data, cfg)
	} else {
		err = toml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultConfig().Timeout
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(config)
	} else {
		data, err = toml.Marshal(config)
	}
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		APIURL:  DefaultAPIURL,
		Timeout: Duration(10 * time.Second),
		LogFile: "usertable.log",
		UISettings: UISettings{
			DefaultFilters: []string{"username"},
			ShowEmail:      true,
			AutosaveOnExit: false,
		},
	}
}

// applyEnv overrides cfg from the environment. Invalid values are logged
// and the file value is kept.
func applyEnv(cfg *Config) {
	if v, ok := os.LookupEnv(EnvAPIURL); ok && v != "" {
		cfg.APIURL = v
	}
	if v, ok := os.LookupEnv(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		switch {
		case err != nil:
			log.Printf("Ignoring %s: %v", EnvTimeout, err)
		case d <= 0:
			log.Printf("Ignoring %s: timeout must be positive, got %s", EnvTimeout, v)
		default:
			cfg.Timeout = Duration(d)
		}
	}
	if v, ok := os.LookupEnv(EnvLogFile); ok && v != "" {
		cfg.LogFile = v
	}
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
