package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"k8s.io/utils/ptr"
)

// EnvPrefix prefixes the environment overrides, e.g. TODOELM_DEBUG.
const EnvPrefix = "TODOELM"

var validate = validator.New()

type Config struct {
	Window struct {
		Width  int `json:"width" envconfig:"WIDTH" validate:"min=200"`
		Height int `json:"height" envconfig:"HEIGHT" validate:"min=200"`
	} `json:"window" envconfig:"WINDOW"`
	ColorScheme string `json:"colorScheme" envconfig:"COLOR_SCHEME" validate:"oneof=default light dark"`
	// HideCompleted is the initial todo filter; nil means the model's default.
	HideCompleted *bool `json:"hideCompleted,omitempty" envconfig:"HIDE_COMPLETED"`
	// Debug shows the current model next to the UI.
	Debug bool `json:"debug" envconfig:"DEBUG"`
	// Trace logs a model diff after every transition (needs -v 4).
	Trace bool `json:"trace" envconfig:"TRACE"`

	path string
}

// DefaultPath is $XDG_CONFIG_HOME/todoelm/config.json or the platform
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "todoelm", "config.json"), nil
}

// LoadConfig reads the file at path, applies environment overrides and
// defaults, and validates the result. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := Config{path: path}

	f, err := os.Open(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		defer f.Close()
		if err := json.NewDecoder(f).Decode(&config); err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
	}

	if err := envconfig.Process(EnvPrefix, &config); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}

	config.Defaults()

	if err := validate.Struct(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func (c *Config) Defaults() {
	if c.Window.Width == 0 {
		c.Window.Width = 480
	}
	if c.Window.Height == 0 {
		c.Window.Height = 640
	}
	if c.ColorScheme == "" {
		c.ColorScheme = "default"
	}
}

func (c *Config) InitialFilter() bool {
	return ptr.Deref(c.HideCompleted, false)
}

func (c *Config) Path() string {
	return c.path
}

// SaveWindowSize records the size a window was closed at and saves the
// config. Sizes below the validated minimum are not recorded.
func (c *Config) SaveWindowSize(width, height int) error {
	prev := c.Window
	c.Window.Width, c.Window.Height = width, height
	if err := validate.Struct(c); err != nil {
		c.Window = prev
		return fmt.Errorf("window size %dx%d: %w", width, height, err)
	}
	return c.Save()
}

func (c *Config) Save() error {
	if c.path == "" {
		return errors.New("config has no path")
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(c.path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
