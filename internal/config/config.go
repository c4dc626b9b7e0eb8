package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"

	"github.com/jask/swipeconfirm/internal/gesture"
)

const envPrefix = "SWIPECONFIRM"

// Config holds application configuration.
type Config struct {
	Gesture GestureConfig `mapstructure:"gesture"`
	UI      UIConfig      `mapstructure:"ui"`
	Log     LogConfig     `mapstructure:"log"`
}

// GestureConfig holds the control's thresholds and sizes. Widths are in
// terminal cells.
type GestureConfig struct {
	AcceptThreshold  float64       `mapstructure:"accept_threshold"`
	DeclineThreshold float64       `mapstructure:"decline_threshold"`
	SettleDelay      time.Duration `mapstructure:"settle_delay"`
	OrbWidth         float64       `mapstructure:"orb_width"`
	MaxVisualOffset  float64       `mapstructure:"max_visual_offset"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	MaxTrackWidth int           `mapstructure:"max_track_width"`
	ArrowInterval time.Duration `mapstructure:"arrow_interval"`
}

// LogConfig controls the debug log. An empty File disables logging.
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func Default() Config {
	return Config{
		Gesture: GestureConfig{
			AcceptThreshold:  gesture.AcceptThreshold,
			DeclineThreshold: gesture.DeclineThreshold,
			SettleDelay:      gesture.SettleDelay,
			OrbWidth:         7,
			MaxVisualOffset:  28,
		},
		UI: UIConfig{
			MaxTrackWidth: 64,
			ArrowInterval: 180 * time.Millisecond,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Path returns the config file location: SWIPECONFIRM_CONFIG if set,
// otherwise $HOME/.config/swipeconfirm/config.toml.
func Path() string {
	if p := os.Getenv(envPrefix + "_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "swipeconfirm", "config.toml")
}

// Load reads configuration from file and env. path overrides the default
// location; a missing file at the default location is not an error. Env var
// overrides use prefix SWIPECONFIRM_.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("gesture.accept_threshold", def.Gesture.AcceptThreshold)
	v.SetDefault("gesture.decline_threshold", def.Gesture.DeclineThreshold)
	v.SetDefault("gesture.settle_delay", def.Gesture.SettleDelay)
	v.SetDefault("gesture.orb_width", def.Gesture.OrbWidth)
	v.SetDefault("gesture.max_visual_offset", def.Gesture.MaxVisualOffset)
	v.SetDefault("ui.max_track_width", def.UI.MaxTrackWidth)
	v.SetDefault("ui.arrow_interval", def.UI.ArrowInterval)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.file", def.Log.File)

	v.SetConfigType("toml")
	explicit := path != "" || os.Getenv(envPrefix+"_CONFIG") != ""
	if path == "" {
		path = Path()
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// GestureConfig converts the gesture section for the controller.
func (c Config) GestureConfig() gesture.Config {
	return gesture.Config{
		AcceptThreshold:  c.Gesture.AcceptThreshold,
		DeclineThreshold: c.Gesture.DeclineThreshold,
		SettleDelay:      c.Gesture.SettleDelay,
		OrbWidth:         c.Gesture.OrbWidth,
		MaxVisualOffset:  c.Gesture.MaxVisualOffset,
	}
}

func (c Config) Validate() error {
	if err := c.GestureConfig().Validate(); err != nil {
		return fmt.Errorf("gesture: %w", err)
	}
	if c.UI.MaxTrackWidth <= int(c.Gesture.OrbWidth) {
		return fmt.Errorf("ui: max track width %d must exceed orb width %v", c.UI.MaxTrackWidth, c.Gesture.OrbWidth)
	}
	if c.UI.ArrowInterval < 0 {
		return fmt.Errorf("ui: arrow interval %s must not be negative", c.UI.ArrowInterval)
	}
	return nil
}

// fileConfig is the on-disk TOML layout. Durations are written as strings so
// they round-trip through viper's duration decoding.
type fileConfig struct {
	Gesture struct {
		AcceptThreshold  float64 `toml:"accept_threshold"`
		DeclineThreshold float64 `toml:"decline_threshold"`
		SettleDelay      string  `toml:"settle_delay"`
		OrbWidth         float64 `toml:"orb_width"`
		MaxVisualOffset  float64 `toml:"max_visual_offset"`
	} `toml:"gesture"`
	UI struct {
		MaxTrackWidth int    `toml:"max_track_width"`
		ArrowInterval string `toml:"arrow_interval"`
	} `toml:"ui"`
	Log struct {
		Level string `toml:"level"`
		File  string `toml:"file"`
	} `toml:"log"`
}

// Write saves cfg as TOML, creating the config directory if needed.
func Write(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	var fc fileConfig
	fc.Gesture.AcceptThreshold = cfg.Gesture.AcceptThreshold
	fc.Gesture.DeclineThreshold = cfg.Gesture.DeclineThreshold
	fc.Gesture.SettleDelay = cfg.Gesture.SettleDelay.String()
	fc.Gesture.OrbWidth = cfg.Gesture.OrbWidth
	fc.Gesture.MaxVisualOffset = cfg.Gesture.MaxVisualOffset
	fc.UI.MaxTrackWidth = cfg.UI.MaxTrackWidth
	fc.UI.ArrowInterval = cfg.UI.ArrowInterval.String()
	fc.Log.Level = cfg.Log.Level
	fc.Log.File = cfg.Log.File

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := toml.NewEncoder(f).Encode(fc); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close config: %w", err)
	}
	return nil
}
