package gesture

import (
	"errors"
	"fmt"
	"time"
)

// Defaults for the control. Widths are in the host's layout unit.
const (
	AcceptThreshold  = 0.2
	DeclineThreshold = -0.2
	SettleDelay      = 50 * time.Millisecond
	OrbWidth         = 60
	MaxVisualOffset  = 240
)

var ErrInvalidConfig = errors.New("invalid gesture config")

// Config holds the tunable constants of the control.
type Config struct {
	AcceptThreshold  float64
	DeclineThreshold float64
	SettleDelay      time.Duration
	OrbWidth         float64
	MaxVisualOffset  float64
}

func DefaultConfig() Config {
	return Config{
		AcceptThreshold:  AcceptThreshold,
		DeclineThreshold: DeclineThreshold,
		SettleDelay:      SettleDelay,
		OrbWidth:         OrbWidth,
		MaxVisualOffset:  MaxVisualOffset,
	}
}

func (c Config) Validate() error {
	if c.AcceptThreshold <= 0 || c.AcceptThreshold >= 1 {
		return fmt.Errorf("accept threshold %v outside (0, 1): %w", c.AcceptThreshold, ErrInvalidConfig)
	}
	if c.DeclineThreshold >= 0 || c.DeclineThreshold <= -1 {
		return fmt.Errorf("decline threshold %v outside (-1, 0): %w", c.DeclineThreshold, ErrInvalidConfig)
	}
	if c.OrbWidth <= 0 {
		return fmt.Errorf("orb width %v must be positive: %w", c.OrbWidth, ErrInvalidConfig)
	}
	if c.MaxVisualOffset < 0 {
		return fmt.Errorf("max visual offset %v must not be negative: %w", c.MaxVisualOffset, ErrInvalidConfig)
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settle delay %s must not be negative: %w", c.SettleDelay, ErrInvalidConfig)
	}
	return nil
}
