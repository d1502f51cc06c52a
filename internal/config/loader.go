package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// LoadEagle loads the game configuration.
// Search order: customPath -> ~/.eagle/configs/eagle.yaml -> ./configs/eagle.yaml -> embedded default.
// Files are applied on top of the defaults, so partial files are fine.
func LoadEagle(customPath string) (EagleConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return EagleConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return EagleConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("eagle.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/eagle.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultEagleYAML)
	if err != nil {
		return DefaultEagleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultEagleConfig and validates the result.
func Parse(data []byte) (EagleConfig, error) {
	cfg := DefaultEagleConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return EagleConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return EagleConfig{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (c EagleConfig) Validate() error {
	switch {
	case c.World.Width <= 0 || c.World.Height <= 0:
		return fmt.Errorf("%w: world size must be positive", ErrInvalidConfig)
	case c.Player.Width <= 0 || c.Player.Height <= 0 || c.Player.Height >= c.World.Height:
		return fmt.Errorf("%w: player size must be positive and fit the world", ErrInvalidConfig)
	case c.Player.PhysicsScale <= 0 || c.Player.PhysicsScale > 1:
		return fmt.Errorf("%w: physics_scale must be in (0, 1]", ErrInvalidConfig)
	case c.Stamina.Max <= 0:
		return fmt.Errorf("%w: stamina max must be positive", ErrInvalidConfig)
	case c.Stamina.DepletionRate < 0 || c.Stamina.RecoveryRate < 0:
		return fmt.Errorf("%w: stamina rates must not be negative", ErrInvalidConfig)
	case c.Stamina.AccelerationMultiplier < 1:
		return fmt.Errorf("%w: acceleration_multiplier must be at least 1", ErrInvalidConfig)
	case c.Coins.SpawnChance < 0 || c.Coins.SpawnChance > 1:
		return fmt.Errorf("%w: coin spawn_chance must be in [0, 1]", ErrInvalidConfig)
	case c.Session.Duration <= 0 || c.Session.TimerInterval <= 0:
		return fmt.Errorf("%w: session duration and timer_interval must be positive", ErrInvalidConfig)
	case c.Difficulty.MinSpawnInterval <= 0 || c.Tournament.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidConfig)
	case c.Difficulty.MaxLevel < 1:
		return fmt.Errorf("%w: max_level must be at least 1", ErrInvalidConfig)
	}
	for _, l := range c.Background.Layers {
		if l.Segments < 2 {
			return fmt.Errorf("%w: layer %q needs at least 2 segments", ErrInvalidConfig, l.Name)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".eagle", "configs", filename)
}
