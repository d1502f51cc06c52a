// Package config provides YAML-based configuration loading and the
// difficulty model for the Soaring Eagle game.
package config

import "time"

// EagleConfig contains all tunables of the simulation.
type EagleConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Coins      CoinsConfig      `yaml:"coins"`
	Stamina    StaminaConfig    `yaml:"stamina"`
	Session    SessionConfig    `yaml:"session"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Tournament TournamentConfig `yaml:"tournament"`
	Background BackgroundConfig `yaml:"background"`
	Profile    ProfileConfig    `yaml:"profile"`
}

// WorldConfig is the size of the simulated scene in world units.
// The terminal host scales it to whatever the window offers.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig describes the eagle.
type PlayerConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	XFraction    float64 `yaml:"x_fraction"`    // horizontal position, fraction of world width
	StartY       float64 `yaml:"start_y"`       // initial vertical position, fraction of world height
	PhysicsScale float64 `yaml:"physics_scale"` // collision box relative to the sprite
	MoveStep     float64 `yaml:"move_step"`     // vertical distance per key press
}

// ObstacleSize is the fixed footprint of one obstacle type.
type ObstacleSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ObstaclesConfig defines obstacle spawning geometry.
type ObstaclesConfig struct {
	Cloud        ObstacleSize `yaml:"cloud"`
	Balloon      ObstacleSize `yaml:"balloon"`
	Zeppelin     ObstacleSize `yaml:"zeppelin"`
	BottomMargin float64      `yaml:"bottom_margin"`
	TopMargin    float64      `yaml:"top_margin"`
}

// CoinsConfig defines collectible spawning.
type CoinsConfig struct {
	Size        float64 `yaml:"size"`
	SpawnChance float64 `yaml:"spawn_chance"` // evaluated once per obstacle spawn
}

// StaminaConfig defines the acceleration resource.
type StaminaConfig struct {
	Max                    float64 `yaml:"max"`
	DepletionRate          float64 `yaml:"depletion_rate"` // per second while accelerating
	RecoveryRate           float64 `yaml:"recovery_rate"`  // per second while cruising
	AccelerationMultiplier float64 `yaml:"acceleration_multiplier"`
}

// SessionConfig defines session timing.
type SessionConfig struct {
	Duration        time.Duration `yaml:"duration"`
	TimerInterval   time.Duration `yaml:"timer_interval"`
	Invulnerability time.Duration `yaml:"invulnerability"`
	FlickerPeriod   time.Duration `yaml:"flicker_period"`
	MaxFrameDelta   time.Duration `yaml:"max_frame_delta"`
}

// DifficultyConfig holds the classic-mode base constants and per-level
// increments.
type DifficultyConfig struct {
	BaseSpawnInterval     float64 `yaml:"base_spawn_interval"`
	MinSpawnInterval      float64 `yaml:"min_spawn_interval"`
	SpawnIntervalStep     float64 `yaml:"spawn_interval_step"`
	MaxSpawnReduction     float64 `yaml:"max_spawn_reduction"`
	BaseMinSpeed          float64 `yaml:"base_min_speed"`
	BaseMaxSpeed          float64 `yaml:"base_max_speed"`
	MinSpeedStep          float64 `yaml:"min_speed_step"`
	MaxSpeedStep          float64 `yaml:"max_speed_step"`
	CollectibleValue      int     `yaml:"collectible_value"`
	MaxLevel              int     `yaml:"max_level"`
	LevelCompletionReward int     `yaml:"level_completion_reward"`
}

// TournamentConfig holds the fixed tournament constants.
type TournamentConfig struct {
	SpawnInterval    float64 `yaml:"spawn_interval"`
	MinSpeed         float64 `yaml:"min_speed"`
	MaxSpeed         float64 `yaml:"max_speed"`
	CollectibleValue int     `yaml:"collectible_value"`
	EntryFee         int     `yaml:"entry_fee"`
}

// LayerConfig is one parallax background layer.
type LayerConfig struct {
	Name        string  `yaml:"name"`
	SpeedFactor float64 `yaml:"speed_factor"`
	Segments    int     `yaml:"segments"`
}

// BackgroundConfig defines the scrolling backdrop.
type BackgroundConfig struct {
	Speed  float64       `yaml:"speed"` // world units per second at factor 1.0
	Layers []LayerConfig `yaml:"layers"`
}

// ProfileConfig holds progression thresholds used by the profile service.
type ProfileConfig struct {
	CoinCollectorTarget int `yaml:"coin_collector_target"`
}

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// StartLevelForPreset returns the first level played for a preset.
// An unknown preset returns 0, meaning "use the profile's level".
func StartLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 3
	case DifficultyHard:
		return 6
	default:
		return 0
	}
}
