package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/eagle.yaml
var defaultEagleYAML []byte

// DefaultEagleConfig returns the hardcoded configuration. It mirrors
// defaults/eagle.yaml and is used when the embedded file cannot be parsed.
func DefaultEagleConfig() EagleConfig {
	return EagleConfig{
		World: WorldConfig{
			Width:  800,
			Height: 400,
		},
		Player: PlayerConfig{
			Width:        100,
			Height:       70,
			XFraction:    0.15,
			StartY:       0.5,
			PhysicsScale: 0.7,
			MoveStep:     40,
		},
		Obstacles: ObstaclesConfig{
			Cloud:        ObstacleSize{Width: 100, Height: 60},
			Balloon:      ObstacleSize{Width: 70, Height: 90},
			Zeppelin:     ObstacleSize{Width: 150, Height: 80},
			BottomMargin: 20,
			TopMargin:    40,
		},
		Coins: CoinsConfig{
			Size:        30,
			SpawnChance: 0.3,
		},
		Stamina: StaminaConfig{
			Max:                    100,
			DepletionRate:          20,
			RecoveryRate:           10,
			AccelerationMultiplier: 1.5,
		},
		Session: SessionConfig{
			Duration:        30 * time.Second,
			TimerInterval:   100 * time.Millisecond,
			Invulnerability: 2 * time.Second,
			FlickerPeriod:   200 * time.Millisecond,
			MaxFrameDelta:   250 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			BaseSpawnInterval:     1.5,
			MinSpawnInterval:      0.8,
			SpawnIntervalStep:     0.08,
			MaxSpawnReduction:     0.7,
			BaseMinSpeed:          150,
			BaseMaxSpeed:          300,
			MinSpeedStep:          15,
			MaxSpeedStep:          30,
			CollectibleValue:      5,
			MaxLevel:              10,
			LevelCompletionReward: 50,
		},
		Tournament: TournamentConfig{
			SpawnInterval:    0.9,
			MinSpeed:         250,
			MaxSpeed:         450,
			CollectibleValue: 10,
			EntryFee:         100,
		},
		Background: BackgroundConfig{
			Speed: 50,
			Layers: []LayerConfig{
				{Name: "mountains", SpeedFactor: 0.5, Segments: 2},
				{Name: "hills", SpeedFactor: 1.0, Segments: 3},
			},
		},
		Profile: ProfileConfig{
			CoinCollectorTarget: 100,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultEagleYAML
}
