package config

import "math"

// Params are the difficulty-derived values for one session. They are
// recomputed from (level, tournament) and never stored.
type Params struct {
	SpawnInterval    float64 // seconds between obstacle spawns
	MinSpeed         float64 // world units per second; also the cruise speed
	MaxSpeed         float64 // upper bound for the boosted speed
	CollectibleValue int     // reward per coin
}

// DifficultyModel maps a level and mode to Params.
type DifficultyModel struct {
	classic    DifficultyConfig
	tournament TournamentConfig
}

// NewDifficultyModel creates a difficulty model from the config sections.
func NewDifficultyModel(classic DifficultyConfig, tournament TournamentConfig) DifficultyModel {
	return DifficultyModel{classic: classic, tournament: tournament}
}

// DifficultyModel returns the model built from this config.
func (c EagleConfig) DifficultyModel() DifficultyModel {
	return NewDifficultyModel(c.Difficulty, c.Tournament)
}

// Params returns the parameters for the given level. Tournament mode ignores
// the level. Callers clamp level to >= 1.
func (d DifficultyModel) Params(level int, tournament bool) Params {
	if tournament {
		return Params{
			SpawnInterval:    d.tournament.SpawnInterval,
			MinSpeed:         d.tournament.MinSpeed,
			MaxSpeed:         d.tournament.MaxSpeed,
			CollectibleValue: d.tournament.CollectibleValue,
		}
	}

	c := d.classic
	steps := float64(level - 1)
	reduction := math.Min(c.MaxSpawnReduction, steps*c.SpawnIntervalStep)

	return Params{
		SpawnInterval:    math.Max(c.MinSpawnInterval, c.BaseSpawnInterval-reduction),
		MinSpeed:         c.BaseMinSpeed + steps*c.MinSpeedStep,
		MaxSpeed:         c.BaseMaxSpeed + steps*c.MaxSpeedStep,
		CollectibleValue: c.CollectibleValue,
	}
}

// ClampLevel restricts a requested level to [1, MaxLevel].
func (d DifficultyModel) ClampLevel(level int) int {
	return max(1, min(level, d.classic.MaxLevel))
}

// MaxLevel returns the highest classic level.
func (d DifficultyModel) MaxLevel() int {
	return d.classic.MaxLevel
}
