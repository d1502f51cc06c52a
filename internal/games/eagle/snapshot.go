package eagle

import "time"

// Snapshot is a read-only copy of everything a presenter needs for one
// frame.
type Snapshot struct {
	Phase           Phase
	Outcome         Outcome
	Level           int
	Tournament      bool
	Score           int
	TimeRemaining   time.Duration
	Stamina         float64
	StaminaMax      float64
	Accelerating    bool
	Speed           float64
	HasCollidedOnce bool
	Invulnerable    bool
	Flickering      bool
	Actor           Actor
	Obstacles       []Obstacle
	Collectibles    []Collectible
	Background      []Layer
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:           s.phase,
		Outcome:         s.outcome,
		Level:           s.level,
		Tournament:      s.tournament,
		Score:           s.score,
		TimeRemaining:   s.timeRemaining,
		Stamina:         s.stamina.Value(),
		StaminaMax:      s.stamina.Max(),
		Accelerating:    s.stamina.Accelerating(),
		Speed:           s.speed(),
		HasCollidedOnce: s.hasCollidedOnce,
		Invulnerable:    s.actor.Invulnerable,
		Flickering:      s.Flickering(),
		Actor:           s.actor,
		Obstacles:       s.Obstacles(),
		Collectibles:    s.Collectibles(),
		Background:      s.background.Layers(),
	}
}

// AssetNames are the sprite names for the current cosmetics.
type AssetNames struct {
	EagleFrames []string
	Background  string
	Obstacles   map[ObstacleType]string
}

// AssetNames resolves the cosmetics to asset names.
func (s *Session) AssetNames() AssetNames {
	frames := make([]string, eagleFrames)
	for i := range frames {
		frames[i] = s.cosmetics.EagleFrame(i)
	}
	obstacles := make(map[ObstacleType]string, len(obstacleTypes))
	for _, t := range obstacleTypes {
		obstacles[t] = t.String()
	}
	return AssetNames{
		EagleFrames: frames,
		Background:  s.cosmetics.BackgroundAsset(),
		Obstacles:   obstacles,
	}
}
