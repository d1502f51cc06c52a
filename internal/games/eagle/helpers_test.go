package eagle

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/core"
)

type recordingProfile struct {
	coins       []int
	victories   []Result
	defeats     []Result
	tournaments []Result
}

func (p *recordingProfile) AddCoins(n int)              { p.coins = append(p.coins, n) }
func (p *recordingProfile) OnVictory(r Result)          { p.victories = append(p.victories, r) }
func (p *recordingProfile) OnDefeat(r Result)           { p.defeats = append(p.defeats, r) }
func (p *recordingProfile) OnTournamentResult(r Result) { p.tournaments = append(p.tournaments, r) }

// quietConfig never spawns on its own, so tests control every entity.
func quietConfig() config.EagleConfig {
	cfg := config.DefaultEagleConfig()
	cfg.Difficulty.BaseSpawnInterval = 1000
	cfg.Difficulty.MinSpawnInterval = 1000
	cfg.Tournament.SpawnInterval = 1000
	return cfg
}

type clock struct {
	now time.Time
}

func newClock() *clock {
	return &clock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *clock) tick(s *Session, d time.Duration) {
	c.now = c.now.Add(d)
	s.Tick(c.now)
}

// run ticks s every step until d has elapsed.
func (c *clock) run(s *Session, d, step time.Duration) {
	for elapsed := time.Duration(0); elapsed < d; elapsed += step {
		c.tick(s, step)
	}
}

// obstacleOnActor places a cloud right on top of the eagle.
func obstacleOnActor(s *Session) Obstacle {
	a := s.Actor().Box.Center
	o := Obstacle{ID: uuid.New(), Type: ObstacleCloud, Box: core.NewBox(a.X, a.Y, 100, 60)}
	s.obstacles = append(s.obstacles, o)
	return o
}

func coinOnActor(s *Session, value int) Collectible {
	a := s.Actor().Box.Center
	c := Collectible{ID: uuid.New(), Box: core.NewBox(a.X, a.Y, 30, 30), Value: value}
	s.coins = append(s.coins, c)
	return c
}
