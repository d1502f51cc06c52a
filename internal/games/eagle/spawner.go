package eagle

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/core"
)

// Spawn is what the spawner produced on one update.
type Spawn struct {
	Obstacle    Obstacle
	Collectible *Collectible
}

// Spawner emits obstacles at a fixed interval of simulated time and
// occasionally a coin next to them. All randomness comes from one seeded
// source so a session can be replayed.
type Spawner struct {
	rng       *rand.Rand
	world     config.WorldConfig
	obstacles config.ObstaclesConfig
	coins     config.CoinsConfig
	interval  float64
	value     int
	lastSpawn float64
}

// NewSpawner creates a spawner seeded with seed.
func NewSpawner(seed int64, cfg config.EagleConfig) *Spawner {
	return &Spawner{
		rng:       rand.New(rand.NewSource(seed)),
		world:     cfg.World,
		obstacles: cfg.Obstacles,
		coins:     cfg.Coins,
	}
}

// Configure applies the difficulty parameters and restarts the interval
// at simulated time now.
func (s *Spawner) Configure(p config.Params, now float64) {
	s.interval = p.SpawnInterval
	s.value = p.CollectibleValue
	s.lastSpawn = now
}

// Update spawns once more than one interval has elapsed since the last spawn.
// It produces at most one obstacle per call.
func (s *Spawner) Update(now float64) (Spawn, bool) {
	if s.interval <= 0 || now-s.lastSpawn <= s.interval {
		return Spawn{}, false
	}
	s.lastSpawn = now

	out := Spawn{Obstacle: s.spawnObstacle()}
	if s.rng.Float64() < s.coins.SpawnChance {
		c := s.spawnCollectible()
		out.Collectible = &c
	}
	return out, true
}

func (s *Spawner) spawnObstacle() Obstacle {
	typ := obstacleTypes[s.rng.Intn(len(obstacleTypes))]
	size := s.obstacleSize(typ)

	minY := size.Height/2 + s.obstacles.TopMargin
	maxY := s.world.Height - size.Height/2 - s.obstacles.BottomMargin
	y := (minY + maxY) / 2
	if maxY > minY {
		y = minY + s.rng.Float64()*(maxY-minY)
	}

	return Obstacle{
		ID:   s.newID(),
		Type: typ,
		Box:  core.NewBox(s.world.Width+size.Width/2, y, size.Width, size.Height),
	}
}

func (s *Spawner) spawnCollectible() Collectible {
	size := s.coins.Size
	minY := 2 * size
	maxY := s.world.Height - 2*size
	y := (minY + maxY) / 2
	if maxY > minY {
		y = minY + s.rng.Float64()*(maxY-minY)
	}

	return Collectible{
		ID:    s.newID(),
		Box:   core.NewBox(s.world.Width+size/2, y, size, size),
		Value: s.value,
	}
}

func (s *Spawner) obstacleSize(t ObstacleType) config.ObstacleSize {
	switch t {
	case ObstacleBalloon:
		return s.obstacles.Balloon
	case ObstacleZeppelin:
		return s.obstacles.Zeppelin
	default:
		return s.obstacles.Cloud
	}
}

// newID draws a v4 UUID from the seeded source so IDs replay too.
func (s *Spawner) newID() uuid.UUID {
	return uuid.Must(uuid.NewRandomFromReader(s.rng))
}
