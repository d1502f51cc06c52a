package eagle

import (
	"github.com/google/uuid"

	"github.com/vovakirdan/soaring-eagle/internal/core"
)

// EntityKind tags what a collision shape belongs to.
type EntityKind int

const (
	KindActor EntityKind = iota
	KindObstacle
	KindCollectible
	KindBoundary // top/bottom screen edges, enforced by clamping input
)

// String returns the kind name.
func (k EntityKind) String() string {
	switch k {
	case KindActor:
		return "actor"
	case KindObstacle:
		return "obstacle"
	case KindCollectible:
		return "collectible"
	case KindBoundary:
		return "boundary"
	default:
		return "unknown"
	}
}

// ObstacleType is one of the fixed obstacle variants.
type ObstacleType int

const (
	ObstacleCloud ObstacleType = iota
	ObstacleBalloon
	ObstacleZeppelin
)

// obstacleTypes lists every type, in spawn-table order.
var obstacleTypes = []ObstacleType{ObstacleCloud, ObstacleBalloon, ObstacleZeppelin}

// String returns the type name, which doubles as its asset name.
func (t ObstacleType) String() string {
	switch t {
	case ObstacleCloud:
		return "cloud"
	case ObstacleBalloon:
		return "balloon"
	case ObstacleZeppelin:
		return "zeppelin"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling towards the eagle. Obstacles survive a hit;
// only the eagle reacts.
type Obstacle struct {
	ID   uuid.UUID
	Type ObstacleType
	Box  core.Box
}

// Collectible is a coin worth Value when picked up.
type Collectible struct {
	ID    uuid.UUID
	Box   core.Box
	Value int
}

// Radius returns the radius of the coin's circular collision shape.
func (c Collectible) Radius() float64 {
	return c.Box.Size.W / 2
}

// Actor is the player-controlled eagle. Only the vertical position moves.
type Actor struct {
	Box          core.Box
	PhysicsScale float64
	Invulnerable bool
}

// CollisionBox returns the hit box, which is smaller than the sprite.
func (a Actor) CollisionBox() core.Box {
	return a.Box.Scaled(a.PhysicsScale)
}

// clampY keeps the sprite fully inside [0, worldH]. This is how the
// boundary kind is enforced: by input clamping, not physics.
func (a Actor) clampY(y, worldH float64) float64 {
	half := a.Box.Size.H / 2
	return core.ClampF(y, half, worldH-half)
}
