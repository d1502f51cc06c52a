package eagle

import "github.com/google/uuid"

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventCollected   EventKind = iota // a coin was picked up
	EventHitObstacle                  // contact with an obstacle began
	EventTimeExpired                  // the session clock ran out
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventCollected:
		return "collected"
	case EventHitObstacle:
		return "hit-obstacle"
	case EventTimeExpired:
		return "time-expired"
	default:
		return "unknown"
	}
}

// Event is reported by the collision system or the session clock and
// consumed synchronously by the session.
type Event struct {
	Kind     EventKind
	Value    int       // reward for EventCollected
	EntityID uuid.UUID // coin or obstacle involved, if any
}
