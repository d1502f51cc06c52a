package eagle

import (
	"math"

	"github.com/google/uuid"
	"github.com/solarlune/resolv"

	"github.com/vovakirdan/soaring-eagle/internal/core"
)

const collisionCell = 16

var (
	tagObstacle    = resolv.NewTag("obstacle")
	tagCollectible = resolv.NewTag("collectible")
)

// body links a resolv shape back to the entity it stands for. box is the
// entity's exact extent; coins use the inscribed circle.
type body struct {
	kind  EntityKind
	id    uuid.UUID
	value int
	box   core.Box
	shape resolv.IShape
}

// overlaps reports whether the entity shares area with the actor box.
func (b *body) overlaps(actor core.Box) bool {
	if b.kind != KindCollectible {
		return actor.Overlaps(b.box)
	}
	return circleOverlapsBox(b.box.Center, Collectible{Box: b.box}.Radius(), actor)
}

// circleOverlapsBox tests the closest point of box to the circle centre.
func circleOverlapsBox(c core.Vec, r float64, box core.Box) bool {
	dx := c.X - core.ClampF(c.X, box.Left(), box.Right())
	dy := c.Y - core.ClampF(c.Y, box.Top(), box.Bottom())
	return dx*dx+dy*dy < r*r
}

// contactRule turns a touching pair into an event. begin is true on the
// first tick of a contact.
type contactRule func(b *body, begin bool) (Event, bool)

// contactRules is keyed by the kind of the shape the actor touched.
// Only actor pairs are ever tested.
var contactRules = map[EntityKind]contactRule{
	KindObstacle: func(b *body, begin bool) (Event, bool) {
		if !begin {
			return Event{}, false
		}
		return Event{Kind: EventHitObstacle, EntityID: b.id}, true
	},
	KindCollectible: func(b *body, _ bool) (Event, bool) {
		return Event{Kind: EventCollected, Value: b.value, EntityID: b.id}, true
	},
}

var queryTags = []resolv.Tags{tagObstacle, tagCollectible}

// Collider mirrors scene entities into a resolv space and reports
// actor contacts. The space narrows candidates to shapes sharing a cell with
// the actor; each candidate is then tested for real overlap, so containment
// counts as contact.
type Collider struct {
	space    *resolv.Space
	actor    resolv.IShape
	actorBox core.Box
	bodies   map[uuid.UUID]*body
	byShape  map[resolv.IShape]*body
	order    []*body
	touching map[uuid.UUID]bool
}

// NewCollider creates a space covering the world and an actor shape of the
// given collision box.
func NewCollider(world core.Size, actor core.Box) *Collider {
	w := int(math.Ceil(world.W))
	h := int(math.Ceil(world.H))

	c := &Collider{
		space:    resolv.NewSpace(w, h, collisionCell, collisionCell),
		actor:    resolv.NewRectangle(actor.Center.X, actor.Center.Y, actor.Size.W, actor.Size.H),
		actorBox: actor,
	}
	c.space.Add(c.actor)
	c.Clear()
	return c
}

// Clear forgets every entity except the actor.
func (c *Collider) Clear() {
	for _, b := range c.bodies {
		c.space.Remove(b.shape)
	}
	c.bodies = make(map[uuid.UUID]*body)
	c.byShape = make(map[resolv.IShape]*body)
	c.touching = make(map[uuid.UUID]bool)
	c.order = c.order[:0]
}

// Sync moves shapes to match the scene, creating shapes for new entities
// and removing shapes whose entity is gone.
func (c *Collider) Sync(actor core.Box, obstacles []Obstacle, coins []Collectible) {
	c.actorBox = actor
	c.actor.SetPosition(actor.Center.X, actor.Center.Y)

	seen := make(map[uuid.UUID]bool, len(obstacles)+len(coins))
	c.order = c.order[:0]

	for _, o := range obstacles {
		seen[o.ID] = true
		b, ok := c.bodies[o.ID]
		if !ok {
			sh := resolv.NewRectangle(o.Box.Center.X, o.Box.Center.Y, o.Box.Size.W, o.Box.Size.H)
			sh.Tags().Set(tagObstacle)
			b = c.add(&body{kind: KindObstacle, id: o.ID, shape: sh})
		}
		b.box = o.Box
		b.shape.SetPosition(o.Box.Center.X, o.Box.Center.Y)
		c.order = append(c.order, b)
	}

	for _, coin := range coins {
		seen[coin.ID] = true
		b, ok := c.bodies[coin.ID]
		if !ok {
			sh := resolv.NewCircle(coin.Box.Center.X, coin.Box.Center.Y, coin.Radius())
			sh.Tags().Set(tagCollectible)
			b = c.add(&body{kind: KindCollectible, id: coin.ID, value: coin.Value, shape: sh})
		}
		b.box = coin.Box
		b.shape.SetPosition(coin.Box.Center.X, coin.Box.Center.Y)
		c.order = append(c.order, b)
	}

	for id := range c.bodies {
		if !seen[id] {
			c.Remove(id)
		}
	}
}

func (c *Collider) add(b *body) *body {
	c.space.Add(b.shape)
	c.bodies[b.id] = b
	c.byShape[b.shape] = b
	return b
}

// Remove drops the shape of one entity.
func (c *Collider) Remove(id uuid.UUID) {
	b, ok := c.bodies[id]
	if !ok {
		return
	}
	c.space.Remove(b.shape)
	delete(c.bodies, id)
	delete(c.byShape, b.shape)
	delete(c.touching, id)
}

// Detect reports events for the actor's current contacts, in the order
// entities were passed to Sync. Obstacles report only when contact begins;
// collectibles report while touching until removed.
func (c *Collider) Detect() []Event {
	hits := make(map[*body]bool)
	for _, tag := range queryTags {
		c.actor.SelectTouchingCells(0).FilterShapes().ByTags(tag).ForEach(func(sh resolv.IShape) bool {
			if b, ok := c.byShape[sh]; ok && b.overlaps(c.actorBox) {
				hits[b] = true
			}
			return true
		})
	}

	var events []Event
	for _, b := range c.order {
		if _, live := c.bodies[b.id]; !live {
			continue
		}
		touching := hits[b]
		begin := touching && !c.touching[b.id]
		c.touching[b.id] = touching
		if !touching {
			continue
		}
		if ev, ok := contactRules[b.kind](b, begin); ok {
			events = append(events, ev)
		}
	}
	return events
}

// Len returns the number of tracked entities, excluding the actor.
func (c *Collider) Len() int {
	return len(c.bodies)
}
