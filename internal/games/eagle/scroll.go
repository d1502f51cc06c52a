package eagle

import "github.com/vovakirdan/soaring-eagle/internal/config"

// Segment is one screen-wide tile of a background layer.
type Segment struct {
	X     float64 // left edge
	Width float64
}

// Layer is a parallax layer made of segments laid side by side.
type Layer struct {
	Name        string
	SpeedFactor float64
	Segments    []Segment
}

// Background scrolls its layers as an endless ring: a segment that leaves
// the left edge is moved behind the current rightmost one.
type Background struct {
	speed  float64
	width  float64
	cfg    []config.LayerConfig
	layers []Layer
}

// NewBackground creates the layers and lays their segments out from x = 0.
func NewBackground(cfg config.BackgroundConfig, width float64) *Background {
	b := &Background{speed: cfg.Speed, width: width, cfg: cfg.Layers}
	b.Reset()
	return b
}

// Reset returns every segment to its starting position.
func (b *Background) Reset() {
	b.layers = make([]Layer, 0, len(b.cfg))
	for _, lc := range b.cfg {
		l := Layer{Name: lc.Name, SpeedFactor: lc.SpeedFactor}
		for i := 0; i < lc.Segments; i++ {
			l.Segments = append(l.Segments, Segment{X: float64(i) * b.width, Width: b.width})
		}
		b.layers = append(b.layers, l)
	}
}

// Advance scrolls every layer for dt seconds at the given speed multiplier.
func (b *Background) Advance(dt, multiplier float64) {
	for i := range b.layers {
		l := &b.layers[i]
		dx := b.speed * l.SpeedFactor * multiplier * dt
		for j := range l.Segments {
			l.Segments[j].X -= dx
		}
		recycle(l.Segments)
	}
}

// Layers returns a copy of the layers.
func (b *Background) Layers() []Layer {
	out := make([]Layer, len(b.layers))
	for i, l := range b.layers {
		out[i] = Layer{
			Name:        l.Name,
			SpeedFactor: l.SpeedFactor,
			Segments:    append([]Segment(nil), l.Segments...),
		}
	}
	return out
}

func recycle(segs []Segment) {
	if len(segs) < 2 {
		return
	}
	for i := range segs {
		if segs[i].X+segs[i].Width > 0 {
			continue
		}
		right := rightmostExcept(segs, i)
		segs[i].X = segs[right].X + segs[right].Width
	}
}

func rightmostExcept(segs []Segment, skip int) int {
	best := -1
	for i := range segs {
		if i == skip {
			continue
		}
		if best < 0 || segs[i].X > segs[best].X {
			best = i
		}
	}
	return best
}

// scrollObstacles moves obstacles left by dx and drops those whose centre
// has passed -width.
func scrollObstacles(obs []Obstacle, dx float64) (kept []Obstacle, culled []Obstacle) {
	kept = obs[:0]
	for _, o := range obs {
		o.Box.Center.X -= dx
		if o.Box.Center.X < -o.Box.Size.W {
			culled = append(culled, o)
			continue
		}
		kept = append(kept, o)
	}
	return kept, culled
}

// scrollCollectibles is scrollObstacles for coins.
func scrollCollectibles(coins []Collectible, dx float64) (kept []Collectible, culled []Collectible) {
	kept = coins[:0]
	for _, c := range coins {
		c.Box.Center.X -= dx
		if c.Box.Center.X < -c.Box.Size.W {
			culled = append(culled, c)
			continue
		}
		kept = append(kept, c)
	}
	return kept, culled
}
