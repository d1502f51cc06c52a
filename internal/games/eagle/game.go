package eagle

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/soaring-eagle/internal/core"
)

// Glyphs used when drawing the scene into a character grid.
const (
	EagleBody    = '▓'
	EagleHead    = '►'
	WingUp       = '▀'
	WingDown     = '▄'
	CloudChar    = '░'
	BalloonChar  = '●'
	ZeppelinChar = '▬'
	CoinChar     = '$'
	FarChar      = '▲'
	NearChar     = '▒'
)

// Game adapts a Session to a frame-driven host: it turns discrete input
// actions into session commands and draws the scene scaled to the screen.
type Game struct {
	session *Session
	frame   int
}

// NewGame wraps a session.
func NewGame(s *Session) *Game {
	return &Game{session: s}
}

// Session returns the wrapped session.
func (g *Game) Session() *Session { return g.session }

// Step applies the frame's input and then ticks the session to now.
func (g *Game) Step(in core.InputFrame, now time.Time) {
	s := g.session
	g.frame++

	if in.Has(core.ActionRestart) {
		if s.Phase() == PhaseFinished {
			s.Start(s.Level(), s.Tournament())
		} else {
			s.Reset()
		}
	}
	if in.Has(core.ActionNextLevel) && g.CanAdvance() {
		s.Start(s.Level()+1, false)
	}
	if in.Has(core.ActionPause) {
		if s.Phase() == PhaseIdle {
			s.Start(s.Level(), s.Tournament())
		} else {
			s.TogglePause()
		}
	}
	if in.Has(core.ActionAccelerate) {
		s.ToggleAcceleration()
	}

	step := s.cfg.Player.MoveStep
	if in.Has(core.ActionUp) {
		s.MoveBy(-step)
	}
	if in.Has(core.ActionDown) {
		s.MoveBy(step)
	}

	s.Tick(now)
}

// CanAdvance reports whether a next classic level is available.
func (g *Game) CanAdvance() bool {
	s := g.session
	return s.Outcome() == OutcomeVictory && !s.Tournament() && s.Level() < s.model.MaxLevel()
}

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(world core.Size, dst *core.Screen) viewport {
	return viewport{
		sx: float64(dst.Width()) / world.W,
		sy: float64(dst.Height()) / world.H,
	}
}

func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.Left() * v.sx))
	y0 := int(math.Floor(b.Top() * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(1, x1-x0), max(1, y1-y0))
}

// Render draws the scene into dst.
func (g *Game) Render(dst *core.Screen) {
	s := g.session
	dst.Fill(' ', core.ColorSky)
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := newViewport(s.World(), dst)

	g.drawBackground(dst, vp)
	for _, o := range s.obstacles {
		g.drawObstacle(dst, vp, o)
	}
	for _, c := range s.coins {
		dst.DrawRect(vp.rect(c.Box), CoinChar, core.ColorCoin)
	}
	g.drawEagle(dst, vp)

	switch {
	case s.Phase() == PhaseIdle:
		drawCenteredMessage(dst, "SOARING EAGLE", "Press P to take off")
	case s.Phase() == PhasePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case s.Outcome() == OutcomeVictory:
		sub := fmt.Sprintf("Score: %d  |  R retry", s.Score())
		if g.CanAdvance() {
			sub += "  N next level"
		}
		drawCenteredMessage(dst, fmt.Sprintf("LEVEL %d COMPLETE", s.Level()), sub)
	case s.Outcome() == OutcomeDefeat:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R retry", s.Score()))
	case s.Outcome() == OutcomeTournamentResult:
		drawCenteredMessage(dst, "TOURNAMENT OVER", fmt.Sprintf("Score: %d  |  R play again", s.Score()))
	}
}

func (g *Game) drawBackground(dst *core.Screen, vp viewport) {
	h := dst.Height()
	for i, l := range g.session.background.layers {
		glyph, color, amp := FarChar, core.ColorFarLayer, 0.35
		if i > 0 {
			glyph, color, amp = NearChar, core.ColorNearLayer, 0.18
		}
		for _, seg := range l.Segments {
			x0 := int(math.Floor(seg.X * vp.sx))
			w := int(math.Ceil(seg.Width * vp.sx))
			for dx := 0; dx < w; dx++ {
				x := x0 + dx
				if x < 0 || x >= dst.Width() {
					continue
				}
				phase := float64(dx) / float64(w) * 2 * math.Pi * float64(i+2)
				ridge := core.Clamp(int(float64(h)*amp*(0.5+0.5*math.Sin(phase))), 0, h)
				for y := h - ridge; y < h; y++ {
					dst.SetColored(x, y, glyph, color)
				}
			}
		}
	}
}

func (g *Game) drawObstacle(dst *core.Screen, vp viewport, o Obstacle) {
	r := vp.rect(o.Box)
	switch o.Type {
	case ObstacleCloud:
		dst.DrawRect(r, CloudChar, core.ColorCloud)
	case ObstacleBalloon:
		dst.DrawRect(r, BalloonChar, core.ColorBalloon)
	case ObstacleZeppelin:
		dst.DrawRect(r, ZeppelinChar, core.ColorZeppelin)
	}
}

func (g *Game) drawEagle(dst *core.Screen, vp viewport) {
	s := g.session
	color := core.ColorEagle
	if s.Flickering() {
		color = core.ColorEagleHit
	}

	r := vp.rect(s.actor.Box)
	dst.DrawRect(r, EagleBody, color)

	wing := WingUp
	if g.frame/4%2 == 1 {
		wing = WingDown
	}
	mid := r.X + r.W/2
	dst.SetColored(mid, r.Y, wing, color)
	dst.SetColored(mid-1, r.Y, wing, color)
	dst.SetColored(r.Right()-1, r.Y+r.H/2, EagleHead, color)
}

func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)
	dst.DrawText(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorHUD)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle, core.ColorDefault)
}
