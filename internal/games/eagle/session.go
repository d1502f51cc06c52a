// Package eagle implements the Soaring Eagle simulation: a fixed-duration
// side-scrolling flight where the player dodges obstacles and picks up coins.
//
// Session owns all state and is advanced by the host calling Tick with a
// monotonic timestamp. It performs no I/O; progression side effects go
// through the Profile interface.
package eagle

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/core"
)

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
	PhaseFinished
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Outcome is how a finished session ended.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
	OutcomeTournamentResult
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	case OutcomeTournamentResult:
		return "tournament"
	default:
		return "unknown"
	}
}

// Option configures a Session.
type Option func(*Session)

// WithProfile routes progression updates to p.
func WithProfile(p Profile) Option {
	return func(s *Session) {
		if p != nil {
			s.profile = p
		}
	}
}

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSeed seeds obstacle and coin placement.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithCosmetics sets the asset selection.
func WithCosmetics(c Cosmetics) Option {
	return func(s *Session) { s.cosmetics = c }
}

// Session is one run of the game, from Start until it finishes.
type Session struct {
	cfg       config.EagleConfig
	model     config.DifficultyModel
	profile   Profile
	logger    *log.Logger
	cosmetics Cosmetics
	seed      int64

	phase      Phase
	outcome    Outcome
	level      int
	tournament bool
	params     config.Params

	score           int
	timeRemaining   time.Duration
	timerAcc        time.Duration
	simTime         time.Duration
	lastTick        time.Time
	hasCollidedOnce bool
	invulnLeft      time.Duration
	coinsCollected  int

	actor      Actor
	stamina    *Stamina
	obstacles  []Obstacle
	coins      []Collectible
	background *Background
	spawner    *Spawner
	collider   *Collider
}

// NewSession creates an idle session. Call Start to begin playing.
func NewSession(cfg config.EagleConfig, opts ...Option) *Session {
	s := &Session{
		cfg:       cfg,
		model:     cfg.DifficultyModel(),
		profile:   NopProfile{},
		logger:    log.New(io.Discard),
		cosmetics: DefaultCosmetics,
		level:     1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.actor = Actor{
		Box: core.NewBox(
			cfg.World.Width*cfg.Player.XFraction,
			cfg.World.Height*cfg.Player.StartY,
			cfg.Player.Width,
			cfg.Player.Height,
		),
		PhysicsScale: cfg.Player.PhysicsScale,
	}
	s.stamina = NewStamina(cfg.Stamina)
	s.background = NewBackground(cfg.Background, cfg.World.Width)
	s.spawner = NewSpawner(s.seed, cfg)
	s.collider = NewCollider(core.Size{W: cfg.World.Width, H: cfg.World.Height}, s.actor.CollisionBox())
	s.params = s.model.Params(s.level, false)
	s.timeRemaining = cfg.Session.Duration
	return s
}

// Start begins a session at the given level. Tournament mode ignores the
// level for difficulty but keeps it for reporting.
func (s *Session) Start(level int, tournament bool) {
	s.level = s.model.ClampLevel(level)
	s.tournament = tournament
	s.restart()
	s.phase = PhasePlaying
	s.logger.Info("session started", "level", s.level, "tournament", s.tournament)
}

// Reset restores the initial state for the current level and mode and
// leaves the session paused until Resume.
func (s *Session) Reset() {
	s.restart()
	s.phase = PhasePaused
	s.logger.Debug("session reset", "level", s.level, "tournament", s.tournament)
}

func (s *Session) restart() {
	s.params = s.model.Params(s.level, s.tournament)
	s.outcome = OutcomeNone
	s.score = 0
	s.timeRemaining = s.cfg.Session.Duration
	s.timerAcc = 0
	s.simTime = 0
	s.lastTick = time.Time{}
	s.hasCollidedOnce = false
	s.invulnLeft = 0
	s.coinsCollected = 0

	s.actor.Box.Center.Y = s.cfg.World.Height * s.cfg.Player.StartY
	s.actor.Invulnerable = false
	s.stamina.Reset()
	s.obstacles = s.obstacles[:0]
	s.coins = s.coins[:0]
	s.background.Reset()
	s.collider.Clear()
	s.spawner.Configure(s.params, 0)
}

// Pause freezes the session. Ignored unless playing.
func (s *Session) Pause() {
	if s.phase != PhasePlaying {
		return
	}
	s.phase = PhasePaused
}

// Resume continues a paused session. The next Tick only re-anchors the
// clock, so time spent paused is never simulated.
func (s *Session) Resume() {
	if s.phase != PhasePaused {
		return
	}
	s.phase = PhasePlaying
	s.lastTick = time.Time{}
}

// TogglePause pauses a playing session or resumes a paused one.
func (s *Session) TogglePause() {
	switch s.phase {
	case PhasePlaying:
		s.Pause()
	case PhasePaused:
		s.Resume()
	}
}

// ToggleAcceleration flips acceleration, or forces it off when stamina is
// empty. Ignored before start and after finish.
func (s *Session) ToggleAcceleration() {
	if s.phase == PhaseIdle || s.phase == PhaseFinished {
		return
	}
	s.stamina.Toggle()
}

// SetVerticalPosition moves the eagle to y, clamped so the sprite stays on
// screen. Ignored unless playing.
func (s *Session) SetVerticalPosition(y float64) {
	if s.phase != PhasePlaying {
		return
	}
	s.actor.Box.Center.Y = s.actor.clampY(y, s.cfg.World.Height)
}

// MoveBy shifts the eagle vertically by dy.
func (s *Session) MoveBy(dy float64) {
	s.SetVerticalPosition(s.actor.Box.Center.Y + dy)
}

// Tick advances the simulation to now. The first tick after Start or Resume
// has zero delta. Deltas are clamped to the configured maximum.
func (s *Session) Tick(now time.Time) {
	if s.phase != PhasePlaying {
		return
	}

	var dt time.Duration
	if !s.lastTick.IsZero() {
		dt = now.Sub(s.lastTick)
	}
	s.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if limit := s.cfg.Session.MaxFrameDelta; limit > 0 && dt > limit {
		dt = limit
	}

	s.advance(dt)
}

func (s *Session) advance(dt time.Duration) {
	s.simTime += dt
	s.advanceTimer(dt)
	if s.phase != PhasePlaying {
		return
	}
	s.advanceInvulnerability(dt)

	secs := dt.Seconds()
	mult := s.stamina.Multiplier()
	dx := s.speed() * secs

	var culled []Obstacle
	s.obstacles, culled = scrollObstacles(s.obstacles, dx)
	for _, o := range culled {
		s.collider.Remove(o.ID)
	}
	var culledCoins []Collectible
	s.coins, culledCoins = scrollCollectibles(s.coins, dx)
	for _, c := range culledCoins {
		s.collider.Remove(c.ID)
	}
	s.background.Advance(secs, mult)

	if spawn, ok := s.spawner.Update(s.simTime.Seconds()); ok {
		s.obstacles = append(s.obstacles, spawn.Obstacle)
		if spawn.Collectible != nil {
			s.coins = append(s.coins, *spawn.Collectible)
		}
	}

	s.collider.Sync(s.actor.CollisionBox(), s.obstacles, s.coins)
	for _, ev := range s.collider.Detect() {
		s.handle(ev)
		if s.phase != PhasePlaying {
			return
		}
	}
}

// advanceTimer runs the fixed-interval session clock. Stamina is updated on
// each timer step, matching the clock's resolution.
func (s *Session) advanceTimer(dt time.Duration) {
	step := s.cfg.Session.TimerInterval
	if step <= 0 {
		return
	}
	s.timerAcc += dt
	for s.timerAcc >= step {
		s.timerAcc -= step
		s.timeRemaining -= step
		s.stamina.Update(step.Seconds())
		if s.timeRemaining <= 0 {
			s.timeRemaining = 0
			s.handle(Event{Kind: EventTimeExpired})
			return
		}
	}
}

func (s *Session) advanceInvulnerability(dt time.Duration) {
	if !s.actor.Invulnerable {
		return
	}
	s.invulnLeft -= dt
	if s.invulnLeft <= 0 {
		s.invulnLeft = 0
		s.actor.Invulnerable = false
	}
}

// speed is the current scroll speed: the level's minimum, multiplied while
// accelerating.
func (s *Session) speed() float64 {
	return s.params.MinSpeed * s.stamina.Multiplier()
}

func (s *Session) handle(ev Event) {
	switch ev.Kind {
	case EventCollected:
		s.removeCoin(ev.EntityID)
		s.score += ev.Value
		s.coinsCollected++
		s.profile.AddCoins(ev.Value)
	case EventHitObstacle:
		if s.actor.Invulnerable {
			return
		}
		if !s.hasCollidedOnce {
			s.hasCollidedOnce = true
			s.actor.Invulnerable = true
			s.invulnLeft = s.cfg.Session.Invulnerability
			s.logger.Debug("obstacle hit absorbed", "id", ev.EntityID)
			return
		}
		s.finish(false)
	case EventTimeExpired:
		s.finish(true)
	}
}

func (s *Session) removeCoin(id uuid.UUID) {
	for i, c := range s.coins {
		if c.ID == id {
			s.coins = append(s.coins[:i], s.coins[i+1:]...)
			break
		}
	}
	s.collider.Remove(id)
}

func (s *Session) finish(won bool) {
	if s.outcome != OutcomeNone {
		return
	}
	s.phase = PhaseFinished
	s.stamina.Stop()

	switch {
	case s.tournament:
		s.outcome = OutcomeTournamentResult
		s.profile.OnTournamentResult(s.Result())
	case won:
		s.outcome = OutcomeVictory
		if reward := s.cfg.Difficulty.LevelCompletionReward; reward > 0 {
			s.profile.AddCoins(reward)
		}
		s.profile.OnVictory(s.Result())
	default:
		s.outcome = OutcomeDefeat
		s.profile.OnDefeat(s.Result())
	}

	s.logger.Info("session finished",
		"outcome", s.outcome,
		"level", s.level,
		"score", s.score,
		"elapsed", s.simTime)
}

// Result summarises the session so far.
func (s *Session) Result() Result {
	return Result{
		Level:          s.level,
		Tournament:     s.tournament,
		Outcome:        s.outcome,
		Score:          s.score,
		Elapsed:        s.simTime,
		Perfect:        !s.hasCollidedOnce,
		CoinsCollected: s.coinsCollected,
		Accelerations:  s.stamina.Engagements(),
	}
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Outcome returns how the session ended, or OutcomeNone.
func (s *Session) Outcome() Outcome { return s.outcome }

// IsPaused reports whether the simulation is not advancing.
func (s *Session) IsPaused() bool { return s.phase != PhasePlaying }

// Level returns the level being played.
func (s *Session) Level() int { return s.level }

// Tournament reports whether this is a tournament session.
func (s *Session) Tournament() bool { return s.tournament }

// Params returns the difficulty parameters in effect.
func (s *Session) Params() config.Params { return s.params }

// Score returns the coin value collected this session.
func (s *Session) Score() int { return s.score }

// TimeRemaining returns the session clock.
func (s *Session) TimeRemaining() time.Duration { return s.timeRemaining }

// Stamina returns the current stamina value.
func (s *Session) Stamina() float64 { return s.stamina.Value() }

// StaminaFraction returns stamina as a fraction of the maximum.
func (s *Session) StaminaFraction() float64 { return s.stamina.Fraction() }

// Accelerating reports whether acceleration is on.
func (s *Session) Accelerating() bool { return s.stamina.Accelerating() }

// Speed returns the current scroll speed in world units per second.
func (s *Session) Speed() float64 { return s.speed() }

// HasCollidedOnce reports whether the single tolerated hit was used.
func (s *Session) HasCollidedOnce() bool { return s.hasCollidedOnce }

// IsInvulnerable reports whether obstacle contacts are currently ignored.
func (s *Session) IsInvulnerable() bool { return s.actor.Invulnerable }

// Flickering reports whether the eagle is in the dim half of its
// invulnerability blink.
func (s *Session) Flickering() bool {
	period := s.cfg.Session.FlickerPeriod
	if !s.actor.Invulnerable || period <= 0 {
		return false
	}
	elapsed := s.cfg.Session.Invulnerability - s.invulnLeft
	return (elapsed/period)%2 == 0
}

// Actor returns the eagle.
func (s *Session) Actor() Actor { return s.actor }

// Obstacles returns a copy of the live obstacles.
func (s *Session) Obstacles() []Obstacle {
	return append([]Obstacle(nil), s.obstacles...)
}

// Collectibles returns a copy of the live coins.
func (s *Session) Collectibles() []Collectible {
	return append([]Collectible(nil), s.coins...)
}

// Background returns a copy of the parallax layers.
func (s *Session) Background() []Layer { return s.background.Layers() }

// Cosmetics returns the asset selection.
func (s *Session) Cosmetics() Cosmetics { return s.cosmetics }

// World returns the scene size in world units.
func (s *Session) World() core.Size {
	return core.Size{W: s.cfg.World.Width, H: s.cfg.World.Height}
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.EagleConfig { return s.cfg }
