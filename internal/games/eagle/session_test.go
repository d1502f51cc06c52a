package eagle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/core"
)

const frame = 100 * time.Millisecond

func TestSessionStart(t *testing.T) {
	cfg := config.DefaultEagleConfig()
	s := NewSession(cfg)
	assert.Equal(t, PhaseIdle, s.Phase())
	assert.True(t, s.IsPaused())

	s.Start(4, false)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, 4, s.Level())
	assert.Equal(t, cfg.DifficultyModel().Params(4, false), s.Params())
	assert.Equal(t, 30*time.Second, s.TimeRemaining())
	assert.Equal(t, 100.0, s.Stamina())
	assert.Zero(t, s.Score())
	assert.False(t, s.HasCollidedOnce())
	assert.Empty(t, s.Obstacles())
	assert.Empty(t, s.Collectibles())
}

func TestSessionStartClampsLevel(t *testing.T) {
	s := NewSession(config.DefaultEagleConfig())
	s.Start(0, false)
	assert.Equal(t, 1, s.Level())
	s.Start(99, false)
	assert.Equal(t, 10, s.Level())
}

func TestSessionFirstTickHasZeroDelta(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)

	c.tick(s, time.Hour)
	assert.Equal(t, 30*time.Second, s.TimeRemaining())

	c.tick(s, frame)
	assert.Equal(t, 29900*time.Millisecond, s.TimeRemaining())
}

func TestSessionClampsLargeDelta(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)

	c.tick(s, 10*time.Second)
	assert.Equal(t, 29800*time.Millisecond, s.TimeRemaining())
}

func TestSessionVictoryWhenTimeRunsOut(t *testing.T) {
	p := &recordingProfile{}
	s := NewSession(quietConfig(), WithProfile(p))
	c := newClock()
	s.Start(2, false)
	c.tick(s, 0)

	c.run(s, 29900*time.Millisecond, frame)
	require.Equal(t, PhasePlaying, s.Phase())
	assert.Equal(t, frame, s.TimeRemaining())

	c.tick(s, frame)
	assert.Equal(t, PhaseFinished, s.Phase())
	assert.Equal(t, OutcomeVictory, s.Outcome())
	assert.Zero(t, s.TimeRemaining())
	assert.Equal(t, []int{50}, p.coins)
	require.Len(t, p.victories, 1)
	assert.Equal(t, 2, p.victories[0].Level)
	assert.True(t, p.victories[0].Perfect)
	assert.Equal(t, 30*time.Second, p.victories[0].Elapsed)

	c.run(s, time.Second, frame)
	assert.Len(t, p.victories, 1)
	assert.Empty(t, p.defeats)
}

func TestSessionSingleHitTolerance(t *testing.T) {
	p := &recordingProfile{}
	s := NewSession(quietConfig(), WithProfile(p))
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)

	obstacleOnActor(s)
	c.tick(s, frame)
	require.Equal(t, PhasePlaying, s.Phase())
	assert.True(t, s.HasCollidedOnce())
	assert.True(t, s.IsInvulnerable())

	obstacleOnActor(s)
	c.tick(s, frame)
	assert.Equal(t, PhasePlaying, s.Phase(), "hits are ignored while invulnerable")

	s.obstacles = nil
	c.run(s, 2100*time.Millisecond, frame)
	require.False(t, s.IsInvulnerable())
	require.Equal(t, PhasePlaying, s.Phase())

	obstacleOnActor(s)
	c.tick(s, frame)
	assert.Equal(t, PhaseFinished, s.Phase())
	assert.Equal(t, OutcomeDefeat, s.Outcome())
	require.Len(t, p.defeats, 1)
	assert.False(t, p.defeats[0].Perfect)
	assert.Empty(t, p.victories)
}

func TestSessionContinuedContactIsOneHit(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)

	obstacleOnActor(s)
	c.tick(s, frame)
	require.True(t, s.HasCollidedOnce())

	c.run(s, 2500*time.Millisecond, 50*time.Millisecond)
	assert.Equal(t, PhasePlaying, s.Phase(), "a long contact must not count twice")
}

func TestSessionFlickerWhileInvulnerable(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)
	assert.False(t, s.Flickering())

	obstacleOnActor(s)
	c.tick(s, frame)
	assert.True(t, s.Flickering())
	c.tick(s, frame)
	assert.True(t, s.Flickering())
	c.tick(s, frame)
	assert.False(t, s.Flickering())
}

func TestSessionMoveIntoObstacleHitsOnce(t *testing.T) {
	p := &recordingProfile{}
	s := NewSession(quietConfig(), WithProfile(p))
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)

	x := s.Actor().Box.Center.X
	s.obstacles = append(s.obstacles, Obstacle{
		ID:   uuid.New(),
		Type: ObstacleZeppelin,
		Box:  core.NewBox(x, 100, 150, 80),
	})
	c.tick(s, frame)
	require.False(t, s.HasCollidedOnce())

	s.SetVerticalPosition(100)
	c.tick(s, frame)
	require.True(t, s.HasCollidedOnce(), "moving inside an obstacle is a hit")
	require.True(t, s.IsInvulnerable())

	c.run(s, 300*time.Millisecond, frame)
	assert.Equal(t, PhasePlaying, s.Phase())
	assert.Empty(t, p.defeats)
}

func TestSessionCollectContainedCoin(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)

	coinOnActor(s, 5)
	c.tick(s, 0)
	assert.Equal(t, 5, s.Score(), "a coin inside the hit box is collected without moving")
}

func TestSessionCollectCoin(t *testing.T) {
	p := &recordingProfile{}
	s := NewSession(quietConfig(), WithProfile(p))
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)

	coinOnActor(s, 5)
	c.tick(s, frame)
	assert.Equal(t, 5, s.Score())
	assert.Empty(t, s.Collectibles())
	assert.Equal(t, []int{5}, p.coins)
	assert.Equal(t, 1, s.Result().CoinsCollected)

	c.tick(s, frame)
	assert.Equal(t, 5, s.Score(), "a coin is collected once")
}

func TestSessionTournamentResult(t *testing.T) {
	p := &recordingProfile{}
	cfg := quietConfig()
	s := NewSession(cfg, WithProfile(p))
	c := newClock()
	s.Start(7, true)
	assert.Equal(t, cfg.DifficultyModel().Params(1, true), s.Params())
	c.tick(s, 0)

	coinOnActor(s, s.Params().CollectibleValue)
	c.run(s, 30*time.Second, frame)

	assert.Equal(t, OutcomeTournamentResult, s.Outcome())
	require.Len(t, p.tournaments, 1)
	assert.Equal(t, 10, p.tournaments[0].Score)
	assert.Equal(t, []int{10}, p.coins, "no level reward in tournaments")
	assert.Empty(t, p.victories)
}

func TestSessionTournamentDefeatReportsResult(t *testing.T) {
	p := &recordingProfile{}
	s := NewSession(quietConfig(), WithProfile(p))
	c := newClock()
	s.Start(1, true)
	c.tick(s, 0)

	obstacleOnActor(s)
	c.tick(s, frame)
	s.obstacles = nil
	c.run(s, 2100*time.Millisecond, frame)
	obstacleOnActor(s)
	c.tick(s, frame)

	assert.Equal(t, OutcomeTournamentResult, s.Outcome())
	assert.Len(t, p.tournaments, 1)
	assert.Empty(t, p.defeats)
}

func TestSessionPauseFreezesClock(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)
	c.tick(s, frame)

	s.Pause()
	before := s.TimeRemaining()
	c.run(s, 5*time.Second, frame)
	assert.Equal(t, before, s.TimeRemaining())
	assert.True(t, s.IsPaused())

	s.Resume()
	c.tick(s, 5*time.Second)
	assert.Equal(t, before, s.TimeRemaining(), "resume re-anchors the clock")
	c.tick(s, frame)
	assert.Equal(t, before-frame, s.TimeRemaining())
}

func TestSessionResetLeavesPaused(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(3, false)
	c.tick(s, 0)
	coinOnActor(s, 5)
	obstacleOnActor(s)
	s.ToggleAcceleration()
	c.run(s, time.Second, frame)

	s.Reset()
	assert.Equal(t, PhasePaused, s.Phase())
	assert.Equal(t, 3, s.Level())
	assert.Zero(t, s.Score())
	assert.Equal(t, 30*time.Second, s.TimeRemaining())
	assert.Equal(t, 100.0, s.Stamina())
	assert.False(t, s.Accelerating())
	assert.False(t, s.HasCollidedOnce())
	assert.False(t, s.IsInvulnerable())
	assert.Empty(t, s.Obstacles())
	assert.Empty(t, s.Collectibles())

	c.run(s, time.Second, frame)
	assert.Equal(t, 30*time.Second, s.TimeRemaining())
}

func TestSessionAccelerationDrainsStamina(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)

	s.ToggleAcceleration()
	require.True(t, s.Accelerating())
	assert.InDelta(t, 225.0, s.Speed(), 1e-9)

	c.run(s, time.Second, frame)
	assert.InDelta(t, 80.0, s.Stamina(), 1e-9)

	s.ToggleAcceleration()
	assert.InDelta(t, 150.0, s.Speed(), 1e-9)
	c.run(s, time.Second, frame)
	assert.InDelta(t, 90.0, s.Stamina(), 1e-9)
}

func TestSessionAccelerationStopsWhenExhausted(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)

	s.ToggleAcceleration()
	c.run(s, 5*time.Second, frame)
	assert.Zero(t, s.Stamina())
	assert.False(t, s.Accelerating())

	s.stamina.value = 0
	s.ToggleAcceleration()
	assert.False(t, s.Accelerating(), "empty stamina forces acceleration off")
}

func TestSessionBoostedSpeedIgnoresMaxSpeed(t *testing.T) {
	cfg := quietConfig()
	cfg.Difficulty.BaseMaxSpeed = 200
	s := NewSession(cfg)
	s.Start(1, false)

	s.ToggleAcceleration()
	assert.InDelta(t, 225.0, s.Speed(), 1e-9, "boost multiplies the base speed without a cap")
}

func TestSessionVerticalPositionClamped(t *testing.T) {
	s := NewSession(quietConfig())
	s.Start(1, false)

	s.SetVerticalPosition(-500)
	assert.InDelta(t, 35.0, s.Actor().Box.Center.Y, 1e-9)
	s.SetVerticalPosition(5000)
	assert.InDelta(t, 365.0, s.Actor().Box.Center.Y, 1e-9)
	s.SetVerticalPosition(120)
	assert.InDelta(t, 120.0, s.Actor().Box.Center.Y, 1e-9)
}

func TestSessionObstaclesOnlyMoveLeft(t *testing.T) {
	s := NewSession(config.DefaultEagleConfig(), WithSeed(7))
	c := newClock()
	s.Start(5, false)
	c.tick(s, 0)
	s.SetVerticalPosition(35)

	last := make(map[string]float64)
	for i := 0; i < 100 && s.Phase() == PhasePlaying; i++ {
		c.tick(s, frame)
		for _, o := range s.Obstacles() {
			x := o.Box.Center.X
			if prev, ok := last[o.ID.String()]; ok {
				assert.Less(t, x, prev)
			}
			assert.GreaterOrEqual(t, x, -o.Box.Size.W)
			last[o.ID.String()] = x
		}
	}
	assert.NotEmpty(t, last, "obstacles should have spawned")
}

func TestSessionDeterministic(t *testing.T) {
	play := func() *Session {
		s := NewSession(config.DefaultEagleConfig(), WithSeed(12345))
		c := newClock()
		s.Start(3, false)
		c.tick(s, 0)
		for i := 0; i < 120 && s.Phase() == PhasePlaying; i++ {
			if i%25 == 0 {
				s.ToggleAcceleration()
			}
			if i%10 == 0 {
				s.MoveBy(float64(i%3-1) * 40)
			}
			c.tick(s, 50*time.Millisecond)
		}
		return s
	}

	a, b := play(), play()
	assert.Equal(t, a.Obstacles(), b.Obstacles())
	assert.Equal(t, a.Collectibles(), b.Collectibles())
	assert.Equal(t, a.Score(), b.Score())
	assert.Equal(t, a.Phase(), b.Phase())
	assert.Equal(t, a.TimeRemaining(), b.TimeRemaining())
	assert.Equal(t, a.Stamina(), b.Stamina())
}

func TestSessionCommandsIgnoredWhenFinished(t *testing.T) {
	s := NewSession(quietConfig())
	c := newClock()
	s.Start(1, false)
	c.tick(s, 0)
	c.run(s, 30*time.Second, frame)
	require.Equal(t, PhaseFinished, s.Phase())

	y := s.Actor().Box.Center.Y
	s.Pause()
	s.Resume()
	s.ToggleAcceleration()
	s.MoveBy(40)
	assert.Equal(t, PhaseFinished, s.Phase())
	assert.False(t, s.Accelerating())
	assert.Equal(t, y, s.Actor().Box.Center.Y)
}

func TestSessionSnapshotIsCopy(t *testing.T) {
	s := NewSession(quietConfig())
	s.Start(2, false)
	obstacleOnActor(s)

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.Level)
	assert.Equal(t, PhasePlaying, snap.Phase)
	assert.Equal(t, 100.0, snap.StaminaMax)
	require.Len(t, snap.Obstacles, 1)

	snap.Obstacles[0].Box.Center.X = -1
	assert.NotEqual(t, -1.0, s.Obstacles()[0].Box.Center.X)
}

func TestSessionAssetNames(t *testing.T) {
	s := NewSession(quietConfig(), WithCosmetics(Cosmetics{SkinID: "golden", TypeID: 2, BackgroundID: "night"}))
	names := s.AssetNames()
	assert.Equal(t, []string{"golden21", "golden22"}, names.EagleFrames)
	assert.Equal(t, "nightBg", names.Background)
	assert.Equal(t, "zeppelin", names.Obstacles[ObstacleZeppelin])
}
