package eagle

import "github.com/vovakirdan/soaring-eagle/internal/config"

// Stamina gates acceleration. It drains while accelerating, refills while
// cruising, and forces acceleration off when it reaches zero.
type Stamina struct {
	cfg          config.StaminaConfig
	value        float64
	accelerating bool
	engagements  int // times acceleration was switched on
}

// NewStamina creates a full stamina pool.
func NewStamina(cfg config.StaminaConfig) *Stamina {
	s := &Stamina{cfg: cfg}
	s.Reset()
	return s
}

// Reset refills the pool and stops accelerating.
func (s *Stamina) Reset() {
	s.value = s.cfg.Max
	s.accelerating = false
	s.engagements = 0
}

// Toggle flips acceleration. With an empty pool acceleration is forced off.
func (s *Stamina) Toggle() {
	if s.value <= 0 {
		s.accelerating = false
		return
	}
	s.accelerating = !s.accelerating
	if s.accelerating {
		s.engagements++
	}
}

// Stop switches acceleration off.
func (s *Stamina) Stop() {
	s.accelerating = false
}

// Update drains or refills the pool for dt seconds.
func (s *Stamina) Update(dt float64) {
	if s.accelerating {
		s.value = max(0, s.value-s.cfg.DepletionRate*dt)
		if s.value == 0 {
			s.accelerating = false
		}
		return
	}
	s.value = min(s.cfg.Max, s.value+s.cfg.RecoveryRate*dt)
}

// Value returns the current stamina.
func (s *Stamina) Value() float64 { return s.value }

// Max returns the pool capacity.
func (s *Stamina) Max() float64 { return s.cfg.Max }

// Fraction returns the fill level in [0, 1].
func (s *Stamina) Fraction() float64 {
	if s.cfg.Max <= 0 {
		return 0
	}
	return s.value / s.cfg.Max
}

// Accelerating reports whether acceleration is on.
func (s *Stamina) Accelerating() bool { return s.accelerating }

// Multiplier returns the current speed multiplier.
func (s *Stamina) Multiplier() float64 {
	if s.accelerating {
		return s.cfg.AccelerationMultiplier
	}
	return 1
}

// Engagements returns how many times acceleration was switched on.
func (s *Stamina) Engagements() int { return s.engagements }
