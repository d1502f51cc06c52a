package eagle

import "time"

// Result summarises a finished session for the player profile.
type Result struct {
	Level          int
	Tournament     bool
	Outcome        Outcome
	Score          int
	Elapsed        time.Duration
	Perfect        bool // finished without touching an obstacle
	CoinsCollected int
	Accelerations  int
}

// Profile receives progression side effects from a session.
// Calls happen on the goroutine driving Tick and must not block.
type Profile interface {
	AddCoins(amount int)
	OnVictory(r Result)
	OnDefeat(r Result)
	OnTournamentResult(r Result)
}

// NopProfile discards all profile updates.
type NopProfile struct{}

func (NopProfile) AddCoins(int)              {}
func (NopProfile) OnVictory(Result)          {}
func (NopProfile) OnDefeat(Result)           {}
func (NopProfile) OnTournamentResult(Result) {}
