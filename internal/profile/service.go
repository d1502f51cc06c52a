// Package profile persists player progression. Service implements
// eagle.Profile and applies updates on a background goroutine so the
// simulation tick never waits on the database.
package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/soaring-eagle/internal/config"
	"github.com/vovakirdan/soaring-eagle/internal/games/eagle"
	"github.com/vovakirdan/soaring-eagle/internal/storage"
)

var (
	// ErrInsufficientCoins is returned when the balance cannot cover the
	// tournament entry fee.
	ErrInsufficientCoins = errors.New("profile: insufficient coins")

	// ErrClosed is returned by requests made after Close.
	ErrClosed = errors.New("profile: service closed")
)

const queueSize = 256

// Snapshot is the stored profile with derived values.
type Snapshot struct {
	Profile           storage.ProfileRecord
	Achievements      []storage.Achievement
	MaxAvailableLevel int
}

// Cosmetics returns the asset selection stored in the profile.
func (s Snapshot) Cosmetics() eagle.Cosmetics {
	return eagle.Cosmetics{
		SkinID:       s.Profile.SkinID,
		TypeID:       s.Profile.TypeID,
		BackgroundID: s.Profile.BackgroundID,
	}
}

// Unlocked reports whether the achievement id has been earned.
func (s Snapshot) Unlocked(id string) bool {
	for _, a := range s.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}

// MaxAvailableLevel returns the highest level the player may start.
func MaxAvailableLevel(maxCompleted, maxLevel int) int {
	return max(1, min(maxCompleted+1, maxLevel))
}

// Messages handled by the worker.
type (
	message any

	addCoinsMsg struct {
		amount int
	}

	resultMsg struct {
		result eagle.Result
	}

	startTournamentMsg struct {
		reply chan error
	}

	snapshotMsg struct {
		reply chan snapshotReply
	}

	flushMsg struct {
		reply chan struct{}
	}
)

type snapshotReply struct {
	snap Snapshot
	err  error
}

// Service applies profile updates in order on one goroutine.
type Service struct {
	store  *storage.Store
	cfg    config.EagleConfig
	logger *log.Logger

	msgChan   chan message
	done      chan struct{}
	stopped   chan struct{}
	closeOnce sync.Once
}

var _ eagle.Profile = (*Service)(nil)

// NewService starts a service backed by store.
func NewService(store *storage.Store, cfg config.EagleConfig, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Service{
		store:   store,
		cfg:     cfg,
		logger:  logger,
		msgChan: make(chan message, queueSize),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go s.processMessages()
	return s
}

// AddCoins credits the balance.
func (s *Service) AddCoins(amount int) {
	s.send(addCoinsMsg{amount: amount})
}

// OnVictory records a classic level completion.
func (s *Service) OnVictory(r eagle.Result) {
	s.send(resultMsg{result: r})
}

// OnDefeat records a classic defeat.
func (s *Service) OnDefeat(r eagle.Result) {
	s.send(resultMsg{result: r})
}

// OnTournamentResult records a finished tournament.
func (s *Service) OnTournamentResult(r eagle.Result) {
	s.send(resultMsg{result: r})
}

// StartTournament debits the entry fee. It returns ErrInsufficientCoins
// when the balance is too low.
func (s *Service) StartTournament(ctx context.Context) error {
	reply := make(chan error, 1)
	if err := s.request(ctx, startTournamentMsg{reply: reply}); err != nil {
		return err
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the profile after all previously queued updates.
func (s *Service) Snapshot(ctx context.Context) (Snapshot, error) {
	reply := make(chan snapshotReply, 1)
	if err := s.request(ctx, snapshotMsg{reply: reply}); err != nil {
		return Snapshot{}, err
	}
	select {
	case r := <-reply:
		return r.snap, r.err
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

// Close applies pending updates and stops the worker.
func (s *Service) Close() {
	s.closeOnce.Do(func() {
		reply := make(chan struct{})
		s.msgChan <- flushMsg{reply: reply}
		<-reply
		close(s.done)
		<-s.stopped
	})
}

func (s *Service) send(msg message) {
	if s.closed() {
		s.logger.Warn("profile update dropped after close")
		return
	}
	select {
	case s.msgChan <- msg:
	case <-s.done:
		s.logger.Warn("profile update dropped after close")
	default:
		s.logger.Error("profile queue full, update dropped", "msg", fmt.Sprintf("%T", msg))
	}
}

func (s *Service) request(ctx context.Context, msg message) error {
	if s.closed() {
		return ErrClosed
	}
	select {
	case s.msgChan <- msg:
		return nil
	case <-s.done:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Service) closed() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

func (s *Service) processMessages() {
	defer close(s.stopped)
	for {
		select {
		case msg := <-s.msgChan:
			s.handleMessage(msg)
		case <-s.done:
			return
		}
	}
}

func (s *Service) handleMessage(msg message) {
	switch m := msg.(type) {
	case addCoinsMsg:
		if _, err := s.store.AddCoins(m.amount); err != nil {
			s.logger.Error("cannot add coins", "amount", m.amount, "err", err)
		}
	case resultMsg:
		if err := s.applyResult(m.result); err != nil {
			s.logger.Error("cannot record result", "outcome", m.result.Outcome, "err", err)
		}
	case startTournamentMsg:
		m.reply <- s.chargeEntryFee()
	case snapshotMsg:
		snap, err := s.snapshot()
		m.reply <- snapshotReply{snap: snap, err: err}
	case flushMsg:
		close(m.reply)
	}
}

func (s *Service) chargeEntryFee() error {
	fee := s.cfg.Tournament.EntryFee
	if fee <= 0 {
		return nil
	}
	ok, err := s.store.SpendCoins(fee)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInsufficientCoins
	}
	s.logger.Info("tournament entry fee paid", "fee", fee)
	return nil
}

func (s *Service) applyResult(r eagle.Result) error {
	mode := storage.ModeClassic
	if r.Tournament {
		mode = storage.ModeTournament
	}
	if _, err := s.store.SaveResult(storage.ResultRecord{
		Mode:           mode,
		Level:          r.Level,
		Outcome:        r.Outcome.String(),
		Score:          r.Score,
		Duration:       r.Elapsed,
		Perfect:        r.Perfect,
		CoinsCollected: r.CoinsCollected,
		Accelerations:  r.Accelerations,
	}); err != nil {
		return err
	}

	p, err := s.store.LoadProfile()
	if err != nil {
		return err
	}
	p.CoinsCollected += r.Score
	switch r.Outcome {
	case eagle.OutcomeVictory:
		p.LevelsCompleted++
		p.MaxCompletedLevel = max(p.MaxCompletedLevel, r.Level)
		if r.Perfect {
			p.PerfectLevels++
		}
	case eagle.OutcomeTournamentResult:
		p.TournamentsPlayed++
	}
	if err := s.store.SaveProfile(p); err != nil {
		return err
	}

	th := thresholds{
		coinCollector: s.cfg.Profile.CoinCollectorTarget,
		maxLevel:      s.cfg.Difficulty.MaxLevel,
	}
	for _, id := range earned(p, r, th) {
		fresh, err := s.store.UnlockAchievement(id)
		if err != nil {
			return err
		}
		if fresh {
			s.logger.Info("achievement unlocked", "id", id)
		}
	}
	return nil
}

func (s *Service) snapshot() (Snapshot, error) {
	p, err := s.store.LoadProfile()
	if err != nil {
		return Snapshot{}, err
	}
	achievements, err := s.store.Achievements()
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Profile:           p,
		Achievements:      achievements,
		MaxAvailableLevel: MaxAvailableLevel(p.MaxCompletedLevel, s.cfg.Difficulty.MaxLevel),
	}, nil
}
