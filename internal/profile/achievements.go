package profile

import (
	"github.com/vovakirdan/soaring-eagle/internal/games/eagle"
	"github.com/vovakirdan/soaring-eagle/internal/storage"
)

// Achievement identifiers.
const (
	AchievementFirstFlight      = "first_flight"
	AchievementCoinCollector    = "coin_collector"
	AchievementPerfectFlight    = "perfect_flight"
	AchievementMasterEagle      = "master_eagle"
	AchievementTournamentRookie = "tournament_rookie"
)

// AchievementInfo describes an achievement for display.
type AchievementInfo struct {
	ID          string
	Title       string
	Description string
}

// Catalog lists every achievement in display order.
var Catalog = []AchievementInfo{
	{AchievementFirstFlight, "First Flight", "Complete any level"},
	{AchievementCoinCollector, "Coin Collector", "Collect enough coins in flight"},
	{AchievementPerfectFlight, "Perfect Flight", "Complete a level without a scratch"},
	{AchievementMasterEagle, "Master Eagle", "Complete the final level"},
	{AchievementTournamentRookie, "Tournament Rookie", "Finish a tournament"},
}

// thresholds used when evaluating achievements.
type thresholds struct {
	coinCollector int
	maxLevel      int
}

// earned returns the achievements satisfied by the updated profile and the
// result that produced it.
func earned(p storage.ProfileRecord, r eagle.Result, th thresholds) []string {
	var ids []string
	if p.LevelsCompleted > 0 {
		ids = append(ids, AchievementFirstFlight)
	}
	if th.coinCollector > 0 && p.CoinsCollected >= th.coinCollector {
		ids = append(ids, AchievementCoinCollector)
	}
	if r.Outcome == eagle.OutcomeVictory && r.Perfect {
		ids = append(ids, AchievementPerfectFlight)
	}
	if th.maxLevel > 0 && p.MaxCompletedLevel >= th.maxLevel {
		ids = append(ids, AchievementMasterEagle)
	}
	if p.TournamentsPlayed > 0 {
		ids = append(ids, AchievementTournamentRookie)
	}
	return ids
}
