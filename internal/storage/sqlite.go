// Package storage provides SQLite-based persistence for the player profile,
// session results and achievements.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Modes recorded with each result.
const (
	ModeClassic    = "classic"
	ModeTournament = "tournament"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ProfileRecord is the single player profile row.
type ProfileRecord struct {
	Coins             int
	MaxCompletedLevel int
	LevelsCompleted   int
	CoinsCollected    int
	PerfectLevels     int
	TournamentsPlayed int
	SkinID            string
	TypeID            int
	BackgroundID      string
	UpdatedAt         time.Time
}

// ResultRecord is one finished session.
type ResultRecord struct {
	ID             int64
	Mode           string
	Level          int
	Outcome        string
	Score          int
	Duration       time.Duration
	Perfect        bool
	CoinsCollected int
	Accelerations  int
	CreatedAt      time.Time
}

// Achievement is an unlocked achievement.
type Achievement struct {
	ID         string
	UnlockedAt time.Time
}

// ModeStats contains aggregated statistics for one mode.
type ModeStats struct {
	Mode       string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			coins INTEGER NOT NULL DEFAULT 0,
			max_completed_level INTEGER NOT NULL DEFAULT 0,
			levels_completed INTEGER NOT NULL DEFAULT 0,
			coins_collected INTEGER NOT NULL DEFAULT 0,
			perfect_levels INTEGER NOT NULL DEFAULT 0,
			tournaments_played INTEGER NOT NULL DEFAULT 0,
			skin_id TEXT NOT NULL DEFAULT 'default',
			type_id INTEGER NOT NULL DEFAULT 1,
			background_id TEXT NOT NULL DEFAULT 'default',
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT OR IGNORE INTO profile (id) VALUES (1);

		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			level INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			perfect INTEGER NOT NULL DEFAULT 0,
			coins_collected INTEGER NOT NULL DEFAULT 0,
			accelerations INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_mode ON results(mode);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(mode, score DESC);

		CREATE TABLE IF NOT EXISTS achievements (
			id TEXT PRIMARY KEY,
			unlocked_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadProfile returns the player profile.
func (s *Store) LoadProfile() (ProfileRecord, error) {
	var p ProfileRecord
	var updatedAt any
	err := s.db.QueryRow(
		`SELECT coins, max_completed_level, levels_completed, coins_collected,
		        perfect_levels, tournaments_played, skin_id, type_id, background_id, updated_at
		 FROM profile WHERE id = 1`,
	).Scan(
		&p.Coins,
		&p.MaxCompletedLevel,
		&p.LevelsCompleted,
		&p.CoinsCollected,
		&p.PerfectLevels,
		&p.TournamentsPlayed,
		&p.SkinID,
		&p.TypeID,
		&p.BackgroundID,
		&updatedAt,
	)
	if err != nil {
		return ProfileRecord{}, fmt.Errorf("storage: cannot load profile: %w", err)
	}
	p.UpdatedAt = parseTime(updatedAt)
	return p, nil
}

// SaveProfile overwrites the player profile.
func (s *Store) SaveProfile(p ProfileRecord) error {
	_, err := s.db.Exec(
		`UPDATE profile SET
		   coins = ?, max_completed_level = ?, levels_completed = ?, coins_collected = ?,
		   perfect_levels = ?, tournaments_played = ?, skin_id = ?, type_id = ?,
		   background_id = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = 1`,
		p.Coins,
		p.MaxCompletedLevel,
		p.LevelsCompleted,
		p.CoinsCollected,
		p.PerfectLevels,
		p.TournamentsPlayed,
		p.SkinID,
		p.TypeID,
		p.BackgroundID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// AddCoins adjusts the coin balance by delta and returns the new balance.
// The balance never drops below zero.
func (s *Store) AddCoins(delta int) (int, error) {
	_, err := s.db.Exec(
		`UPDATE profile SET coins = MAX(0, coins + ?), updated_at = CURRENT_TIMESTAMP WHERE id = 1`,
		delta,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot add coins: %w", err)
	}

	var coins int
	if err := s.db.QueryRow("SELECT coins FROM profile WHERE id = 1").Scan(&coins); err != nil {
		return 0, fmt.Errorf("storage: cannot read coins: %w", err)
	}
	return coins, nil
}

// SpendCoins debits amount if the balance covers it.
// It reports whether the debit happened.
func (s *Store) SpendCoins(amount int) (bool, error) {
	res, err := s.db.Exec(
		`UPDATE profile SET coins = coins - ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = 1 AND coins >= ?`,
		amount, amount,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot spend coins: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n == 1, nil
}

// SaveResult records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r ResultRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results
		 (mode, level, outcome, score, duration_ms, perfect, coins_collected, accelerations)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.Mode,
		r.Level,
		r.Outcome,
		r.Score,
		r.Duration.Milliseconds(),
		r.Perfect,
		r.CoinsCollected,
		r.Accelerations,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const resultColumns = `id, mode, level, outcome, score, duration_ms, perfect, coins_collected, accelerations, created_at`

// TopScores retrieves the top N results for the given mode.
// Results are ordered by score descending.
func (s *Store) TopScores(mode string, limit int) ([]ResultRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 WHERE mode = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		mode, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanResults(rows)
}

// RecentResults retrieves the most recent results of any mode.
func (s *Store) RecentResults(limit int) ([]ResultRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+resultColumns+`
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	return scanResults(rows)
}

func scanResults(rows *sql.Rows) ([]ResultRecord, error) {
	defer rows.Close()

	var results []ResultRecord
	for rows.Next() {
		var r ResultRecord
		var durationMs int64
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.Mode,
			&r.Level,
			&r.Outcome,
			&r.Score,
			&durationMs,
			&r.Perfect,
			&r.CoinsCollected,
			&r.Accelerations,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// HighScore returns the highest score for the given mode.
// Returns 0 if no results exist.
func (s *Store) HighScore(mode string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE mode = ?",
		mode,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearResults deletes all results for the given mode.
func (s *Store) ClearResults(mode string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE mode = ?", mode)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// ModeStatsFor retrieves aggregated statistics for a mode.
func (s *Store) ModeStatsFor(mode string) (*ModeStats, error) {
	stats := &ModeStats{Mode: mode}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM results WHERE mode = ?`,
		mode,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get mode stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// UnlockAchievement records an achievement. It reports whether the
// achievement was newly unlocked.
func (s *Store) UnlockAchievement(id string) (bool, error) {
	res, err := s.db.Exec("INSERT OR IGNORE INTO achievements (id) VALUES (?)", id)
	if err != nil {
		return false, fmt.Errorf("storage: cannot unlock achievement: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n == 1, nil
}

// Achievements returns all unlocked achievements, oldest first.
func (s *Store) Achievements() ([]Achievement, error) {
	rows, err := s.db.Query("SELECT id, unlocked_at FROM achievements ORDER BY unlocked_at, id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query achievements: %w", err)
	}
	defer rows.Close()

	var out []Achievement
	for rows.Next() {
		var a Achievement
		var unlockedAt any
		if err := rows.Scan(&a.ID, &unlockedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		a.UnlockedAt = parseTime(unlockedAt)
		out = append(out, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// parseTime handles both time.Time and string datetimes, depending on
// what the driver hands back.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
