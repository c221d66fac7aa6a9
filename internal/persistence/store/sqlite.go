// Package store is the durable half of the simulation: a single sqlite file
// holding the world row, player rows with their skills and inventories, and
// per-player NPC relationships. Writes are synchronous and transactional so
// a completed checkpoint is a consistent one.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"farmstead.gg/internal/sim/world"
)

type SQLiteStore struct {
	db *sql.DB
}

var _ world.Gateway = (*SQLiteStore)(nil)

func Open(path string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("empty db path")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func initPragmas(db *sql.DB) error {
	// WAL suits the checkpoint pattern: short write bursts, rare readers.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS worlds (
			id TEXT PRIMARY KEY,
			seed INTEGER NOT NULL,
			season INTEGER NOT NULL,
			day INTEGER NOT NULL,
			hour REAL NOT NULL,
			weather TEXT NOT NULL DEFAULT '',
			total_days INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS players (
			id TEXT PRIMARY KEY,
			world_id TEXT NOT NULL,
			name TEXT NOT NULL,
			x INTEGER NOT NULL,
			z INTEGER NOT NULL,
			coins INTEGER NOT NULL,
			energy INTEGER NOT NULL,
			max_energy INTEGER NOT NULL,
			professions TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_players_world_name
			ON players(world_id, name);`,
		`CREATE TABLE IF NOT EXISTS player_skills (
			player_id TEXT NOT NULL,
			skill TEXT NOT NULL,
			level INTEGER NOT NULL,
			xp INTEGER NOT NULL,
			PRIMARY KEY (player_id, skill)
		);`,
		`CREATE TABLE IF NOT EXISTS player_items (
			player_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			quality INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			PRIMARY KEY (player_id, item_id, quality)
		);`,
		`CREATE TABLE IF NOT EXISTS npc_relationships (
			player_id TEXT NOT NULL,
			npc_id TEXT NOT NULL,
			hearts INTEGER NOT NULL,
			talked_today INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (player_id, npc_id)
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) SaveWorld(row world.WorldRow) error {
	_, err := s.db.Exec(`
		INSERT INTO worlds (id, seed, season, day, hour, weather, total_days)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			season=excluded.season, day=excluded.day,
			hour=excluded.hour, weather=excluded.weather,
			total_days=excluded.total_days`,
		row.ID, row.Seed, row.Season, row.Day, row.Hour, row.Weather, row.TotalDays)
	if err != nil {
		return fmt.Errorf("save world %s: %w", row.ID, err)
	}
	return nil
}

func (s *SQLiteStore) LoadWorld(id string) (world.WorldRow, bool, error) {
	var row world.WorldRow
	err := s.db.QueryRow(`
		SELECT id, seed, season, day, hour, weather, total_days
		FROM worlds WHERE id = ?`, id).
		Scan(&row.ID, &row.Seed, &row.Season, &row.Day, &row.Hour, &row.Weather, &row.TotalDays)
	if err == sql.ErrNoRows {
		return row, false, nil
	}
	if err != nil {
		return row, false, fmt.Errorf("load world %s: %w", id, err)
	}
	return row, true, nil
}

// SavePlayer replaces the player's row, skills and items in one transaction.
// Skills and items are delete-then-insert: the in-memory state is the whole
// truth, not a diff.
func (s *SQLiteStore) SavePlayer(row world.PlayerRow, skills []world.SkillRow, items []world.ItemRow) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(`
		INSERT INTO players (id, world_id, name, x, z, coins, energy, max_energy, professions)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			x=excluded.x, z=excluded.z, coins=excluded.coins,
			energy=excluded.energy, max_energy=excluded.max_energy,
			professions=excluded.professions`,
		row.ID, row.WorldID, row.Name, row.X, row.Z,
		row.Coins, row.Energy, row.MaxEnergy, row.Professions)
	if err != nil {
		return fmt.Errorf("save player %s: %w", row.ID, err)
	}

	if _, err := tx.Exec(`DELETE FROM player_skills WHERE player_id = ?`, row.ID); err != nil {
		return err
	}
	for _, sk := range skills {
		_, err := tx.Exec(`
			INSERT INTO player_skills (player_id, skill, level, xp)
			VALUES (?, ?, ?, ?)`,
			sk.PlayerID, sk.Skill, sk.Level, sk.XP)
		if err != nil {
			return fmt.Errorf("save skill %s/%s: %w", sk.PlayerID, sk.Skill, err)
		}
	}

	if _, err := tx.Exec(`DELETE FROM player_items WHERE player_id = ?`, row.ID); err != nil {
		return err
	}
	for _, it := range items {
		_, err := tx.Exec(`
			INSERT INTO player_items (player_id, item_id, quality, quantity)
			VALUES (?, ?, ?, ?)`,
			it.PlayerID, it.ItemID, it.Quality, it.Quantity)
		if err != nil {
			return fmt.Errorf("save item %s/%s: %w", it.PlayerID, it.ItemID, err)
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) LoadPlayer(worldID, name string) (world.PlayerRow, []world.SkillRow, []world.ItemRow, bool, error) {
	var row world.PlayerRow
	err := s.db.QueryRow(`
		SELECT id, world_id, name, x, z, coins, energy, max_energy, professions
		FROM players WHERE world_id = ? AND name = ?`, worldID, name).
		Scan(&row.ID, &row.WorldID, &row.Name, &row.X, &row.Z,
			&row.Coins, &row.Energy, &row.MaxEnergy, &row.Professions)
	if err == sql.ErrNoRows {
		return row, nil, nil, false, nil
	}
	if err != nil {
		return row, nil, nil, false, fmt.Errorf("load player %s: %w", name, err)
	}

	skills, err := s.loadSkills(row.ID)
	if err != nil {
		return row, nil, nil, false, err
	}
	items, err := s.loadItems(row.ID)
	if err != nil {
		return row, nil, nil, false, err
	}
	return row, skills, items, true, nil
}

func (s *SQLiteStore) loadSkills(playerID string) ([]world.SkillRow, error) {
	rows, err := s.db.Query(`
		SELECT player_id, skill, level, xp
		FROM player_skills WHERE player_id = ? ORDER BY skill`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []world.SkillRow
	for rows.Next() {
		var r world.SkillRow
		if err := rows.Scan(&r.PlayerID, &r.Skill, &r.Level, &r.XP); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) loadItems(playerID string) ([]world.ItemRow, error) {
	rows, err := s.db.Query(`
		SELECT player_id, item_id, quality, quantity
		FROM player_items WHERE player_id = ? ORDER BY item_id, quality`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []world.ItemRow
	for rows.Next() {
		var r world.ItemRow
		if err := rows.Scan(&r.PlayerID, &r.ItemID, &r.Quality, &r.Quantity); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) SaveRelationship(row world.RelationshipRow) error {
	talked := 0
	if row.TalkedToday {
		talked = 1
	}
	_, err := s.db.Exec(`
		INSERT INTO npc_relationships (player_id, npc_id, hearts, talked_today)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(player_id, npc_id) DO UPDATE SET
			hearts=excluded.hearts, talked_today=excluded.talked_today`,
		row.PlayerID, row.NPCID, row.Hearts, talked)
	if err != nil {
		return fmt.Errorf("save relationship %s/%s: %w", row.PlayerID, row.NPCID, err)
	}
	return nil
}

func (s *SQLiteStore) LoadRelationships(playerID string) ([]world.RelationshipRow, error) {
	rows, err := s.db.Query(`
		SELECT player_id, npc_id, hearts, talked_today
		FROM npc_relationships WHERE player_id = ? ORDER BY npc_id`, playerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []world.RelationshipRow
	for rows.Next() {
		var r world.RelationshipRow
		var talked int
		if err := rows.Scan(&r.PlayerID, &r.NPCID, &r.Hearts, &talked); err != nil {
			return nil, err
		}
		r.TalkedToday = talked != 0
		out = append(out, r)
	}
	return out, rows.Err()
}
