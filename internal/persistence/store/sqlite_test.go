package store

import (
	"path/filepath"
	"testing"

	"farmstead.gg/internal/sim/world"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "farm.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestWorldRow_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, ok, err := s.LoadWorld("w1"); err != nil || ok {
		t.Fatalf("fresh db: ok=%v err=%v", ok, err)
	}

	row := world.WorldRow{ID: "w1", Seed: 1337, Season: 2, Day: 14, Hour: 9.5, Weather: "rainy", TotalDays: 70}
	if err := s.SaveWorld(row); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok, err := s.LoadWorld("w1")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got != row {
		t.Fatalf("round trip = %+v, want %+v", got, row)
	}

	// Upsert keeps the seed but moves the calendar.
	row.Day = 15
	row.TotalDays = 71
	if err := s.SaveWorld(row); err != nil {
		t.Fatalf("resave: %v", err)
	}
	got, _, _ = s.LoadWorld("w1")
	if got.Day != 15 || got.Seed != 1337 || got.TotalDays != 71 {
		t.Fatalf("after upsert = %+v", got)
	}
}

func TestPlayer_RoundTrip(t *testing.T) {
	s := openTestStore(t)

	row := world.PlayerRow{
		ID: "P0001", WorldID: "w1", Name: "ada",
		X: 30, Z: 40, Coins: 777, Energy: 80, MaxEnergy: 104,
		Professions: "agronomist",
	}
	skills := []world.SkillRow{
		{PlayerID: "P0001", Skill: "farming", Level: 2, XP: 50},
		{PlayerID: "P0001", Skill: "fishing", Level: 0, XP: 30},
	}
	items := []world.ItemRow{
		{PlayerID: "P0001", ItemID: "wheat", Quality: 1, Quantity: 4},
		{PlayerID: "P0001", ItemID: "wheat_seed", Quality: 0, Quantity: 6},
	}
	if err := s.SavePlayer(row, skills, items); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, gotSkills, gotItems, ok, err := s.LoadPlayer("w1", "ada")
	if err != nil || !ok {
		t.Fatalf("load: ok=%v err=%v", ok, err)
	}
	if got != row {
		t.Fatalf("player = %+v, want %+v", got, row)
	}
	if len(gotSkills) != 2 || gotSkills[0].Skill != "farming" || gotSkills[0].Level != 2 {
		t.Fatalf("skills = %+v", gotSkills)
	}
	if len(gotItems) != 2 {
		t.Fatalf("items = %+v", gotItems)
	}

	// A later checkpoint fully replaces skills and items.
	if err := s.SavePlayer(row, skills[:1], nil); err != nil {
		t.Fatalf("resave: %v", err)
	}
	_, gotSkills, gotItems, _, _ = s.LoadPlayer("w1", "ada")
	if len(gotSkills) != 1 || len(gotItems) != 0 {
		t.Fatalf("checkpoint not replacing: skills=%d items=%d", len(gotSkills), len(gotItems))
	}
}

func TestPlayer_MissingIsNotAnError(t *testing.T) {
	s := openTestStore(t)
	_, _, _, ok, err := s.LoadPlayer("w1", "nobody")
	if err != nil {
		t.Fatalf("err = %v", err)
	}
	if ok {
		t.Fatal("found a player in an empty db")
	}
}

func TestRelationships_UpsertAndList(t *testing.T) {
	s := openTestStore(t)

	r := world.RelationshipRow{PlayerID: "P0001", NPCID: "npc_rosa", Hearts: 1, TalkedToday: true}
	if err := s.SaveRelationship(r); err != nil {
		t.Fatalf("save: %v", err)
	}
	r.Hearts = 3
	r.TalkedToday = false
	if err := s.SaveRelationship(r); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := s.SaveRelationship(world.RelationshipRow{PlayerID: "P0001", NPCID: "npc_tomas", Hearts: 1}); err != nil {
		t.Fatalf("second npc: %v", err)
	}

	rels, err := s.LoadRelationships("P0001")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(rels) != 2 {
		t.Fatalf("rels = %d, want 2", len(rels))
	}
	if rels[0].NPCID != "npc_rosa" || rels[0].Hearts != 3 || rels[0].TalkedToday {
		t.Fatalf("upserted rel = %+v", rels[0])
	}
}
