package world

// Row shapes exchanged with the persistence gateway. The gateway is handed to
// the world at construction (no lazily initialized global handle); the world
// owns when to flush, the gateway owns how.

type WorldRow struct {
	ID      string
	Seed    int64
	Season  int
	Day     int
	Hour    float64
	Weather string
	// TotalDays is the lifetime day-rollover count; it seeds the daily
	// weather roll and must survive restarts unchanged.
	TotalDays int
}

type PlayerRow struct {
	ID          string
	WorldID     string
	Name        string
	X           int
	Z           int
	Coins       int
	Energy      int
	MaxEnergy   int
	Professions string // comma-joined profession ids
}

type SkillRow struct {
	PlayerID string
	Skill    string
	Level    int
	XP       int
}

type ItemRow struct {
	PlayerID string
	ItemID   string
	Quality  int
	Quantity int
}

type RelationshipRow struct {
	PlayerID    string
	NPCID       string
	Hearts      int
	TalkedToday bool
}

// Gateway is the durable storage boundary. Writes are synchronous and
// transactional; callers accept that they block the simulation. Mid-session
// failures are logged and tolerated, the in-memory state stays authoritative.
type Gateway interface {
	SaveWorld(row WorldRow) error
	LoadWorld(id string) (WorldRow, bool, error)

	SavePlayer(row PlayerRow, skills []SkillRow, items []ItemRow) error
	LoadPlayer(worldID, name string) (PlayerRow, []SkillRow, []ItemRow, bool, error)

	SaveRelationship(row RelationshipRow) error
	LoadRelationships(playerID string) ([]RelationshipRow, error)
}

func (w *World) playerRow(p *Player) (PlayerRow, []SkillRow, []ItemRow) {
	prof := ""
	for i, pr := range p.Professions {
		if i > 0 {
			prof += ","
		}
		prof += pr
	}
	row := PlayerRow{
		ID:          p.ID,
		WorldID:     w.cfg.ID,
		Name:        p.Name,
		X:           p.X,
		Z:           p.Z,
		Coins:       p.Coins,
		Energy:      p.Energy,
		MaxEnergy:   p.MaxEnergy,
		Professions: prof,
	}
	skills := make([]SkillRow, 0, len(p.Skills))
	for name, s := range p.Skills {
		skills = append(skills, SkillRow{PlayerID: p.ID, Skill: name, Level: s.Level, XP: s.XP})
	}
	items := make([]ItemRow, 0, len(p.Inventory))
	for _, s := range p.Inventory {
		if s.Quantity <= 0 {
			continue
		}
		items = append(items, ItemRow{PlayerID: p.ID, ItemID: s.ItemID, Quality: int(s.Quality), Quantity: s.Quantity})
	}
	return row, skills, items
}

// flushPlayer checkpoints one player; best-effort mid-session.
func (w *World) flushPlayer(p *Player) {
	if w.store == nil || p == nil {
		return
	}
	row, skills, items := w.playerRow(p)
	if err := w.store.SavePlayer(row, skills, items); err != nil {
		w.log.WithError(err).WithField("player", p.ID).Error("player checkpoint failed; keeping in-memory state")
	}
}

func (w *World) flushWorldRow() {
	if w.store == nil {
		return
	}
	row := WorldRow{
		ID:        w.cfg.ID,
		Seed:      w.cfg.Seed,
		Season:    w.clock.Season,
		Day:       w.clock.Day,
		Hour:      w.clock.Hour,
		Weather:   w.weather,
		TotalDays: w.clock.TotalDays,
	}
	if err := w.store.SaveWorld(row); err != nil {
		w.log.WithError(err).Error("world checkpoint failed; keeping in-memory state")
	}
}

func (w *World) flushRelationship(r *Relationship) {
	if w.store == nil || r == nil {
		return
	}
	err := w.store.SaveRelationship(RelationshipRow{
		PlayerID:    r.PlayerID,
		NPCID:       r.NPCID,
		Hearts:      r.Hearts,
		TalkedToday: r.TalkedToday,
	})
	if err != nil {
		w.log.WithError(err).WithField("npc", r.NPCID).Error("relationship write failed")
	}
}
