package world

// NPC placement mirrors the catalog; NPCs themselves are immutable, only the
// per-player relationship rows change.
type NPC struct {
	ID   string
	Name string
	X    int
	Z    int
}

type relKey struct {
	PlayerID string
	NPCID    string
}

// Relationship is a persisted row, created lazily on first interaction.
type Relationship struct {
	PlayerID    string
	NPCID       string
	Hearts      int // 0..10
	TalkedToday bool
}

const maxHearts = 10

func (r *Relationship) addHearts(delta int) {
	r.Hearts += delta
	if r.Hearts > maxHearts {
		r.Hearts = maxHearts
	}
	if r.Hearts < 0 {
		r.Hearts = 0
	}
}

// Machine runs one crafting recipe at a time, keyed to absolute game-hours.
type Machine struct {
	ID      string
	OwnerID string
	Kind    string

	Recipe      string
	Busy        bool
	ReadyAtHour float64
	// Notified marks that the owner already received a craft:ready event.
	Notified bool
}

// Sprinkler waters its 8-neighborhood at every day rollover.
type Sprinkler struct {
	X       int
	Z       int
	OwnerID string
}
