package world

import (
	"sort"

	"farmstead.gg/internal/protocol"
)

type ItemStack struct {
	ItemID   string
	Quantity int
	Quality  Quality
}

type Skill struct {
	Level int
	XP    int
}

// Player holds the authoritative state for one farmer. Created on first join
// and backed by a durable row; skills are loaded from and periodically flushed
// to storage.
type Player struct {
	ID   string
	Name string

	X int
	Z int

	Coins     int
	Energy    int
	MaxEnergy int

	// Inventory stacks are keyed by (item, quality); zero-quantity stacks are
	// pruned immediately so listings never carry ghosts.
	Inventory []ItemStack

	Skills      map[string]*Skill
	Professions []string
	// PendingProfessions are level checkpoints (5, 10) awaiting a client
	// choice callback.
	PendingProfessions []int
	ToolTiers          map[string]int

	// In-flight fishing state between cast and reel.
	pendingCatch *pendingCatch

	Events []protocol.Event

	rl map[string]*rateWindow
}

type rateWindow struct {
	StartTick uint64
	Count     int
}

func (p *Player) initDefaults(maxEnergy, coins int) {
	if p.MaxEnergy == 0 {
		p.MaxEnergy = maxEnergy
	}
	if p.Energy == 0 {
		p.Energy = p.MaxEnergy
	}
	if p.Coins == 0 {
		p.Coins = coins
	}
	if p.Skills == nil {
		p.Skills = map[string]*Skill{}
	}
	for _, s := range []string{SkillFarming, SkillFishing, SkillForaging, SkillSocial} {
		if p.Skills[s] == nil {
			p.Skills[s] = &Skill{}
		}
	}
	if p.ToolTiers == nil {
		p.ToolTiers = map[string]int{"hoe": 1, "can": 1, "rod": 1}
	}
	if p.rl == nil {
		p.rl = map[string]*rateWindow{}
	}
}

// UseEnergy spends energy if the player has enough. It never drives energy
// negative: on shortfall it reports false and leaves the value unchanged.
func (p *Player) UseEnergy(amount int) bool {
	if amount < 0 || amount > p.Energy {
		return false
	}
	p.Energy -= amount
	return true
}

func (p *Player) RestoreEnergy() {
	p.Energy = p.MaxEnergy
}

func (p *Player) AddItem(itemID string, qty int, quality Quality) {
	if qty <= 0 || itemID == "" {
		return
	}
	for i := range p.Inventory {
		if p.Inventory[i].ItemID == itemID && p.Inventory[i].Quality == quality {
			p.Inventory[i].Quantity += qty
			return
		}
	}
	p.Inventory = append(p.Inventory, ItemStack{ItemID: itemID, Quantity: qty, Quality: quality})
}

// RemoveItem takes qty from the matching stack, pruning it when it hits zero.
// Returns false (without mutation) when the player holds fewer than qty.
func (p *Player) RemoveItem(itemID string, qty int, quality Quality) bool {
	if qty <= 0 {
		return false
	}
	for i := range p.Inventory {
		if p.Inventory[i].ItemID == itemID && p.Inventory[i].Quality == quality {
			if p.Inventory[i].Quantity < qty {
				return false
			}
			p.Inventory[i].Quantity -= qty
			if p.Inventory[i].Quantity == 0 {
				p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
			}
			return true
		}
	}
	return false
}

func (p *Player) CountItem(itemID string, quality Quality) int {
	for _, s := range p.Inventory {
		if s.ItemID == itemID && s.Quality == quality {
			return s.Quantity
		}
	}
	return 0
}

// InventoryList returns a stable listing for snapshots and inventory:update
// events.
func (p *Player) InventoryList() []protocol.ItemStackState {
	out := make([]protocol.ItemStackState, 0, len(p.Inventory))
	for _, s := range p.Inventory {
		if s.Quantity <= 0 {
			continue
		}
		out = append(out, protocol.ItemStackState{ItemID: s.ItemID, Quantity: s.Quantity, Quality: int(s.Quality)})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ItemID != out[j].ItemID {
			return out[i].ItemID < out[j].ItemID
		}
		return out[i].Quality < out[j].Quality
	})
	return out
}

// OverallLevel is the sum of all skill levels. It is recomputed on demand and
// never stored, so it cannot drift from the per-skill rows.
func (p *Player) OverallLevel() int {
	total := 0
	for _, s := range p.Skills {
		total += s.Level
	}
	return total
}

func (p *Player) SkillLevel(name string) int {
	if s := p.Skills[name]; s != nil {
		return s.Level
	}
	return 0
}

func (p *Player) AddEvent(e protocol.Event) {
	p.Events = append(p.Events, e)
}

func (p *Player) TakeEvents() []protocol.Event {
	ev := p.Events
	p.Events = nil
	return ev
}

// RateLimitAllow bounds bursty commands per fixed window.
func (p *Player) RateLimitAllow(kind string, nowTick uint64, window uint64, max int) bool {
	if window == 0 || max <= 0 {
		return true
	}
	w, ok := p.rl[kind]
	if !ok || nowTick-w.StartTick >= window {
		w = &rateWindow{StartTick: nowTick}
		p.rl[kind] = w
	}
	w.Count++
	return w.Count <= max
}
