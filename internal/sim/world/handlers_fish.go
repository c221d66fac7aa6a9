package world

import "farmstead.gg/internal/protocol"

func handleFishCast(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	if p.pendingCatch != nil {
		return false, "already casting"
	}
	tile := w.tiles.At(cmd.X, cmd.Z)
	if tile == nil {
		return false, "out of bounds"
	}
	if tile.Type != TileWater {
		return false, "not water"
	}
	if !p.UseEnergy(w.cfg.EnergyCast) {
		return false, "not enough energy"
	}

	bait := baitForRod(p.ToolTiers["rod"])
	fish := rollCatch(w.rng, w.catalogs.Fish.Defs, locationOf(w.cfg.Seed, w.cfg.Size, cmd.X, cmd.Z),
		p.SkillLevel(SkillFishing), bait, w.clock.Season, w.clock.Hour, weatherIsWet(w.weather))
	if fish == nil {
		p.AddEvent(protocol.Event{"t": nowTick, "type": "fish:miss"})
		w.queueInventoryUpdate(nowTick, p)
		return true, ""
	}

	waitTime, nibbles := rollBiteParams(w.rng, fish.Rarity)
	p.pendingCatch = &pendingCatch{
		FishID:   fish.ID,
		Rarity:   fish.Rarity,
		WaitTime: waitTime,
		Nibbles:  nibbles,
	}
	p.AddEvent(protocol.Event{
		"t":        nowTick,
		"type":     "fish:bite",
		"waitTime": waitTime,
		"nibbles":  nibbles,
	})
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleFishReel(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	pc := p.pendingCatch
	if pc == nil {
		return false, "nothing hooked"
	}
	p.pendingCatch = nil

	xp := 0
	for _, f := range w.catalogs.Fish.Defs {
		if f.ID == pc.FishID {
			xp = f.CatchXP
			break
		}
	}
	p.AddItem(pc.FishID, 1, QualityNormal)
	w.addSkillXP(nowTick, p, SkillFishing, xp)
	p.AddEvent(protocol.Event{
		"t":      nowTick,
		"type":   "fish:catch",
		"fish":   pc.FishID,
		"rarity": pc.Rarity,
	})
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

// baitForRod derives the roll modifier from the rod tier. Tier 1 is the
// starter rod with no modifier.
func baitForRod(tier int) BaitInfo {
	if tier <= 1 {
		return BaitInfo{}
	}
	return BaitInfo{RarityBoost: 0.2 * float64(tier-1)}
}

// locationOf distinguishes the village pond from open water for the catch
// table filter.
func locationOf(seed int64, size, x, z int) string {
	if inPond(seed, size, x, z) {
		return "pond"
	}
	return "river"
}
