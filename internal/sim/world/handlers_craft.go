package world

import "farmstead.gg/internal/protocol"

func handleCraftStart(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	recipe, ok := w.catalogs.Recipes.ByID[cmd.Recipe]
	if !ok {
		return false, "unknown recipe"
	}
	// Aggregate per item first so a recipe listing the same item twice is
	// checked against the combined count.
	need := map[string]int{}
	for _, in := range recipe.Inputs {
		need[in.Item] += in.Count
	}
	for item, count := range need {
		if p.CountItem(item, QualityNormal) < count {
			return false, "inputs not held"
		}
	}
	m := w.idleMachineFor(p.ID, recipe.Machine)
	for _, in := range recipe.Inputs {
		p.RemoveItem(in.Item, in.Count, QualityNormal)
	}

	m.Recipe = recipe.RecipeID
	m.Busy = true
	m.Notified = false
	m.ReadyAtHour = w.clock.TotalHours + recipe.TimeHours
	p.AddEvent(protocol.Event{
		"t":       nowTick,
		"type":    "craft:started",
		"machine": m.ID,
		"recipe":  recipe.RecipeID,
	})
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleCraftCollect(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	m, ok := w.machines[cmd.Target]
	if !ok || m.OwnerID != p.ID {
		return false, "unknown machine"
	}
	if !m.Busy {
		return false, "machine idle"
	}
	if w.clock.TotalHours < m.ReadyAtHour {
		return false, "not ready"
	}
	recipe, ok := w.catalogs.Recipes.ByID[m.Recipe]
	if !ok {
		return false, "unknown recipe"
	}

	m.Busy = false
	m.Recipe = ""
	p.AddItem(recipe.Output.Item, recipe.Output.Count, QualityNormal)
	p.AddEvent(protocol.Event{
		"t":       nowTick,
		"type":    "craft:collected",
		"machine": m.ID,
		"item":    recipe.Output.Item,
		"qty":     recipe.Output.Count,
	})
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

// idleMachineFor finds the player's idle machine of the given kind, creating
// one on first use. Machines are per player and never shared.
func (w *World) idleMachineFor(ownerID, kind string) *Machine {
	var ids []string
	for id, m := range w.machines {
		if m.OwnerID == ownerID && m.Kind == kind && !m.Busy {
			ids = append(ids, id)
		}
	}
	if len(ids) > 0 {
		best := ids[0]
		for _, id := range ids[1:] {
			if id < best {
				best = id
			}
		}
		return w.machines[best]
	}
	m := &Machine{ID: w.newMachineID(), OwnerID: ownerID, Kind: kind}
	w.machines[m.ID] = m
	return m
}
