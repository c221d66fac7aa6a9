package world

import (
	"sort"

	"farmstead.gg/internal/protocol"
)

// buildState assembles the complete world snapshot sent on join and after
// day rollover.
func (w *World) buildState(forPlayerID string) protocol.WorldState {
	st := protocol.WorldState{
		PlayerID: forPlayerID,
		Time: protocol.TimeState{
			Season: w.clock.Season,
			Day:    w.clock.Day,
			Hour:   w.clock.Hour,
		},
		Weather: protocol.WeatherState{Weather: w.weather},
	}

	st.Tiles = make([]protocol.TileState, 0, len(w.tiles.Tiles))
	for _, t := range w.tiles.Tiles {
		st.Tiles = append(st.Tiles, protocol.TileState{
			X: t.X, Z: t.Z, Kind: t.Type.String(), Height: t.Height,
		})
	}

	st.Decorations = make([]protocol.DecorState, 0, len(w.decorations))
	for _, d := range w.decorations {
		st.Decorations = append(st.Decorations, protocol.DecorState{
			Kind: d.Type, X: d.X, Z: d.Z, Variant: d.Variant, Rotation: d.Rotation,
		})
	}

	for _, c := range w.sortedCrops() {
		st.Crops = append(st.Crops, cropState(c))
	}

	for _, a := range w.sortedAnimals() {
		st.Animals = append(st.Animals, protocol.AnimalState{
			ID: a.ID, Kind: a.Kind, Name: a.Name,
			Happiness: a.Happiness, FedToday: a.FedToday, ProductReady: a.ProductReady,
		})
	}

	petIDs := make([]string, 0, len(w.pets))
	for id := range w.pets {
		petIDs = append(petIDs, id)
	}
	sort.Strings(petIDs)
	for _, id := range petIDs {
		p := w.pets[id]
		st.Pets = append(st.Pets, protocol.PetState{
			ID: p.ID, OwnerID: p.OwnerID, Kind: p.Kind,
			Loyalty: p.Loyalty, PlayedToday: p.PlayedToday,
		})
	}

	npcIDs := make([]string, 0, len(w.npcs))
	for id := range w.npcs {
		npcIDs = append(npcIDs, id)
	}
	sort.Strings(npcIDs)
	for _, id := range npcIDs {
		n := w.npcs[id]
		st.NPCs = append(st.NPCs, protocol.NPCState{ID: n.ID, Name: n.Name, X: n.X, Z: n.Z})
	}

	for _, p := range w.sortedPlayers() {
		skills := map[string]protocol.SkillState{}
		for name, s := range p.Skills {
			skills[name] = protocol.SkillState{Level: s.Level, XP: s.XP}
		}
		st.Players = append(st.Players, protocol.PlayerState{
			ID: p.ID, Name: p.Name, X: p.X, Z: p.Z,
			Coins: p.Coins, Energy: p.Energy, MaxEnergy: p.MaxEnergy,
			Inventory: p.InventoryList(),
			Skills:    skills,
			Level:     p.OverallLevel(),
			RodTier:   p.ToolTiers["rod"],
		})
	}

	for _, b := range w.buildings {
		st.Buildings = append(st.Buildings, protocol.BuildingState{Kind: b.Kind, X: b.X, Z: b.Z})
	}

	sprinklerKeys := make([]TileKey, 0, len(w.sprinklers))
	for k := range w.sprinklers {
		sprinklerKeys = append(sprinklerKeys, k)
	}
	sort.Slice(sprinklerKeys, func(i, j int) bool {
		if sprinklerKeys[i].X != sprinklerKeys[j].X {
			return sprinklerKeys[i].X < sprinklerKeys[j].X
		}
		return sprinklerKeys[i].Z < sprinklerKeys[j].Z
	})
	for _, k := range sprinklerKeys {
		s := w.sprinklers[k]
		st.Sprinklers = append(st.Sprinklers, protocol.SprinklerState{X: s.X, Z: s.Z, OwnerID: s.OwnerID})
	}

	machineIDs := make([]string, 0, len(w.machines))
	for id := range w.machines {
		machineIDs = append(machineIDs, id)
	}
	sort.Strings(machineIDs)
	for _, id := range machineIDs {
		m := w.machines[id]
		st.Machines = append(st.Machines, protocol.MachineState{
			ID: m.ID, OwnerID: m.OwnerID, Kind: m.Kind,
			Busy: m.Busy, Recipe: m.Recipe, ReadyAtHour: m.ReadyAtHour,
		})
	}

	return st
}
