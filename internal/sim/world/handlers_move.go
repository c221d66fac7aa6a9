package world

import "farmstead.gg/internal/protocol"

func handlePlayerMove(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	if !p.RateLimitAllow("move", nowTick, w.cfg.RateLimits.MoveWindowTicks, w.cfg.RateLimits.MoveMax) {
		return false, "rate limited"
	}
	tile := w.tiles.At(cmd.X, cmd.Z)
	if tile == nil {
		return false, "out of bounds"
	}
	if tile.Type == TileWater {
		return false, "not walkable"
	}
	p.X = cmd.X
	p.Z = cmd.Z
	w.broadcastAll(protocol.Event{
		"t":      nowTick,
		"type":   "world:update",
		"kind":   "player",
		"player": p.ID,
		"x":      p.X,
		"z":      p.Z,
	})
	return true, ""
}

func (w *World) queueInventoryUpdate(nowTick uint64, p *Player) {
	p.AddEvent(protocol.Event{
		"t":         nowTick,
		"type":      "inventory:update",
		"inventory": p.InventoryList(),
		"coins":     p.Coins,
		"energy":    p.Energy,
		"maxEnergy": p.MaxEnergy,
	})
}

func (w *World) broadcastTile(nowTick uint64, t *Tile) {
	w.broadcastAll(protocol.Event{
		"t":    nowTick,
		"type": "world:update",
		"kind": "tile",
		"x":    t.X,
		"z":    t.Z,
		"tile": t.Type.String(),
	})
}

func (w *World) broadcastCrop(nowTick uint64, c *Crop) {
	w.broadcastAll(protocol.Event{
		"t":    nowTick,
		"type": "world:update",
		"kind": "crop",
		"crop": cropState(c),
	})
}

func (w *World) broadcastAnimal(nowTick uint64, a *Animal) {
	w.broadcastAll(protocol.Event{
		"t":      nowTick,
		"type":   "world:update",
		"kind":   "animal",
		"animal": protocol.AnimalState{ID: a.ID, Kind: a.Kind, Name: a.Name, Happiness: a.Happiness, FedToday: a.FedToday, ProductReady: a.ProductReady},
	})
}
