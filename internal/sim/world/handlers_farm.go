package world

import (
	"farmstead.gg/internal/protocol"
	"farmstead.gg/internal/sim/catalogs"
)

func handleFarmTill(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	tile := w.tiles.At(cmd.X, cmd.Z)
	if tile == nil {
		return false, "out of bounds"
	}
	if !tile.Type.Tillable() {
		return false, "tile not tillable"
	}
	if !p.UseEnergy(w.cfg.EnergyTill) {
		return false, "not enough energy"
	}
	tile.Type = TileTilled
	w.broadcastTile(nowTick, tile)
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleFarmPlant(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	tile := w.tiles.At(cmd.X, cmd.Z)
	if tile == nil {
		return false, "out of bounds"
	}
	if tile.Type != TileTilled {
		return false, "tile not tilled"
	}
	if w.cropOn(cmd.X, cmd.Z) != nil {
		return false, "tile occupied"
	}
	def, ok := w.cropForSeed(cmd.Item)
	if !ok {
		return false, "unknown seed"
	}
	if !p.RemoveItem(cmd.Item, 1, QualityNormal) {
		return false, "seed not held"
	}

	c := &Crop{
		ID:       w.newCropID(),
		TileX:    cmd.X,
		TileZ:    cmd.Z,
		CropType: def.ID,
	}
	w.crops[c.ID] = c
	w.cropAt[TileKey{X: cmd.X, Z: cmd.Z}] = c.ID
	w.broadcastCrop(nowTick, c)
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleFarmWater(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	c := w.cropOn(cmd.X, cmd.Z)
	if c == nil {
		return false, "no crop"
	}
	if c.Watered {
		return false, "already watered"
	}
	if !p.UseEnergy(w.cfg.EnergyWater) {
		return false, "not enough energy"
	}
	c.Watered = true
	w.broadcastCrop(nowTick, c)
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleFarmHarvest(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	c := w.cropOn(cmd.X, cmd.Z)
	if c == nil {
		return false, "no crop"
	}
	if c.Stage != StageHarvestable {
		return false, "not harvestable"
	}
	def, ok := w.catalogs.Crops.Defs[c.CropType]
	if !ok {
		return false, "unknown crop type"
	}
	if !p.UseEnergy(w.cfg.EnergyHarvest) {
		return false, "not enough energy"
	}

	quality := rollQuality(w.rng, p.SkillLevel(SkillFarming))
	p.AddItem(def.Produce, 1, quality)
	w.addSkillXP(nowTick, p, SkillFarming, def.HarvestXP)

	if def.Regrows {
		c.resetForRegrow()
		w.broadcastCrop(nowTick, c)
	} else {
		delete(w.crops, c.ID)
		delete(w.cropAt, TileKey{X: c.TileX, Z: c.TileZ})
		w.broadcastAll(protocol.Event{
			"t":    nowTick,
			"type": "world:update",
			"kind": "cropRemoved",
			"crop": c.ID,
		})
	}
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleFarmFertilize(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	c := w.cropOn(cmd.X, cmd.Z)
	if c == nil {
		return false, "no crop"
	}
	if c.Fertilizer != "" {
		return false, "already fertilized"
	}
	if _, ok := w.catalogs.Fertilizers.Defs[cmd.Item]; !ok {
		return false, "unknown fertilizer"
	}
	if !p.RemoveItem(cmd.Item, 1, QualityNormal) {
		return false, "fertilizer not held"
	}
	c.Fertilizer = cmd.Item
	w.broadcastCrop(nowTick, c)
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handlePlaceSprinkler(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	tile := w.tiles.At(cmd.X, cmd.Z)
	if tile == nil {
		return false, "out of bounds"
	}
	if !tile.Type.Tillable() && tile.Type != TileTilled {
		return false, "tile not placeable"
	}
	key := TileKey{X: cmd.X, Z: cmd.Z}
	if _, exists := w.sprinklers[key]; exists {
		return false, "sprinkler exists"
	}
	if w.cropOn(cmd.X, cmd.Z) != nil {
		return false, "tile occupied"
	}
	if !p.RemoveItem("sprinkler", 1, QualityNormal) {
		return false, "sprinkler not held"
	}
	w.sprinklers[key] = &Sprinkler{X: cmd.X, Z: cmd.Z, OwnerID: p.ID}
	w.broadcastAll(protocol.Event{
		"t":    nowTick,
		"type": "world:update",
		"kind": "sprinkler",
		"x":    cmd.X,
		"z":    cmd.Z,
	})
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

// cropForSeed resolves a seed item id to its crop def.
func (w *World) cropForSeed(seedItem string) (catalogs.CropDef, bool) {
	for _, d := range w.catalogs.Crops.Defs {
		if d.SeedItem == seedItem {
			return d, true
		}
	}
	return catalogs.CropDef{}, false
}
