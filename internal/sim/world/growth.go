package world

import "farmstead.gg/internal/protocol"

// systemGrowth advances every crop by the game-hours that passed this tick.
// Stage transitions broadcast a crop delta; crops already HARVESTABLE wait
// untouched for an explicit harvest command.
func (w *World) systemGrowth(nowTick uint64, gameHours float64) {
	if gameHours <= 0 {
		return
	}
	for _, c := range w.sortedCrops() {
		def, ok := w.catalogs.Crops.Defs[c.CropType]
		if !ok {
			continue
		}
		bonus := 0.0
		if c.Fertilizer != "" {
			if f, ok := w.catalogs.Fertilizers.Defs[c.Fertilizer]; ok {
				bonus = f.SpeedBonus
			}
		}
		if c.advanceGrowth(gameHours, def.GrowthDays, bonus) {
			w.broadcastAll(protocol.Event{
				"t":    nowTick,
				"type": "world:update",
				"kind": "crop",
				"crop": cropState(c),
			})
		}
	}
}

func cropState(c *Crop) protocol.CropState {
	return protocol.CropState{
		ID:         c.ID,
		TileX:      c.TileX,
		TileZ:      c.TileZ,
		CropType:   c.CropType,
		Stage:      c.Stage.String(),
		Growth:     c.Growth,
		Watered:    c.Watered,
		Fertilizer: c.Fertilizer,
	}
}
