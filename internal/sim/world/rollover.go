package world

import "farmstead.gg/internal/protocol"

// onNewDay runs the fixed rollover sequence: weather first (rain waters for
// free), then sprinklers, then daily decay and resets, then a durable
// checkpoint, and finally a full sync so every client re-bases on the new
// day's state.
func (w *World) onNewDay(nowTick uint64) {
	w.weather = WeatherForDay(w.cfg.Seed, w.clock.TotalDays, w.clock.Season)
	w.broadcastAll(protocol.Event{
		"t":       nowTick,
		"type":    "weather:update",
		"weather": w.weather,
	})

	if weatherIsWet(w.weather) {
		for _, c := range w.sortedCrops() {
			c.Watered = true
		}
	}
	w.runSprinklers()

	for _, a := range w.sortedAnimals() {
		a.dailyDecay()
		w.broadcastAnimal(nowTick, a)
	}
	for _, pet := range w.pets {
		pet.dailyDecay()
	}
	for _, r := range w.rels {
		r.TalkedToday = false
	}
	for _, p := range w.sortedPlayers() {
		p.RestoreEnergy()
	}

	w.flushWorldRow()
	for _, p := range w.sortedPlayers() {
		w.flushPlayer(p)
	}

	w.broadcastAll(protocol.Event{
		"t":      nowTick,
		"type":   "time:newDay",
		"season": w.clock.Season,
		"day":    w.clock.Day,
	})
	w.fullSyncDue = true
}

func (w *World) onNewSeason(nowTick uint64) {
	w.broadcastAll(protocol.Event{
		"t":      nowTick,
		"type":   "time:newSeason",
		"season": w.clock.Season,
		"name":   SeasonName(w.clock.Season),
	})
}

// runSprinklers waters every crop in each sprinkler's 8-neighborhood.
func (w *World) runSprinklers() {
	for key := range w.sprinklers {
		for dx := -1; dx <= 1; dx++ {
			for dz := -1; dz <= 1; dz++ {
				if dx == 0 && dz == 0 {
					continue
				}
				if c := w.cropOn(key.X+dx, key.Z+dz); c != nil {
					c.Watered = true
				}
			}
		}
	}
}
