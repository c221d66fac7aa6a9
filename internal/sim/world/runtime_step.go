package world

import "farmstead.gg/internal/protocol"

// step is one simulation tick. Order matters: sessions settle first so the
// clock pause reflects current occupancy, then time advances and rollovers
// fire, then player commands run against the new day, then growth, then one
// flush of everything accumulated.
func (w *World) step(delta float64, joins []JoinRequest, leaves []LeaveRequest, cmds []CommandEnvelope) {
	nowTick := w.tick.Load()

	for _, req := range leaves {
		w.handleLeave(req, nowTick)
	}
	for _, req := range joins {
		w.handleJoin(req, nowTick)
	}

	// Empty worlds hold time still; crops and calendars wait for farmers.
	w.clock.Paused = len(w.clients) == 0

	gameHours := w.clock.HoursFor(delta)
	for _, ev := range w.clock.Advance(delta) {
		switch ev.Type {
		case "newDay":
			w.onNewDay(nowTick)
		case "newSeason":
			w.onNewSeason(nowTick)
		}
	}

	if h := int(w.clock.Hour); h != w.lastWholeHour {
		w.lastWholeHour = h
		w.broadcastAll(protocol.Event{
			"t":      nowTick,
			"type":   "time:update",
			"season": w.clock.Season,
			"day":    w.clock.Day,
			"hour":   h,
		})
	}

	for _, env := range cmds {
		p := w.players[env.PlayerID]
		if p == nil {
			continue
		}
		if _, connected := w.clients[env.PlayerID]; !connected {
			continue
		}
		w.applyCommand(p, env.Cmd, nowTick)
	}

	w.systemGrowth(nowTick, gameHours)
	w.notifyReadyMachines(nowTick)

	if w.fullSyncDue {
		w.fullSyncDue = false
		for id := range w.clients {
			w.sendFullState(nowTick, id)
		}
	}
	w.flushClients(nowTick)
	w.tick.Add(1)
}

// notifyReadyMachines tells owners once when a crafting timer completes.
func (w *World) notifyReadyMachines(nowTick uint64) {
	for _, m := range w.machines {
		if !m.Busy || m.Notified || w.clock.TotalHours < m.ReadyAtHour {
			continue
		}
		m.Notified = true
		if p := w.players[m.OwnerID]; p != nil {
			p.AddEvent(protocol.Event{
				"t":       nowTick,
				"type":    "craft:ready",
				"machine": m.ID,
				"recipe":  m.Recipe,
			})
		}
	}
}
