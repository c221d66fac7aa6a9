package world

import (
	"encoding/json"

	"farmstead.gg/internal/protocol"
)

// Broadcast scopes: movement/tile/crop/weather/time deltas go to every
// client; inventory, dialogue and fishing feedback go only to the player that
// caused them (queued on Player.Events).

func (w *World) broadcastAll(e protocol.Event) {
	w.pendingAll = append(w.pendingAll, e)
}

// flushClients delivers this tick's accumulated deltas. Per-client queues use
// drop-oldest backpressure: a slow client loses frames, never stalls the sim.
func (w *World) flushClients(nowTick uint64) {
	for id, cl := range w.clients {
		p := w.players[id]
		if p == nil || cl == nil {
			continue
		}
		events := make([]protocol.Event, 0, len(w.pendingAll)+len(p.Events))
		events = append(events, w.pendingAll...)
		events = append(events, p.TakeEvents()...)
		if len(events) == 0 {
			continue
		}
		b, err := json.Marshal(protocol.EventsMsg{
			Type:   protocol.TypeEvents,
			Tick:   nowTick,
			Events: events,
		})
		if err != nil {
			continue
		}
		sendLatest(cl.Out, b)
	}
	w.pendingAll = w.pendingAll[:0]
}

// sendFullState pushes an authoritative snapshot to one client. Clients must
// treat it as superseding any incremental state they hold.
func (w *World) sendFullState(nowTick uint64, playerID string) {
	cl := w.clients[playerID]
	if cl == nil {
		return
	}
	b, err := json.Marshal(protocol.StateMsg{
		Type:  protocol.TypeState,
		Tick:  nowTick,
		State: w.buildState(playerID),
	})
	if err != nil {
		return
	}
	sendLatest(cl.Out, b)
}

func sendLatest(ch chan []byte, b []byte) {
	select {
	case ch <- b:
		return
	default:
	}
	// Drop one.
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- b:
	default:
	}
}
