package world

import (
	"context"
	"time"
)

// Run drives the simulation until ctx is cancelled or Stop is called. It is
// the only goroutine that touches world state: joins, leaves and commands
// arriving between ticks queue up and are drained at the next tick boundary,
// so every mutation happens at a deterministic point in the tick.
func (w *World) Run(ctx context.Context) {
	interval := time.Second / time.Duration(w.cfg.TickRateHz)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var (
		pendingJoins  []JoinRequest
		pendingLeaves []LeaveRequest
		pendingCmds   []CommandEnvelope
	)
	last := time.Now()

	for {
		select {
		case <-ctx.Done():
			w.shutdown()
			return
		case <-w.stop:
			w.shutdown()
			return
		case req := <-w.join:
			pendingJoins = append(pendingJoins, req)
		case req := <-w.leave:
			pendingLeaves = append(pendingLeaves, req)
		case env := <-w.inbox:
			pendingCmds = append(pendingCmds, env)
		case now := <-ticker.C:
			delta := now.Sub(last).Seconds()
			last = now
			w.step(delta, pendingJoins, pendingLeaves, pendingCmds)
			pendingJoins = pendingJoins[:0]
			pendingLeaves = pendingLeaves[:0]
			pendingCmds = pendingCmds[:0]
		}
	}
}

// Stop asks the loop to exit after a final checkpoint. Safe to call once.
func (w *World) Stop() {
	close(w.stop)
}

// shutdown checkpoints everything resident before the loop exits.
func (w *World) shutdown() {
	w.flushWorldRow()
	for _, p := range w.sortedPlayers() {
		w.flushPlayer(p)
	}
	for _, c := range w.clients {
		close(c.Out)
	}
	w.clients = map[string]*Client{}
	w.log.WithField("world", w.cfg.ID).Info("world loop stopped")
}
