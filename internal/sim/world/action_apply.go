package world

import (
	"github.com/sirupsen/logrus"

	"farmstead.gg/internal/protocol"
)

// applyCommand runs one validated state transition. Guard failures silently
// drop the command (debug-logged only): a client that raced state simply has
// its stale command ignored rather than its session disturbed. Panics are
// contained per command so one bad handler cannot stall the tick loop or
// other players' sessions.
func (w *World) applyCommand(p *Player, cmd protocol.CommandMsg, nowTick uint64) {
	defer func() {
		if r := recover(); r != nil {
			w.log.WithFields(logrus.Fields{
				"player": p.ID,
				"cmd":    cmd.Cmd,
				"panic":  r,
			}).Error("command handler panicked; command discarded")
		}
	}()

	h := commandDispatch[cmd.Cmd]
	if h == nil {
		w.dropCommand(p, cmd, nowTick, "unknown command")
		return
	}
	ok, reason := h(w, p, cmd, nowTick)
	if !ok {
		w.dropCommand(p, cmd, nowTick, reason)
		return
	}
	if w.cmdLog != nil {
		_ = w.cmdLog.WriteCommand(CommandLogEntry{
			Tick: nowTick, PlayerID: p.ID, Cmd: cmd.Cmd, Accepted: true,
		})
	}
}

func (w *World) dropCommand(p *Player, cmd protocol.CommandMsg, nowTick uint64, reason string) {
	w.log.WithFields(logrus.Fields{
		"player": p.ID,
		"cmd":    cmd.Cmd,
		"reason": reason,
	}).Debug("command dropped")
	if w.cmdLog != nil {
		_ = w.cmdLog.WriteCommand(CommandLogEntry{
			Tick: nowTick, PlayerID: p.ID, Cmd: cmd.Cmd, Accepted: false, Reason: reason,
		})
	}
}
