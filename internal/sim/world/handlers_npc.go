package world

import "farmstead.gg/internal/protocol"

func handleNPCTalk(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	npc, ok := w.npcs[cmd.Target]
	if !ok {
		return false, "unknown npc"
	}
	if !p.RateLimitAllow("talk", nowTick, w.cfg.RateLimits.TalkWindowTicks, w.cfg.RateLimits.TalkMax) {
		return false, "rate limited"
	}

	rel := w.relationship(p.ID, npc.ID)
	if !rel.TalkedToday {
		rel.TalkedToday = true
		rel.addHearts(1)
		w.addSkillXP(nowTick, p, SkillSocial, 5)
		// Hearts changes are flushed eagerly so a crash between checkpoints
		// never loses relationship progress.
		w.flushRelationship(rel)
	}
	p.AddEvent(protocol.Event{
		"t":      nowTick,
		"type":   "npc:dialogue",
		"npc":    npc.ID,
		"hearts": rel.Hearts,
	})
	return true, ""
}

func handleNPCGift(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	npc, ok := w.npcs[cmd.Target]
	if !ok {
		return false, "unknown npc"
	}
	def, ok := w.catalogs.NPCs.Defs[npc.ID]
	if !ok {
		return false, "unknown npc"
	}
	if !p.RemoveItem(cmd.Item, 1, Quality(cmd.Quality)) {
		return false, "item not held"
	}

	delta := 1
	switch {
	case contains(def.Loves, cmd.Item):
		delta = 2
	case contains(def.Dislikes, cmd.Item):
		delta = -1
	}
	rel := w.relationship(p.ID, npc.ID)
	rel.addHearts(delta)
	if delta > 0 {
		w.addSkillXP(nowTick, p, SkillSocial, delta*10)
	}
	w.flushRelationship(rel)

	p.AddEvent(protocol.Event{
		"t":      nowTick,
		"type":   "npc:giftReaction",
		"npc":    npc.ID,
		"delta":  delta,
		"hearts": rel.Hearts,
	})
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
