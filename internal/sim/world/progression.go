package world

import "farmstead.gg/internal/protocol"

// xpForLevel is the xp needed to go from level-1 to level. Monotonically
// increasing so higher levels always cost more.
func xpForLevel(level int) int {
	return level * 100
}

// addSkillXP accumulates xp and resolves any level-ups it causes. Each level
// grants a maxEnergy bonus; levels 5 and 10 additionally flag a pending
// profession choice for the client to resolve later.
func (w *World) addSkillXP(nowTick uint64, p *Player, skill string, amount int) {
	if amount <= 0 {
		return
	}
	s := p.Skills[skill]
	if s == nil {
		s = &Skill{}
		p.Skills[skill] = s
	}
	s.XP += amount

	leveled := false
	for s.Level < w.cfg.SkillMaxLevel && s.XP >= xpForLevel(s.Level+1) {
		s.XP -= xpForLevel(s.Level + 1)
		s.Level++
		p.MaxEnergy += w.cfg.LevelEnergyBonus
		leveled = true

		if s.Level == 5 || s.Level == 10 {
			p.PendingProfessions = append(p.PendingProfessions, s.Level)
			p.AddEvent(protocol.Event{
				"t":     nowTick,
				"type":  "progression:professionChoice",
				"skill": skill,
				"level": s.Level,
			})
		}
	}

	p.AddEvent(protocol.Event{
		"t":     nowTick,
		"type":  "progression:xp",
		"skill": skill,
		"xp":    s.XP,
		"level": s.Level,
	})
	if leveled {
		// Overall level is recomputed from skill levels; it is never stored.
		w.broadcastAll(protocol.Event{
			"t":      nowTick,
			"type":   "world:update",
			"kind":   "levelUp",
			"player": p.ID,
			"skill":  skill,
			"level":  s.Level,
			"total":  p.OverallLevel(),
		})
	}
}
