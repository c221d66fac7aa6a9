package world

import "farmstead.gg/internal/protocol"

func handleAnimalFeed(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	a, ok := w.animals[cmd.Target]
	if !ok {
		return false, "unknown animal"
	}
	if a.FedToday {
		return false, "already fed"
	}
	if !p.RemoveItem(a.Feed, 1, QualityNormal) {
		return false, "feed not held"
	}
	a.FedToday = true
	a.Happiness += 5
	if a.Happiness > 100 {
		a.Happiness = 100
	}
	w.addSkillXP(nowTick, p, SkillFarming, 4)
	w.broadcastAnimal(nowTick, a)
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleAnimalCollect(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	a, ok := w.animals[cmd.Target]
	if !ok {
		return false, "unknown animal"
	}
	if !a.ProductReady {
		return false, "no product"
	}
	a.ProductReady = false
	p.AddItem(a.Product, 1, a.productQuality())
	w.addSkillXP(nowTick, p, SkillFarming, 6)
	w.broadcastAnimal(nowTick, a)
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handlePetPlay(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	pet := w.petOf(p.ID)
	if pet == nil {
		return false, "no pet"
	}
	if pet.PlayedToday {
		return false, "already played"
	}
	pet.PlayedToday = true
	pet.Loyalty += 5
	if pet.Loyalty > 100 {
		pet.Loyalty = 100
	}
	p.AddEvent(protocol.Event{
		"t":       nowTick,
		"type":    "pet:played",
		"pet":     pet.ID,
		"loyalty": pet.Loyalty,
	})
	return true, ""
}

func (w *World) petOf(playerID string) *Pet {
	for _, pet := range w.pets {
		if pet.OwnerID == playerID {
			return pet
		}
	}
	return nil
}
