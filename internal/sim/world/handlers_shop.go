package world

import "farmstead.gg/internal/protocol"

// maxBuyQty bounds one purchase. Quantities past it would overflow the cost
// product and wrap past the coins guard.
const maxBuyQty = 1000

func handleShopBuy(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	price, ok := w.catalogs.Shop.Stock[cmd.Item]
	if !ok {
		return false, "not stocked"
	}
	qty := cmd.Qty
	if qty <= 0 {
		qty = 1
	}
	if qty > maxBuyQty {
		return false, "quantity too large"
	}
	cost := price * qty
	if p.Coins < cost {
		return false, "not enough coins"
	}
	p.Coins -= cost
	p.AddItem(cmd.Item, qty, QualityNormal)
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleShopSell(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	def, ok := w.catalogs.Items.Defs[cmd.Item]
	if !ok || def.SellPrice <= 0 {
		return false, "not sellable"
	}
	qty := cmd.Qty
	if qty <= 0 {
		qty = 1
	}
	if cmd.Quality < int(QualityNormal) || cmd.Quality > int(QualityGold) {
		return false, "bad quality"
	}
	quality := Quality(cmd.Quality)
	if !p.RemoveItem(cmd.Item, qty, quality) {
		return false, "item not held"
	}
	p.Coins += int(float64(def.SellPrice)*quality.SellMultiplier()) * qty
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}

func handleToolUpgrade(w *World, p *Player, cmd protocol.CommandMsg, nowTick uint64) (bool, string) {
	tier, ok := p.ToolTiers[cmd.Item]
	if !ok {
		return false, "unknown tool"
	}
	next := tier + 1
	costs := w.catalogs.Shop.ToolUpgradeCost
	if next >= len(costs) {
		return false, "max tier"
	}
	cost := costs[next]
	if p.Coins < cost {
		return false, "not enough coins"
	}
	p.Coins -= cost
	p.ToolTiers[cmd.Item] = next
	p.AddEvent(protocol.Event{
		"t":    nowTick,
		"type": "tool:upgraded",
		"tool": cmd.Item,
		"tier": next,
	})
	w.queueInventoryUpdate(nowTick, p)
	return true, ""
}
