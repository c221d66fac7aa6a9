package world

import "testing"

func TestUseEnergy_NeverNegative(t *testing.T) {
	p := &Player{Energy: 3, MaxEnergy: 100}
	if !p.UseEnergy(3) {
		t.Fatal("exact spend refused")
	}
	if p.Energy != 0 {
		t.Fatalf("energy = %d, want 0", p.Energy)
	}
	if p.UseEnergy(1) {
		t.Fatal("overspend allowed")
	}
	if p.Energy != 0 {
		t.Fatalf("failed spend mutated energy to %d", p.Energy)
	}
}

func TestInventory_StacksByItemAndQuality(t *testing.T) {
	p := &Player{}
	p.AddItem("wheat", 2, QualityNormal)
	p.AddItem("wheat", 3, QualityNormal)
	p.AddItem("wheat", 1, QualityGold)
	if got := p.CountItem("wheat", QualityNormal); got != 5 {
		t.Fatalf("normal wheat = %d, want 5", got)
	}
	if got := p.CountItem("wheat", QualityGold); got != 1 {
		t.Fatalf("gold wheat = %d, want 1", got)
	}
	if len(p.Inventory) != 2 {
		t.Fatalf("stacks = %d, want 2", len(p.Inventory))
	}
}

func TestInventory_RemovePrunesEmptyStacks(t *testing.T) {
	p := &Player{}
	p.AddItem("hay", 2, QualityNormal)
	if p.RemoveItem("hay", 3, QualityNormal) {
		t.Fatal("removed more than held")
	}
	if got := p.CountItem("hay", QualityNormal); got != 2 {
		t.Fatalf("failed removal mutated stack to %d", got)
	}
	if !p.RemoveItem("hay", 2, QualityNormal) {
		t.Fatal("full removal refused")
	}
	if len(p.Inventory) != 0 {
		t.Fatalf("empty stack not pruned: %v", p.Inventory)
	}
}

func TestInventoryList_SortedAndGhostFree(t *testing.T) {
	p := &Player{}
	p.AddItem("wheat", 1, QualityNormal)
	p.AddItem("egg", 1, QualityNormal)
	p.AddItem("carp", 1, QualityNormal)
	list := p.InventoryList()
	for i := 1; i < len(list); i++ {
		if list[i-1].ItemID > list[i].ItemID {
			t.Fatalf("listing not sorted: %v", list)
		}
	}
}

func TestRateLimitAllow_Window(t *testing.T) {
	p := &Player{}
	p.initDefaults(100, 0)
	allowed := 0
	for i := 0; i < 10; i++ {
		if p.RateLimitAllow("move", 0, 10, 5) {
			allowed++
		}
	}
	if allowed != 5 {
		t.Fatalf("allowed %d in window, want 5", allowed)
	}
	if !p.RateLimitAllow("move", 10, 10, 5) {
		t.Fatal("new window did not reset the budget")
	}
}
