package world

import "testing"

func TestCrop_GrowthRateWatered(t *testing.T) {
	dry := &Crop{Stage: StageSeed}
	wet := &Crop{Stage: StageSeed, Watered: true}
	dry.advanceGrowth(10, 4, 0)
	wet.advanceGrowth(10, 4, 0)
	if wet.Growth <= dry.Growth {
		t.Fatalf("watered growth %v not ahead of dry %v", wet.Growth, dry.Growth)
	}
	ratio := wet.Growth / dry.Growth
	if ratio < 1.49 || ratio > 1.51 {
		t.Fatalf("watered/dry ratio = %v, want 1.5", ratio)
	}
}

func TestCrop_StageResetExactlyZero(t *testing.T) {
	c := &Crop{Stage: StageSeed, Watered: true}
	// Wheat: 4 growth days, 3 stages, watered rate 1.5 -> a stage needs
	// 96/3/1.5 = 21.33 game-hours. Push well past the boundary.
	if !c.advanceGrowth(30, 4, 0) {
		t.Fatal("expected stage increment")
	}
	if c.Stage != StageSprout {
		t.Fatalf("stage = %v, want SPROUT", c.Stage)
	}
	if c.Growth != 0 {
		t.Fatalf("growth after increment = %v, want exactly 0", c.Growth)
	}
	if c.Watered {
		t.Fatal("watered flag survives stage increment")
	}
}

func TestCrop_StageMonotoneStopsAtHarvestable(t *testing.T) {
	c := &Crop{Stage: StageSeed}
	for i := 0; i < 1000; i++ {
		c.Watered = true
		c.advanceGrowth(24, 4, 0)
	}
	if c.Stage != StageHarvestable {
		t.Fatalf("stage = %v, want HARVESTABLE", c.Stage)
	}
	if c.advanceGrowth(24, 4, 0) {
		t.Fatal("harvestable crop kept growing")
	}
}

func TestCrop_FertilizerSpeedsGrowth(t *testing.T) {
	plain := &Crop{Stage: StageSeed}
	fert := &Crop{Stage: StageSeed}
	plain.advanceGrowth(10, 8, 0)
	fert.advanceGrowth(10, 8, 0.25)
	ratio := fert.Growth / plain.Growth
	if ratio < 1.24 || ratio > 1.26 {
		t.Fatalf("fertilized/plain ratio = %v, want 1.25", ratio)
	}
}

func TestCrop_RegrowResetsToMature(t *testing.T) {
	c := &Crop{Stage: StageHarvestable, Growth: 0.7, Watered: true}
	c.resetForRegrow()
	if c.Stage != StageMature || c.Growth != 0 || c.Watered {
		t.Fatalf("regrow state = %+v, want MATURE/0/dry", c)
	}
}
