package world

// Crop is owned exclusively by the world's entity maps: created on a
// successful plant command, destroyed on harvest of a non-regrowable type
// (the tile reverts to TILLED) or reset to MATURE for a regrowable one.
type Crop struct {
	ID       string
	TileX    int
	TileZ    int
	CropType string

	Stage   CropStage
	Growth  float64 // [0,1); reset to exactly 0 whenever Stage increments
	Watered bool
	// Fertilizer references a fertilizer catalog id, or "" when unfertilized.
	Fertilizer string
}

// growthStages is the number of stage transitions between SEED and
// HARVESTABLE; it spreads a crop's total growth time evenly across stages.
const growthStages = 3

// advanceGrowth moves the crop forward by gameHours of in-game time.
// Returns true when the stage incremented this call.
func (c *Crop) advanceGrowth(gameHours float64, growthDays int, fertBonus float64) bool {
	if c.Stage >= StageHarvestable || gameHours <= 0 {
		return false
	}
	rate := 1.0
	if c.Watered {
		rate = 1.5
	}
	rate *= 1 + fertBonus

	totalGrowthHours := float64(growthDays) * 24
	c.Growth += (growthStages / totalGrowthHours) * rate * gameHours
	if c.Growth < 1 {
		return false
	}
	c.Growth = 0
	c.Watered = false
	c.Stage++
	return true
}

// resetForRegrow puts a regrowable crop back into production after harvest.
func (c *Crop) resetForRegrow() {
	c.Stage = StageMature
	c.Growth = 0
	c.Watered = false
}
