package world

type WorldConfig struct {
	ID   string
	Seed int64

	TickRateHz    int
	TimeScale     float64 // game-minutes per real second
	HoursPerDay   int
	DaysPerSeason int

	Size int // tile grid edge length

	EnergyTill    int
	EnergyWater   int
	EnergyHarvest int
	EnergyCast    int

	SkillMaxLevel     int
	LevelEnergyBonus  int
	StartingCoins     int
	StartingMaxEnergy int

	RateLimits RateLimitConfig
}

type RateLimitConfig struct {
	MoveWindowTicks uint64
	MoveMax         int
	TalkWindowTicks uint64
	TalkMax         int
}

func (c *WorldConfig) applyDefaults() {
	if c.ID == "" {
		c.ID = "world_1"
	}
	if c.TickRateHz <= 0 {
		c.TickRateHz = 10
	}
	if c.TimeScale <= 0 {
		c.TimeScale = 1.0
	}
	if c.HoursPerDay <= 0 {
		c.HoursPerDay = 24
	}
	if c.DaysPerSeason <= 0 {
		c.DaysPerSeason = 28
	}
	if c.Size <= 0 {
		c.Size = 96
	}
	if c.EnergyTill <= 0 {
		c.EnergyTill = 2
	}
	if c.EnergyWater <= 0 {
		c.EnergyWater = 1
	}
	if c.EnergyCast <= 0 {
		c.EnergyCast = 5
	}
	if c.SkillMaxLevel <= 0 {
		c.SkillMaxLevel = 10
	}
	if c.LevelEnergyBonus <= 0 {
		c.LevelEnergyBonus = 2
	}
	if c.StartingCoins <= 0 {
		c.StartingCoins = 500
	}
	if c.StartingMaxEnergy <= 0 {
		c.StartingMaxEnergy = 100
	}
	if c.RateLimits.MoveWindowTicks == 0 {
		c.RateLimits.MoveWindowTicks = 10
	}
	if c.RateLimits.MoveMax <= 0 {
		c.RateLimits.MoveMax = 20
	}
	if c.RateLimits.TalkWindowTicks == 0 {
		c.RateLimits.TalkWindowTicks = 50
	}
	if c.RateLimits.TalkMax <= 0 {
		c.RateLimits.TalkMax = 5
	}
}
