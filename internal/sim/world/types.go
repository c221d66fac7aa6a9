package world

// TileType is the closed set of terrain kinds a grid cell can hold.
type TileType uint8

const (
	TileGrass TileType = iota
	TileDirt
	TileWater
	TileStone
	TilePath
	TileSand
	TileTilled
)

var tileNames = [...]string{"GRASS", "DIRT", "WATER", "STONE", "PATH", "SAND", "TILLED"}

func (t TileType) String() string {
	if int(t) < len(tileNames) {
		return tileNames[t]
	}
	return "GRASS"
}

// Tillable reports whether a till command may convert this tile.
func (t TileType) Tillable() bool {
	return t == TileDirt || t == TileGrass
}

// CropStage is the discrete crop lifecycle phase. Stages only ever advance.
type CropStage uint8

const (
	StageSeed CropStage = iota
	StageSprout
	StageMature
	StageHarvestable
)

var stageNames = [...]string{"SEED", "SPROUT", "MATURE", "HARVESTABLE"}

func (s CropStage) String() string {
	if int(s) < len(stageNames) {
		return stageNames[s]
	}
	return "SEED"
}

// Quality tiers applied to harvested and animal products.
type Quality uint8

const (
	QualityNormal Quality = iota
	QualitySilver
	QualityGold
)

func (q Quality) String() string {
	switch q {
	case QualityGold:
		return "GOLD"
	case QualitySilver:
		return "SILVER"
	default:
		return "NORMAL"
	}
}

// SellMultiplier scales an item's base sell price by its quality.
func (q Quality) SellMultiplier() float64 {
	switch q {
	case QualityGold:
		return 1.5
	case QualitySilver:
		return 1.25
	default:
		return 1.0
	}
}

// Weather outcomes rolled once per day.
const (
	WeatherSunny  = "sunny"
	WeatherCloudy = "cloudy"
	WeatherRainy  = "rainy"
	WeatherStormy = "stormy"
	WeatherSnowy  = "snowy"
)

// weatherIsWet reports whether the weather waters crops.
func weatherIsWet(weather string) bool {
	return weather == WeatherRainy || weather == WeatherStormy
}

var seasonNames = [...]string{"spring", "summer", "autumn", "winter"}

func SeasonName(season int) string {
	return seasonNames[((season%4)+4)%4]
}

// TileKey addresses one cell of the tile grid.
type TileKey struct {
	X int
	Z int
}

// Skill names tracked by the progression system.
const (
	SkillFarming  = "farming"
	SkillFishing  = "fishing"
	SkillForaging = "foraging"
	SkillSocial   = "social"
)
