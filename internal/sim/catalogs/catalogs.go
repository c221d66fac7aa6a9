package catalogs

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Catalogs is the static content the simulation validates commands against.
// Loaded once at boot from the configs directory; never mutated.
type Catalogs struct {
	Crops       CropCatalog
	Fish        FishCatalog
	Items       ItemCatalog
	Fertilizers FertilizerCatalog
	Recipes     RecipeCatalog
	NPCs        NPCCatalog
	Shop        ShopCatalog
}

type CropCatalog struct {
	Defs   map[string]CropDef
	Digest string
}

type CropDef struct {
	ID         string `json:"id"`
	SeedItem   string `json:"seed_item"`
	Produce    string `json:"produce"`
	GrowthDays int    `json:"growth_days"`
	Regrows    bool   `json:"regrows"`
	HarvestXP  int    `json:"harvest_xp"`
}

type FishCatalog struct {
	Defs   []FishDef
	Digest string
}

type FishDef struct {
	ID       string `json:"id"`
	Location string `json:"location"` // "pond", "river"
	Seasons  []int  `json:"seasons"`  // empty = all
	Time     string `json:"time"`     // "day", "night", "rain", "any"
	Rarity   int    `json:"rarity"`   // 0..3
	MinLevel int    `json:"min_level"`
	CatchXP  int    `json:"catch_xp"`
}

type ItemCatalog struct {
	Defs   map[string]ItemDef
	Digest string
}

type ItemDef struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"` // "SEED","PRODUCE","FISH","MATERIAL","FEED","EQUIP"
	SellPrice int    `json:"sell_price"`
}

type FertilizerCatalog struct {
	Defs   map[string]FertilizerDef
	Digest string
}

type FertilizerDef struct {
	ID         string  `json:"id"`
	SpeedBonus float64 `json:"speed_bonus"`
}

type RecipeCatalog struct {
	ByID   map[string]RecipeDef
	Digest string
}

type RecipeDef struct {
	RecipeID  string      `json:"recipe_id"`
	Machine   string      `json:"machine"`
	Inputs    []ItemCount `json:"inputs"`
	Output    ItemCount   `json:"output"`
	TimeHours float64     `json:"time_hours"`
}

type ItemCount struct {
	Item  string `json:"item"`
	Count int    `json:"count"`
}

type NPCCatalog struct {
	Defs   map[string]NPCDef
	Digest string
}

type NPCDef struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	X        int      `json:"x"`
	Z        int      `json:"z"`
	Loves    []string `json:"loves"`
	Dislikes []string `json:"dislikes"`
}

type ShopCatalog struct {
	// Stock maps item id -> buy price in coins.
	Stock  map[string]int
	Digest string

	// Animals the world is seeded with on first boot.
	Animals []AnimalDef
	// ToolUpgradeCost maps tier -> upgrade cost in coins (index 0 unused).
	ToolUpgradeCost []int
}

type AnimalDef struct {
	Kind    string `json:"kind"`
	Name    string `json:"name"`
	Product string `json:"product"`
	Feed    string `json:"feed"`
}

type shopFile struct {
	Stock           map[string]int `json:"stock"`
	Animals         []AnimalDef    `json:"animals"`
	ToolUpgradeCost []int          `json:"tool_upgrade_cost"`
}

func Load(dir string) (Catalogs, error) {
	var c Catalogs

	var crops []CropDef
	if err := readJSON(dir, "crops.json", &crops); err != nil {
		return c, err
	}
	c.Crops.Defs = map[string]CropDef{}
	for _, def := range crops {
		if def.ID == "" || def.GrowthDays <= 0 {
			return c, fmt.Errorf("crops.json: bad def %q", def.ID)
		}
		c.Crops.Defs[def.ID] = def
	}
	c.Crops.Digest = digestOf(crops)

	if err := readJSON(dir, "fish.json", &c.Fish.Defs); err != nil {
		return c, err
	}
	for _, f := range c.Fish.Defs {
		if f.Rarity < 0 || f.Rarity > 3 {
			return c, fmt.Errorf("fish.json: %s rarity out of range", f.ID)
		}
	}
	c.Fish.Digest = digestOf(c.Fish.Defs)

	var items []ItemDef
	if err := readJSON(dir, "items.json", &items); err != nil {
		return c, err
	}
	c.Items.Defs = map[string]ItemDef{}
	for _, def := range items {
		c.Items.Defs[def.ID] = def
	}
	c.Items.Digest = digestOf(items)

	var ferts []FertilizerDef
	if err := readJSON(dir, "fertilizers.json", &ferts); err != nil {
		return c, err
	}
	c.Fertilizers.Defs = map[string]FertilizerDef{}
	for _, def := range ferts {
		c.Fertilizers.Defs[def.ID] = def
	}
	c.Fertilizers.Digest = digestOf(ferts)

	var recipes []RecipeDef
	if err := readJSON(dir, "recipes.json", &recipes); err != nil {
		return c, err
	}
	c.Recipes.ByID = map[string]RecipeDef{}
	for _, def := range recipes {
		c.Recipes.ByID[def.RecipeID] = def
	}
	c.Recipes.Digest = digestOf(recipes)

	var npcs []NPCDef
	if err := readJSON(dir, "npcs.json", &npcs); err != nil {
		return c, err
	}
	c.NPCs.Defs = map[string]NPCDef{}
	for _, def := range npcs {
		c.NPCs.Defs[def.ID] = def
	}
	c.NPCs.Digest = digestOf(npcs)

	var shop shopFile
	if err := readJSON(dir, "shop.json", &shop); err != nil {
		return c, err
	}
	c.Shop.Stock = shop.Stock
	c.Shop.Animals = shop.Animals
	c.Shop.ToolUpgradeCost = shop.ToolUpgradeCost
	c.Shop.Digest = digestOf(shop)

	return c, nil
}

func readJSON(dir, name string, v any) error {
	raw, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("catalogs: %w", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("catalogs: %s: %w", name, err)
	}
	return nil
}

// digestOf hashes the canonical JSON encoding so every process computes the
// same digest for the same content.
func digestOf(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
