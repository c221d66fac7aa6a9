package catalogs

import (
	"path/filepath"
	"testing"
)

func loadShipped(t *testing.T) Catalogs {
	t.Helper()
	c, err := Load(filepath.Join("..", "..", "..", "configs"))
	if err != nil {
		t.Fatalf("load shipped configs: %v", err)
	}
	return c
}

func TestLoad_ShippedConfigs(t *testing.T) {
	c := loadShipped(t)

	if len(c.Crops.Defs) == 0 || len(c.Fish.Defs) == 0 || len(c.Items.Defs) == 0 {
		t.Fatal("shipped catalogs empty")
	}
	for id, def := range c.Crops.Defs {
		if def.SeedItem == "" || def.Produce == "" {
			t.Fatalf("crop %s missing seed/produce", id)
		}
		if _, ok := c.Items.Defs[def.SeedItem]; !ok {
			t.Fatalf("crop %s seed item %s not in items.json", id, def.SeedItem)
		}
		if _, ok := c.Items.Defs[def.Produce]; !ok {
			t.Fatalf("crop %s produce %s not in items.json", id, def.Produce)
		}
	}
	for _, f := range c.Fish.Defs {
		if _, ok := c.Items.Defs[f.ID]; !ok {
			t.Fatalf("fish %s not in items.json", f.ID)
		}
	}
	for item := range c.Shop.Stock {
		if _, ok := c.Items.Defs[item]; !ok {
			t.Fatalf("shop stock %s not in items.json", item)
		}
	}
	for id, r := range c.Recipes.ByID {
		if _, ok := c.Items.Defs[r.Output.Item]; !ok {
			t.Fatalf("recipe %s output %s not in items.json", id, r.Output.Item)
		}
	}
}

func TestLoad_DigestsStableAndDistinct(t *testing.T) {
	a := loadShipped(t)
	b := loadShipped(t)
	if a.Crops.Digest != b.Crops.Digest || a.Fish.Digest != b.Fish.Digest {
		t.Fatal("digest changed between identical loads")
	}
	if a.Crops.Digest == "" || len(a.Crops.Digest) != 64 {
		t.Fatalf("crops digest = %q, want sha256 hex", a.Crops.Digest)
	}
	if a.Crops.Digest == a.Fish.Digest {
		t.Fatal("distinct catalogs share a digest")
	}
}

func TestLoad_MissingDirFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing config dir")
	}
}
