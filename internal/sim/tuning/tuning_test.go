package tuning

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ShippedTuning(t *testing.T) {
	tn, err := Load(filepath.Join("..", "..", "..", "configs", "tuning.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tn.TickRateHz <= 0 {
		t.Fatalf("tick_rate_hz = %d", tn.TickRateHz)
	}
	if tn.TimeScale <= 0 {
		t.Fatalf("time_scale = %v", tn.TimeScale)
	}
	if tn.HoursPerDay != 24 || tn.DaysPerSeason != 28 {
		t.Fatalf("calendar = %d/%d, want 24/28", tn.HoursPerDay, tn.DaysPerSeason)
	}
}

func TestLoad_BadYAMLFails(t *testing.T) {
	p := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(p, []byte("tick_rate_hz: [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(p); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDefaults_Complete(t *testing.T) {
	d := Defaults()
	if d.TickRateHz != 10 || d.TimeScale != 1.0 {
		t.Fatalf("defaults = %+v", d)
	}
	if d.Energy.Till == 0 || d.Energy.Cast == 0 {
		t.Fatal("default energy costs missing")
	}
}
