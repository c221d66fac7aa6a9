package world

import "testing"

func TestWeatherForDay_Deterministic(t *testing.T) {
	for day := 0; day < 100; day++ {
		a := WeatherForDay(42, day, day%4)
		b := WeatherForDay(42, day, day%4)
		if a != b {
			t.Fatalf("day %d: %s vs %s", day, a, b)
		}
	}
}

func TestWeatherForDay_ValidOutcomes(t *testing.T) {
	valid := map[string]bool{
		WeatherSunny: true, WeatherCloudy: true,
		WeatherRainy: true, WeatherStormy: true, WeatherSnowy: true,
	}
	for season := 0; season < 4; season++ {
		for day := 0; day < 500; day++ {
			wx := WeatherForDay(7, day, season)
			if !valid[wx] {
				t.Fatalf("season %d day %d: unknown weather %q", season, day, wx)
			}
			if wx == WeatherSnowy && season != 3 {
				t.Fatalf("snow in season %d", season)
			}
		}
	}
}

func TestWeatherForDay_SeedsDiffer(t *testing.T) {
	same := 0
	for day := 0; day < 200; day++ {
		if WeatherForDay(1, day, 0) == WeatherForDay(2, day, 0) {
			same++
		}
	}
	if same == 200 {
		t.Fatal("two seeds produced identical weather sequences")
	}
}
