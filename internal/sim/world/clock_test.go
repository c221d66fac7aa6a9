package world

import "testing"

// At the default time scale one game-hour is 60 real seconds.
const realSecondsPerHour = 3600.0 / 60.0

func TestClock_AdvanceEmitsOneNewDayPerDay(t *testing.T) {
	c := NewClock(1.0, 24, 28)
	days := 0
	// Day starts at 06:00, so 18 game-hours reach the first midnight.
	for i := 0; i < 24*4; i++ {
		for _, ev := range c.Advance(realSecondsPerHour) {
			if ev.Type == "newDay" {
				days++
			}
		}
	}
	if days != 4 {
		t.Fatalf("got %d newDay events over 96 game-hours, want 4", days)
	}
	if c.TotalDays != 4 {
		t.Fatalf("TotalDays = %d, want 4", c.TotalDays)
	}
}

func TestClock_SeasonRollover(t *testing.T) {
	c := NewClock(1.0, 24, 28)
	var seasons, days int
	for i := 0; i < 24*28; i++ {
		for _, ev := range c.Advance(realSecondsPerHour) {
			switch ev.Type {
			case "newDay":
				days++
			case "newSeason":
				seasons++
			}
		}
	}
	if days != 28 {
		t.Fatalf("days = %d, want 28", days)
	}
	if seasons != 1 {
		t.Fatalf("seasons = %d, want 1", seasons)
	}
	if c.Season != 1 || c.Day != 1 {
		t.Fatalf("calendar = season %d day %d, want season 1 day 1", c.Season, c.Day)
	}
}

func TestClock_SeasonWrapsAfterWinter(t *testing.T) {
	c := NewClock(1.0, 24, 28)
	c.Season = 3
	c.Day = 28
	c.Hour = 23.5
	evs := c.Advance(realSecondsPerHour)
	if len(evs) != 2 {
		t.Fatalf("got %d events, want newDay+newSeason", len(evs))
	}
	if c.Season != 0 {
		t.Fatalf("season = %d, want wrap to 0", c.Season)
	}
}

func TestClock_PausedHoldsTime(t *testing.T) {
	c := NewClock(1.0, 24, 28)
	c.Paused = true
	before := c.Hour
	if evs := c.Advance(600); evs != nil {
		t.Fatalf("paused clock emitted events: %v", evs)
	}
	if c.Hour != before || c.TotalHours != 0 {
		t.Fatal("paused clock advanced")
	}
	if c.HoursFor(600) != 0 {
		t.Fatal("paused HoursFor should be 0")
	}
}

func TestClock_TimeScale(t *testing.T) {
	c := NewClock(2.0, 24, 28)
	c.Advance(60) // 60 real seconds at 2 game-minutes/second = 2 game-hours
	if got := c.Hour - 6; got < 1.999 || got > 2.001 {
		t.Fatalf("advanced %v game-hours, want 2", got)
	}
}
