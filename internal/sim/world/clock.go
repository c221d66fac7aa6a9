package world

// ClockEvent is emitted by Advance when a calendar boundary is crossed.
// The clock itself has no side effects; callers react to the events.
type ClockEvent struct {
	Type   string // "newDay" or "newSeason"
	Day    int
	Season int
}

// Clock converts wall-clock deltas into accelerated game time. Single
// process-wide instance, mutated only from the world loop goroutine.
type Clock struct {
	Season int     // 0..3
	Day    int     // 1..DaysPerSeason
	Hour   float64 // [0, HoursPerDay)

	// TimeScale is game-minutes per real second.
	TimeScale     float64
	HoursPerDay   int
	DaysPerSeason int

	Paused bool

	// TotalDays counts day rollovers since world creation; it seeds the
	// daily weather roll so restarts reproduce the same sequence.
	TotalDays int
	// TotalHours accumulates game-hours since boot; machine timers key off it.
	TotalHours float64
}

func NewClock(timeScale float64, hoursPerDay, daysPerSeason int) *Clock {
	if timeScale <= 0 {
		timeScale = 1.0
	}
	if hoursPerDay <= 0 {
		hoursPerDay = 24
	}
	if daysPerSeason <= 0 {
		daysPerSeason = 28
	}
	return &Clock{
		Day:           1,
		Hour:          6, // days start at 06:00
		TimeScale:     timeScale,
		HoursPerDay:   hoursPerDay,
		DaysPerSeason: daysPerSeason,
	}
}

// Advance moves game time forward by deltaRealSeconds of wall-clock time and
// returns any rollover events crossed, in order. A paused clock is a no-op.
func (c *Clock) Advance(deltaRealSeconds float64) []ClockEvent {
	if c.Paused || deltaRealSeconds <= 0 {
		return nil
	}
	gameHours := deltaRealSeconds * c.TimeScale / 60.0
	c.Hour += gameHours
	c.TotalHours += gameHours

	var events []ClockEvent
	for c.Hour >= float64(c.HoursPerDay) {
		c.Hour -= float64(c.HoursPerDay)
		c.Day++
		c.TotalDays++
		if c.Day > c.DaysPerSeason {
			c.Day = 1
			c.Season = (c.Season + 1) % 4
			events = append(events, ClockEvent{Type: "newDay", Day: c.Day, Season: c.Season})
			events = append(events, ClockEvent{Type: "newSeason", Day: c.Day, Season: c.Season})
			continue
		}
		events = append(events, ClockEvent{Type: "newDay", Day: c.Day, Season: c.Season})
	}
	return events
}

// HoursFor reports how many game-hours pass in deltaRealSeconds, without
// advancing the clock. The growth pass uses it for the elapsed interval.
func (c *Clock) HoursFor(deltaRealSeconds float64) float64 {
	if c.Paused || deltaRealSeconds <= 0 {
		return 0
	}
	return deltaRealSeconds * c.TimeScale / 60.0
}
