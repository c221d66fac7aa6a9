package world

// Season-conditioned weather probability tables. Probabilities are walked
// cumulatively against a single deterministic draw, so every process rolls
// the same weather for the same (seed, day).
type weatherChance struct {
	Weather string
	P       float64
}

var seasonWeather = [4][]weatherChance{
	// spring
	{{WeatherSunny, 0.40}, {WeatherCloudy, 0.25}, {WeatherRainy, 0.30}, {WeatherStormy, 0.05}},
	// summer
	{{WeatherSunny, 0.60}, {WeatherCloudy, 0.20}, {WeatherRainy, 0.10}, {WeatherStormy, 0.10}},
	// autumn
	{{WeatherSunny, 0.40}, {WeatherCloudy, 0.30}, {WeatherRainy, 0.25}, {WeatherStormy, 0.05}},
	// winter
	{{WeatherSunny, 0.25}, {WeatherCloudy, 0.30}, {WeatherSnowy, 0.40}, {WeatherStormy, 0.05}},
}

const saltWeather = 0x3EA7

// WeatherForDay rolls the weather for one day. Pure function of
// (seed, rollCount, season); the rollCount is the world's total day counter.
// The rain side effect is applied by the day-rollover orchestration, not
// here.
func WeatherForDay(seed int64, rollCount int, season int) string {
	table := seasonWeather[((season%4)+4)%4]
	r := float64(hash2(seed+saltWeather, rollCount, season)>>11) / float64(1<<53)

	sum := 0.0
	for _, wc := range table {
		sum += wc.P
		if r < sum {
			return wc.Weather
		}
	}
	// Rounding fallthrough: the last entry wins.
	return table[len(table)-1].Weather
}
