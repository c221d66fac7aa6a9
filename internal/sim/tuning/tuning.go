package tuning

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Tuning struct {
	ProtocolVersion string `yaml:"protocol_version"`

	TickRateHz int `yaml:"tick_rate_hz"`
	// TimeScale is game-minutes advanced per real second.
	TimeScale     float64 `yaml:"time_scale"`
	HoursPerDay   int     `yaml:"hours_per_day"`
	DaysPerSeason int     `yaml:"days_per_season"`

	WorldSize int `yaml:"world_size"`

	Energy EnergyCosts `yaml:"energy"`

	SkillMaxLevel     int `yaml:"skill_max_level"`
	LevelEnergyBonus  int `yaml:"level_energy_bonus"`
	StartingCoins     int `yaml:"starting_coins"`
	StartingMaxEnergy int `yaml:"starting_max_energy"`

	RateLimits RateLimits `yaml:"rate_limits"`
}

type EnergyCosts struct {
	Till    int `yaml:"till"`
	Water   int `yaml:"water"`
	Harvest int `yaml:"harvest"`
	Cast    int `yaml:"cast"`
}

type RateLimits struct {
	MoveWindowTicks int `yaml:"move_window_ticks"`
	MoveMax         int `yaml:"move_max"`
	TalkWindowTicks int `yaml:"talk_window_ticks"`
	TalkMax         int `yaml:"talk_max"`
}

func Load(path string) (Tuning, error) {
	var t Tuning
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, err
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning.yaml: %w", err)
	}
	return t, nil
}

func Defaults() Tuning {
	return Tuning{
		ProtocolVersion:   "1.0",
		TickRateHz:        10,
		TimeScale:         1.0,
		HoursPerDay:       24,
		DaysPerSeason:     28,
		WorldSize:         96,
		Energy:            EnergyCosts{Till: 2, Water: 1, Harvest: 0, Cast: 5},
		SkillMaxLevel:     10,
		LevelEnergyBonus:  2,
		StartingCoins:     500,
		StartingMaxEnergy: 100,
		RateLimits: RateLimits{
			MoveWindowTicks: 10,
			MoveMax:         20,
			TalkWindowTicks: 50,
			TalkMax:         5,
		},
	}
}
