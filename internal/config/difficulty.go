package config

// TimerCurve shapes the level timer as levels go up. Timer amounts are
// 16.16 fixed point; a level is won when the timer climbs from 100 to 256.
type TimerCurve struct {
	Drain           float64 `yaml:"drain"`             // timer lost per second, approached as levels grow
	DrainPerLevel   float64 `yaml:"drain_per_level"`   // extra drain per level
	HandBonus       float64 `yaml:"hand_bonus"`        // timer gained per progress point, scaled down by level
	HandBonusOffset float64 `yaml:"hand_bonus_offset"` // levels added before scaling HandBonus
	GraceSeconds    float64 `yaml:"grace_seconds"`     // quiet time before the timer drains, scaled down by level
	SpeedUp         float64 `yaml:"speed_up"`          // drain added four times a second
	HintBase        int     `yaml:"hint_base"`         // seconds without a hand before hints start
	HintPerLevel    int     `yaml:"hint_per_level"`
	HintMax         int     `yaml:"hint_max"`
}

// DefaultTimerCurve returns the standard curve.
func DefaultTimerCurve() TimerCurve {
	return TimerCurve{
		Drain:           240000,
		DrainPerLevel:   13000,
		HandBonus:       65536 * 22,
		HandBonusOffset: 60,
		GraceSeconds:    15,
		SpeedUp:         20,
		HintBase:        4,
		HintPerLevel:    4,
		HintMax:         20,
	}
}

// IsZero reports whether no field is set.
func (c TimerCurve) IsZero() bool {
	return c == TimerCurve{}
}

// TimeEffect returns the timer change per second at a level. It is negative.
func (c TimerCurve) TimeEffect(level int) float64 {
	lv := float64(level)
	return -float64(int(c.Drain*(1-5/(lv+6)))) - lv*c.DrainPerLevel
}

// BlockEffect returns the timer change per progress point at a level.
// The quotient is truncated like the other 16.16 amounts.
func (c TimerCurve) BlockEffect(level int) float64 {
	d := level + int(c.HandBonusOffset)
	if d <= 0 {
		return 0
	}
	return float64(int(c.HandBonus) / d)
}

// GraceTime returns the 16.16 seconds without a hand before the timer
// starts draining.
func (c TimerCurve) GraceTime(level int) int {
	return max(int(65536*c.GraceSeconds)/(3+level), 0)
}

// HintDelay returns the seconds without a hand before hints may show.
func (c TimerCurve) HintDelay(level int) int {
	return min(c.HintBase+c.HintPerLevel*level, c.HintMax)
}
