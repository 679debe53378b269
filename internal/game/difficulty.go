package game

// Difficulty selects the AI profile and ball speed scaling.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyNormal:
		return "normal"
	case DifficultyHard:
		return "hard"
	}
	return "unknown"
}

// ParseDifficulty maps a config string to a tier. Unknown values fall
// back to normal.
func ParseDifficulty(s string) (Difficulty, bool) {
	switch s {
	case "easy":
		return DifficultyEasy, true
	case "normal":
		return DifficultyNormal, true
	case "hard":
		return DifficultyHard, true
	}
	return DifficultyNormal, false
}

// DifficultyProfile holds the per-tier tuning values. Speeds are in
// court units per tick at the 60Hz logical rate.
type DifficultyProfile struct {
	AISpeed    float64 // max paddle movement per tick
	AIReaction float64 // proportional gain toward the target
	AIError    float64 // uniform targeting error band (full width)
	BallMul    float64 // multiplier on base/cap ball speeds
	BallSpeed  float64 // serve launch speed before BallMul
}

var difficultyProfiles = map[Difficulty]DifficultyProfile{
	DifficultyEasy:   {AISpeed: 4.2, AIReaction: 0.06, AIError: 70, BallMul: 0.85, BallSpeed: 7},
	DifficultyNormal: {AISpeed: 5.5, AIReaction: 0.09, AIError: 40, BallMul: 1.0, BallSpeed: 7},
	DifficultyHard:   {AISpeed: 7.0, AIReaction: 0.13, AIError: 18, BallMul: 1.15, BallSpeed: 7},
}

// Profile returns the tuning table for a tier.
func (d Difficulty) Profile() DifficultyProfile {
	if p, ok := difficultyProfiles[d]; ok {
		return p
	}
	return difficultyProfiles[DifficultyNormal]
}

// SpawnRate selects how often power-ups appear.
type SpawnRate int

const (
	SpawnRateLow SpawnRate = iota
	SpawnRateNormal
	SpawnRateHigh
)

func (r SpawnRate) String() string {
	switch r {
	case SpawnRateLow:
		return "low"
	case SpawnRateNormal:
		return "normal"
	case SpawnRateHigh:
		return "high"
	}
	return "unknown"
}

// ParseSpawnRate maps a config string to a tier.
func ParseSpawnRate(s string) (SpawnRate, bool) {
	switch s {
	case "low":
		return SpawnRateLow, true
	case "normal":
		return SpawnRateNormal, true
	case "high":
		return SpawnRateHigh, true
	}
	return SpawnRateNormal, false
}

// interval bounds in seconds for reseeding the spawn countdown
var spawnIntervals = map[SpawnRate][2]float64{
	SpawnRateLow:    {12, 20},
	SpawnRateNormal: {8, 14},
	SpawnRateHigh:   {4, 8},
}

// Interval returns the [min,max] spawn delay in seconds for a tier.
func (r SpawnRate) Interval() (float64, float64) {
	b, ok := spawnIntervals[r]
	if !ok {
		b = spawnIntervals[SpawnRateNormal]
	}
	return b[0], b[1]
}
