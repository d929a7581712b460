package leveling

// BaseExpPerLevel is the multiplier of the polynomial curve: level N needs N^2 * 100
// experience to advance to N+1.
const BaseExpPerLevel = 100

// BonusDiamondsPerLevel is paid once for every level reached, multiplied by that level.
const BonusDiamondsPerLevel = 50

// ExperienceRequiredForLevel returns the experience needed to go from level to level+1.
func ExperienceRequiredForLevel(level int) int64 {
	if level < 1 {
		return 0
	}
	l := int64(level)
	return l * l * BaseExpPerLevel
}

// CumulativeExperienceAtLevelStart returns the total experience a user holds the moment
// they reach level. Level 1 starts at 0.
func CumulativeExperienceAtLevelStart(level int) int64 {
	if level <= 1 {
		return 0
	}
	// closed form of sum_{i=1}^{n} i^2 with n = level-1
	n := int64(level - 1)
	return n * (n + 1) * (2*n + 1) / 6 * BaseExpPerLevel
}

// Describe derives the progress fields for a (level, experience) pair. The result is
// never persisted.
func Describe(level int, experience int64) Progress {
	if level < 1 {
		level = 1
	}
	start := CumulativeExperienceAtLevelStart(level)
	next := CumulativeExperienceAtLevelStart(level + 1)

	inLevel := experience - start
	if inLevel < 0 {
		inLevel = 0
	}
	required := ExperienceRequiredForLevel(level)

	var pct float64
	if required > 0 {
		pct = float64(inLevel) / float64(required)
	}

	return Progress{
		Level:                   level,
		Experience:              experience,
		ExpInCurrentLevel:       inLevel,
		ExpRequiredForNextLevel: required,
		ExpPercentage:           pct,
		TotalXPForCurrentLevel:  start,
		TotalXPForNextLevel:     next,
		ExpToNextLevel:          next - experience,
	}
}

// ApplyExperience credits delta to experience and walks the level up for as long as the
// new total crosses the next threshold, so one credit can gain several levels.
//
// delta must be non-negative; the curve only moves forward.
func ApplyExperience(level int, experience, delta int64) LevelUp {
	if level < 1 {
		level = 1
	}
	total := experience + delta

	newLevel := level
	for total >= CumulativeExperienceAtLevelStart(newLevel+1) {
		newLevel++
	}

	return LevelUp{
		OldLevel:     level,
		NewLevel:     newLevel,
		LevelsGained: newLevel - level,
		Experience:   total,
	}
}

// LevelUpBonus sums level * BonusDiamondsPerLevel over every level reached after
// oldLevel up to and including newLevel.
func LevelUpBonus(oldLevel, newLevel int) int64 {
	var bonus int64
	for l := oldLevel + 1; l <= newLevel; l++ {
		bonus += int64(l) * BonusDiamondsPerLevel
	}
	return bonus
}
