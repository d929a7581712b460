package leveling

// Progress holds the values derived from a user's level and experience.
type Progress struct {
	Level                   int     `json:"level"`
	Experience              int64   `json:"experience"`
	ExpInCurrentLevel       int64   `json:"exp_in_current_level"`
	ExpRequiredForNextLevel int64   `json:"exp_required_for_next_level"`
	ExpPercentage           float64 `json:"exp_percentage"`
	TotalXPForCurrentLevel  int64   `json:"total_xp_for_current_level"`
	TotalXPForNextLevel     int64   `json:"total_xp_for_next_level"`
	ExpToNextLevel          int64   `json:"exp_to_next_level"`
}

// LevelUp is the result of crediting experience.
type LevelUp struct {
	OldLevel     int   `json:"old_level"`
	NewLevel     int   `json:"new_level"`
	LevelsGained int   `json:"levels_gained"`
	Experience   int64 `json:"experience"`
}

// Leveled reports whether at least one level was gained.
func (l LevelUp) Leveled() bool {
	return l.LevelsGained > 0
}
