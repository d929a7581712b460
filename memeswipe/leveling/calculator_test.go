package leveling

import "testing"

func TestCumulativeExperienceStepMatchesRequirement(t *testing.T) {
	for level := 1; level <= 200; level++ {
		step := CumulativeExperienceAtLevelStart(level+1) - CumulativeExperienceAtLevelStart(level)
		want := int64(level) * int64(level) * 100
		if step != want {
			t.Fatalf("level %d: cumulative step = %d, want %d", level, step, want)
		}
		if got := ExperienceRequiredForLevel(level); got != want {
			t.Fatalf("level %d: ExperienceRequiredForLevel() = %d, want %d", level, got, want)
		}
	}
}

func TestCumulativeExperienceAtLevelStart(t *testing.T) {
	tests := []struct {
		level int
		want  int64
	}{
		{level: 1, want: 0},
		{level: 2, want: 100},
		{level: 3, want: 500},
		{level: 4, want: 1400},
		{level: 5, want: 3000},
	}

	for _, tt := range tests {
		if got := CumulativeExperienceAtLevelStart(tt.level); got != tt.want {
			t.Errorf("CumulativeExperienceAtLevelStart(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestApplyExperience(t *testing.T) {
	tests := []struct {
		name       string
		level      int
		experience int64
		delta      int64
		wantLevel  int
		wantGained int
	}{
		{name: "no level", level: 1, experience: 0, delta: 99, wantLevel: 1, wantGained: 0},
		{name: "exact threshold", level: 1, experience: 0, delta: 100, wantLevel: 2, wantGained: 1},
		{name: "single level", level: 1, experience: 0, delta: 250, wantLevel: 2, wantGained: 1},
		{name: "cascade two levels", level: 1, experience: 0, delta: 600, wantLevel: 3, wantGained: 2},
		{name: "cascade from mid level", level: 2, experience: 450, delta: 2600, wantLevel: 5, wantGained: 3},
		{name: "zero delta", level: 3, experience: 700, delta: 0, wantLevel: 3, wantGained: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyExperience(tt.level, tt.experience, tt.delta)
			if got.NewLevel != tt.wantLevel {
				t.Errorf("NewLevel = %d, want %d", got.NewLevel, tt.wantLevel)
			}
			if got.LevelsGained != tt.wantGained {
				t.Errorf("LevelsGained = %d, want %d", got.LevelsGained, tt.wantGained)
			}
			if got.OldLevel != tt.level {
				t.Errorf("OldLevel = %d, want %d", got.OldLevel, tt.level)
			}
			if got.Experience != tt.experience+tt.delta {
				t.Errorf("Experience = %d, want %d", got.Experience, tt.experience+tt.delta)
			}
			if got.Leveled() != (tt.wantGained > 0) {
				t.Errorf("Leveled() = %v", got.Leveled())
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	p := Describe(2, 250)

	if p.ExpInCurrentLevel != 150 {
		t.Errorf("ExpInCurrentLevel = %d, want 150", p.ExpInCurrentLevel)
	}
	if p.ExpRequiredForNextLevel != 400 {
		t.Errorf("ExpRequiredForNextLevel = %d, want 400", p.ExpRequiredForNextLevel)
	}
	if p.ExpPercentage != 0.375 {
		t.Errorf("ExpPercentage = %v, want 0.375", p.ExpPercentage)
	}
	if p.ExpToNextLevel != 250 {
		t.Errorf("ExpToNextLevel = %d, want 250", p.ExpToNextLevel)
	}

	// experience below the level start clamps to zero
	clamped := Describe(3, 100)
	if clamped.ExpInCurrentLevel != 0 || clamped.ExpPercentage != 0 {
		t.Errorf("clamped progress = %+v", clamped)
	}
}

func TestLevelUpBonus(t *testing.T) {
	if got := LevelUpBonus(1, 1); got != 0 {
		t.Errorf("LevelUpBonus(1, 1) = %d, want 0", got)
	}
	if got := LevelUpBonus(1, 2); got != 100 {
		t.Errorf("LevelUpBonus(1, 2) = %d, want 100", got)
	}
	// levels 2 and 3: 100 + 150
	if got := LevelUpBonus(1, 3); got != 250 {
		t.Errorf("LevelUpBonus(1, 3) = %d, want 250", got)
	}
}
