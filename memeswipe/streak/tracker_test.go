package streak

import (
	"testing"
	"time"
)

var today = Date{Year: 2025, Month: time.March, Day: 12}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name        string
		state       State
		wantStatus  Status
		wantState   State
		wantLost    int
		wantMissed  int
		wantChanged bool
	}{
		{
			name:        "first activity",
			state:       State{},
			wantStatus:  StatusNew,
			wantState:   State{Streak: 1, LongestStreak: 1, LastActiveDate: today},
			wantChanged: true,
		},
		{
			name:        "no date ignores stale streak value",
			state:       State{Streak: 9, LongestStreak: 12},
			wantStatus:  StatusNew,
			wantState:   State{Streak: 1, LongestStreak: 12, LastActiveDate: today},
			wantChanged: true,
		},
		{
			name:        "zero streak with a date",
			state:       State{Streak: 0, LongestStreak: 0, LastActiveDate: today.AddDays(-1)},
			wantStatus:  StatusNew,
			wantState:   State{Streak: 1, LongestStreak: 1, LastActiveDate: today},
			wantChanged: true,
		},
		{
			name:       "same day",
			state:      State{Streak: 4, LongestStreak: 7, LastActiveDate: today},
			wantStatus: StatusMaintained,
			wantState:  State{Streak: 4, LongestStreak: 7, LastActiveDate: today},
		},
		{
			name:        "yesterday extends",
			state:       State{Streak: 5, LongestStreak: 5, LastActiveDate: today.AddDays(-1)},
			wantStatus:  StatusExtended,
			wantState:   State{Streak: 6, LongestStreak: 6, LastActiveDate: today},
			wantChanged: true,
		},
		{
			name:        "yesterday keeps larger longest",
			state:       State{Streak: 5, LongestStreak: 30, LastActiveDate: today.AddDays(-1)},
			wantStatus:  StatusExtended,
			wantState:   State{Streak: 6, LongestStreak: 30, LastActiveDate: today},
			wantChanged: true,
		},
		{
			name:        "gap loses streak",
			state:       State{Streak: 5, LongestStreak: 5, LastActiveDate: today.AddDays(-3)},
			wantStatus:  StatusLost,
			wantState:   State{Streak: 1, LongestStreak: 5, LastActiveDate: today},
			wantLost:    5,
			wantMissed:  3,
			wantChanged: true,
		},
		{
			name:        "gap with streak of one starts new",
			state:       State{Streak: 1, LongestStreak: 3, LastActiveDate: today.AddDays(-2)},
			wantStatus:  StatusNew,
			wantState:   State{Streak: 1, LongestStreak: 3, LastActiveDate: today},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := Evaluate(tt.state, today)
			if res.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", res.Status, tt.wantStatus)
			}
			if got != tt.wantState {
				t.Errorf("State = %+v, want %+v", got, tt.wantState)
			}
			if res.Streak != tt.wantState.Streak {
				t.Errorf("Result.Streak = %d, want %d", res.Streak, tt.wantState.Streak)
			}
			if res.LostStreak != tt.wantLost {
				t.Errorf("LostStreak = %d, want %d", res.LostStreak, tt.wantLost)
			}
			if res.DaysMissed != tt.wantMissed {
				t.Errorf("DaysMissed = %d, want %d", res.DaysMissed, tt.wantMissed)
			}
			if res.Changed != tt.wantChanged {
				t.Errorf("Changed = %v, want %v", res.Changed, tt.wantChanged)
			}
		})
	}
}

func TestEvaluateIsIdempotentWithinADay(t *testing.T) {
	first, _ := Evaluate(State{Streak: 2, LongestStreak: 2, LastActiveDate: today.AddDays(-1)}, today)
	second, res := Evaluate(first, today)
	if res.Status != StatusMaintained || second != first {
		t.Fatalf("second evaluation = %+v %+v, want maintained and unchanged", second, res)
	}
}

func TestDateArithmeticAcrossMonths(t *testing.T) {
	d := Date{Year: 2024, Month: time.March, Day: 1}
	if got := d.AddDays(-1); got != (Date{Year: 2024, Month: time.February, Day: 29}) {
		t.Errorf("AddDays(-1) = %s", got)
	}
	if got := d.DaysSince(Date{Year: 2024, Month: time.February, Day: 20}); got != 10 {
		t.Errorf("DaysSince = %d, want 10", got)
	}
	if d.String() != "2024-03-01" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestDateOfUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	instant := time.Date(2025, time.March, 11, 23, 30, 0, 0, time.UTC)
	if got := DateOf(instant.In(loc)); got != today {
		t.Errorf("DateOf = %s, want %s", got, today)
	}
}

func TestIsActive(t *testing.T) {
	if !IsActive(today, today) || !IsActive(today.AddDays(-1), today) {
		t.Error("today and yesterday should be active")
	}
	if IsActive(today.AddDays(-2), today) || IsActive(Date{}, today) {
		t.Error("older or unset dates should not be active")
	}
}
