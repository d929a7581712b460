// Package streak implements the daily check-in state machine.
//
// The tracker is pure: callers load the persisted State, call Evaluate with the user's
// current calendar day and write the returned State back when Result.Changed is set.
package streak

import "fmt"

type Status string

const (
	StatusNew        Status = "new"
	StatusMaintained Status = "maintained"
	StatusExtended   Status = "extended"
	StatusLost       Status = "lost"
)

// State is the persisted part of a user's streak.
type State struct {
	Streak         int
	LongestStreak  int
	LastActiveDate Date
}

// Result describes one transition for the caller to surface as a notification.
type Result struct {
	Status         Status `json:"status"`
	Streak         int    `json:"streak"`
	PreviousStreak int    `json:"previous_streak,omitempty"`
	LostStreak     int    `json:"lost_streak,omitempty"`
	DaysMissed     int    `json:"days_missed,omitempty"`
	Message        string `json:"message"`
	// Changed is false only for the maintained branch; nothing needs writing then.
	Changed bool `json:"-"`
}

// Evaluate applies today's check-in to state. Rules are checked in order:
//  1. no previous activity or a zero streak starts a new streak
//  2. activity already recorded today keeps everything as is
//  3. activity yesterday extends the streak
//  4. any larger gap resets to 1; it is reported as lost only when more than one day
//     was on the line
func Evaluate(state State, today Date) (State, Result) {
	if state.LastActiveDate.IsZero() || state.Streak == 0 {
		next := State{
			Streak:         1,
			LongestStreak:  max(state.LongestStreak, 1),
			LastActiveDate: today,
		}
		return next, Result{
			Status:  StatusNew,
			Streak:  1,
			Message: "Welcome! Your streak begins today!",
			Changed: true,
		}
	}

	if state.LastActiveDate.Equal(today) {
		return state, Result{
			Status:  StatusMaintained,
			Streak:  state.Streak,
			Message: "Streak already counted for today",
		}
	}

	if state.LastActiveDate.Equal(today.AddDays(-1)) {
		streak := state.Streak + 1
		next := State{
			Streak:         streak,
			LongestStreak:  max(state.LongestStreak, streak),
			LastActiveDate: today,
		}
		return next, Result{
			Status:         StatusExtended,
			Streak:         streak,
			PreviousStreak: state.Streak,
			Message:        fmt.Sprintf("Streak extended to %d days!", streak),
			Changed:        true,
		}
	}

	next := State{
		Streak:         1,
		LongestStreak:  max(state.LongestStreak, 1),
		LastActiveDate: today,
	}

	if state.Streak > 1 {
		return next, Result{
			Status:     StatusLost,
			Streak:     1,
			LostStreak: state.Streak,
			DaysMissed: today.DaysSince(state.LastActiveDate),
			Message:    fmt.Sprintf("Streak lost! You missed %d day streak. Starting fresh with day 1.", state.Streak),
			Changed:    true,
		}
	}

	return next, Result{
		Status:  StatusNew,
		Streak:  1,
		Message: "Starting fresh with day 1!",
		Changed: true,
	}
}

// IsActive reports whether a streak ending on last still counts on today, that is the
// user was active today or yesterday.
func IsActive(last, today Date) bool {
	if last.IsZero() {
		return false
	}
	return last.Equal(today) || last.Equal(today.AddDays(-1))
}
