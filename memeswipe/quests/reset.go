package quests

import "time"

// WeekEnd returns the last second of the week containing now: the coming Sunday at
// 23:59:59 in now's location. On a Sunday that is the same day.
func WeekEnd(now time.Time) time.Time {
	weekday := int(now.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	daysUntilSunday := 7 - weekday

	y, m, d := now.Date()
	return time.Date(y, m, d+daysUntilSunday, 23, 59, 59, 0, now.Location())
}

// ResetCountdown is the time left until the weekly set expires.
type ResetCountdown struct {
	Days         int       `json:"days"`
	Hours        int       `json:"hours"`
	Minutes      int       `json:"minutes"`
	Seconds      int       `json:"seconds"`
	TotalSeconds int64     `json:"total_seconds"`
	ResetAt      time.Time `json:"reset_at"`
}

// TimeUntilReset computes the countdown to WeekEnd(now).
func TimeUntilReset(now time.Time) ResetCountdown {
	reset := WeekEnd(now)
	remaining := reset.Sub(now)
	if remaining < 0 {
		remaining = 0
	}

	total := int64(remaining / time.Second)
	return ResetCountdown{
		Days:         int(total / 86400),
		Hours:        int(total % 86400 / 3600),
		Minutes:      int(total % 3600 / 60),
		Seconds:      int(total % 60),
		TotalSeconds: total,
		ResetAt:      reset,
	}
}
