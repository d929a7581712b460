package quests

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekEnd(t *testing.T) {
	warsaw := time.FixedZone("CET", 3600)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "monday",
			now:  time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.March, 16, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "saturday night",
			now:  time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.March, 16, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "sunday is the last day",
			now:  time.Date(2025, time.March, 16, 12, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.March, 16, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "crosses month",
			now:  time.Date(2025, time.April, 29, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, time.May, 4, 23, 59, 59, 0, time.UTC),
		},
		{
			name: "keeps location",
			now:  time.Date(2025, time.March, 12, 10, 0, 0, 0, warsaw),
			want: time.Date(2025, time.March, 16, 23, 59, 59, 0, warsaw),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeekEnd(tt.now)
			assert.True(t, got.Equal(tt.want), "WeekEnd() = %v, want %v", got, tt.want)
		})
	}
}

func TestTimeUntilReset(t *testing.T) {
	now := time.Date(2025, time.March, 14, 20, 30, 15, 0, time.UTC)

	got := TimeUntilReset(now)

	assert.Equal(t, 2, got.Days)
	assert.Equal(t, 3, got.Hours)
	assert.Equal(t, 29, got.Minutes)
	assert.Equal(t, 44, got.Seconds)
	assert.Equal(t, int64(2*86400+3*3600+29*60+44), got.TotalSeconds)
	assert.True(t, got.ResetAt.Equal(WeekEnd(now)))
}
