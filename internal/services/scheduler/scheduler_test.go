package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextPurgeTime(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "middle of month schedules end of same month",
			now:  time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 30, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "last day before purge hour schedules same day",
			now:  time.Date(2025, 6, 30, 10, 0, 0, 0, time.UTC),
			want: time.Date(2025, 6, 30, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "last day after purge hour rolls to next month",
			now:  time.Date(2025, 6, 30, 18, 0, 0, 0, time.UTC),
			want: time.Date(2025, 7, 31, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "december rolls over to january",
			now:  time.Date(2025, 12, 31, 18, 0, 0, 0, time.UTC),
			want: time.Date(2026, 1, 31, 17, 0, 0, 0, time.UTC),
		},
		{
			name: "february in leap year",
			now:  time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			want: time.Date(2024, 2, 29, 17, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextPurgeTime(tt.now))
		})
	}
}
