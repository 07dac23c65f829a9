package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeFrame(t *testing.T) {
	tests := []struct {
		raw  string
		want TimeFrame
	}{
		{"week", TimeFrameWeek},
		{"month", TimeFrameMonth},
		{"year", TimeFrameYear},
		{"WEEK", TimeFrameWeek},
		{"  year  ", TimeFrameYear},
		{"", TimeFrameMonth},
		{"quarter", TimeFrameMonth},
		{"7d", TimeFrameMonth},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTimeFrame(tt.raw), "token %q", tt.raw)
	}
}

func TestTimeFrameStart(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 8, 10, 30, 0, 0, time.UTC), TimeFrameWeek.Start(now))
	assert.Equal(t, time.Date(2024, 2, 15, 10, 30, 0, 0, time.UTC), TimeFrameMonth.Start(now))
	assert.Equal(t, time.Date(2023, 3, 15, 10, 30, 0, 0, time.UTC), TimeFrameYear.Start(now))

	// an unknown token parses to month, so its window matches month exactly
	assert.Equal(t, TimeFrameMonth.Start(now), ParseTimeFrame("bogus").Start(now))
}
