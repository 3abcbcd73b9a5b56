package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func dt(hour int) time.Time {
	return time.Date(2026, 9, 15, hour, 0, 0, 0, time.UTC)
}

func TestSlotOverlaps(t *testing.T) {
	slot := Slot{StartDatetime: dt(10), EndDatetime: dt(12)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "identical window",
			start: dt(10),
			end:   dt(12),
			want:  true,
		},
		{
			name:  "fully inside",
			start: dt(10).Add(30 * time.Minute),
			end:   dt(11),
			want:  true,
		},
		{
			name:  "fully containing",
			start: dt(9),
			end:   dt(13),
			want:  true,
		},
		{
			name:  "partial overlap at start",
			start: dt(9),
			end:   dt(11),
			want:  true,
		},
		{
			name:  "partial overlap at end",
			start: dt(11),
			end:   dt(13),
			want:  true,
		},
		{
			name:  "touching at slot end does not conflict",
			start: dt(12),
			end:   dt(14),
			want:  false,
		},
		{
			name:  "touching at slot start does not conflict",
			start: dt(8),
			end:   dt(10),
			want:  false,
		},
		{
			name:  "entirely before",
			start: dt(7),
			end:   dt(9),
			want:  false,
		},
		{
			name:  "entirely after",
			start: dt(13),
			end:   dt(15),
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, slot.Overlaps(tt.start, tt.end))
		})
	}
}

func TestAnyOverlaps(t *testing.T) {
	windows := []Slot{
		{StartDatetime: dt(8), EndDatetime: dt(9)},
		{StartDatetime: dt(10), EndDatetime: dt(12)},
		{StartDatetime: dt(14), EndDatetime: dt(16)},
	}

	assert.True(t, AnyOverlaps(dt(11), dt(13), windows))
	assert.False(t, AnyOverlaps(dt(12), dt(14), windows))
	assert.False(t, AnyOverlaps(dt(9), dt(10), windows))
	assert.False(t, AnyOverlaps(dt(11), dt(13), nil))
}
