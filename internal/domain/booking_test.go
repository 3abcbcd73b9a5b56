package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	base := time.Date(2026, 9, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name         string
		pricePerHour string
		duration     time.Duration
		want         string
	}{
		{
			name:         "two whole hours",
			pricePerHour: "20",
			duration:     2 * time.Hour,
			want:         "40",
		},
		{
			name:         "fractional hours",
			pricePerHour: "30",
			duration:     90 * time.Minute,
			want:         "45",
		},
		{
			name:         "rounds half up",
			pricePerHour: "10.01",
			duration:     90 * time.Minute,
			want:         "15.02", // 15.015 → 15.02
		},
		{
			name:         "rounds down below half",
			pricePerHour: "20",
			duration:     time.Hour + 7*time.Minute,
			want:         "22.33", // 22.3333…
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := decimal.RequireFromString(tt.pricePerHour)
			got := TotalPrice(rate, base, base.Add(tt.duration))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestBookingStatusValid(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow} {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, BookingStatus("refunded").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusConfirmed.Terminal())
	assert.True(t, StatusCompleted.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.True(t, StatusNoShow.Terminal())
}

func TestBookingIsActive(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.IsActive())
	b.Status = StatusConfirmed
	assert.True(t, b.IsActive())
	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
}
