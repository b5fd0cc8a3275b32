//go:build unit

package flyer_test

import (
	"testing"
	"time"

	"flyerboard/internal/domain/flyer"

	"github.com/stretchr/testify/assert"
)

func TestClassifyExpiry(t *testing.T) {
	expiry := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want flyer.ExpiryStatus
	}{
		{
			name: "well before the window",
			now:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			want: flyer.StatusActive,
		},
		{
			name: "four days out is still active",
			now:  time.Date(2024, 6, 6, 12, 0, 0, 0, time.UTC),
			want: flyer.StatusActive,
		},
		{
			name: "three days out is expiring soon",
			now:  time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC),
			want: flyer.StatusExpiringSoon,
		},
		{
			name: "two days out",
			now:  time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC),
			want: flyer.StatusExpiringSoon,
		},
		{
			name: "expiry day itself",
			now:  time.Date(2024, 6, 10, 23, 59, 59, 0, time.UTC),
			want: flyer.StatusExpiringSoon,
		},
		{
			name: "day after expiry",
			now:  time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC),
			want: flyer.StatusExpired,
		},
		{
			name: "long after expiry",
			now:  time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
			want: flyer.StatusExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, flyer.ClassifyExpiry(expiry, tt.now, time.UTC))
		})
	}
}

func TestClassifyExpiryIsDateGranular(t *testing.T) {
	// An expiry late in the day still counts for the whole date.
	expiry := time.Date(2024, 6, 10, 18, 30, 0, 0, time.UTC)
	now := time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC)

	assert.Equal(t, flyer.StatusExpiringSoon, flyer.ClassifyExpiry(expiry, now, time.UTC))
}
