package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAvailability(t *testing.T) {
	tests := map[string]struct {
		raw      string
		expected AvailabilityStatus
		usable   bool
	}{
		"available": {
			raw:      "available",
			expected: Available(),
			usable:   true,
		},
		"readily-is-available": {
			raw:      " Readily ",
			expected: Available(),
			usable:   true,
		},
		"downloading-is-downloadable": {
			raw:      "downloading",
			expected: AvailabilityStatus{State: AvailabilityState_Downloadable},
			usable:   true,
		},
		"after-download-is-downloadable": {
			raw:      "after-download",
			expected: AvailabilityStatus{State: AvailabilityState_Downloadable},
			usable:   true,
		},
		"unavailable": {
			raw:      "unavailable",
			expected: Unavailable("Status: unavailable"),
		},
		"empty-is-unavailable": {
			raw:      "",
			expected: Unavailable("Status: unavailable"),
		},
		"unknown-keeps-raw-value": {
			raw:      "pending",
			expected: Unavailable("Status: pending"),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseAvailability(tt.raw)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.usable, got.Usable())
		})
	}
}

func TestAvailabilityStatus_String(t *testing.T) {
	assert.Equal(t, "available", Available().String())
	assert.Equal(t, "unavailable (summarizer API not supported)", Unavailable("summarizer API not supported").String())
	assert.Equal(t, "error (connection refused)", AvailabilityError("connection refused").String())
	assert.False(t, AvailabilityError("connection refused").Usable())
}
