package csvimport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "45", want: 45},
		{raw: " 60 ", want: 60},
		{raw: "1h 30m", want: 90},
		{raw: "1h30", want: 90},
		{raw: "1 hr 15 mins", want: 75},
		{raw: "2 hours", want: 120},
		{raw: "2h", want: 120},
		{raw: "1 HOUR 5 MINUTES", want: 65},
		{raw: "90m", want: 90},
		{raw: "90 minutes", want: 90},
		{raw: "45 min", want: 45},
		{raw: "1:30", want: 90},
		{raw: "0:45", want: 45},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDuration(tt.raw))
		})
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, raw := range []string{"", "   ", "abc", "1:75", "1.5", "-30", "h30", "30 seconds"} {
		t.Run(raw, func(t *testing.T) {
			assert.True(t, math.IsNaN(ParseDuration(raw)), "expected NaN for %q", raw)
		})
	}
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{raw: "£1,234.50", want: 1234.50},
		{raw: "$10", want: 10},
		{raw: "€ 25", want: 25},
		{raw: "0", want: 0},
		{raw: "-1", want: -1},
		{raw: " 12.5 ", want: 12.5},
		{raw: "1 000", want: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.InDelta(t, tt.want, ParsePrice(tt.raw), 1e-9)
		})
	}
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, raw := range []string{"", "£", "free", "12abc", "1e400"} {
		t.Run(raw, func(t *testing.T) {
			assert.True(t, math.IsNaN(ParsePrice(raw)), "expected NaN for %q", raw)
		})
	}
}
