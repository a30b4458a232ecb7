package pricing_test

import (
	"cyclebook/shared/pricing"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCost(t *testing.T) {
	tests := []struct {
		minutes  int
		expected int
	}{
		{minutes: -5, expected: 10},
		{minutes: 0, expected: 10},
		{minutes: 15, expected: 10},
		{minutes: 16, expected: 20},
		{minutes: 20, expected: 20},
		{minutes: 30, expected: 20},
		{minutes: 31, expected: 59},
		{minutes: 60, expected: 59},
		{minutes: 61, expected: 98},
		{minutes: 90, expected: 98},
		{minutes: 91, expected: 137},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d minutes", tt.minutes), func(t *testing.T) {
			assert.Equal(t, tt.expected, pricing.Cost(tt.minutes))
		})
	}
}

func TestCostIsMonotonic(t *testing.T) {
	prev := pricing.Cost(0)

	for m := 1; m <= 600; m++ {
		cur := pricing.Cost(m)
		assert.GreaterOrEqual(t, cur, prev, "minute %d", m)
		prev = cur
	}
}
