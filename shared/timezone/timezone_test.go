package timezone_test

import (
	"cyclebook/shared/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		zone     string
		expected string
	}{
		{name: "known zone", zone: "Asia/Kolkata", expected: "Asia/Kolkata"},
		{name: "empty falls back to utc", zone: "", expected: "UTC"},
		{name: "unknown falls back to utc", zone: "Mars/Olympus", expected: "UTC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			timezone.Init(tt.zone)
			t.Cleanup(func() { timezone.Init("UTC") })

			assert.Equal(t, tt.expected, timezone.Location().String())
			assert.Equal(t, tt.expected, timezone.Now().Location().String())
		})
	}
}

func TestFormat(t *testing.T) {
	timezone.Init("Asia/Kolkata")
	t.Cleanup(func() { timezone.Init("UTC") })

	instant := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-01-01T17:30:00+05:30", timezone.Format(instant, time.RFC3339))
	assert.True(t, timezone.ToAppTime(instant).Equal(instant))
}
