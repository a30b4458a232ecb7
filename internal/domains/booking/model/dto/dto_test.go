package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cyclebook/internal/domains/booking/model"
	"cyclebook/internal/domains/booking/model/dto"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	req := dto.CreateBookingRequest{Place: "  Library ", Cycle: " Cycle 1"}
	req.Normalize()

	m := req.ToModel("rider-1", "ABC234")

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "Library", m.Place)
	assert.Equal(t, "Cycle 1", m.Cycle)
	assert.Equal(t, "ABC234", m.VerificationCode)
	assert.False(t, m.Started)
	assert.False(t, m.CreatedAt.IsZero())
}

func TestBookingResponse_HidesVerificationCode(t *testing.T) {
	var res dto.BookingResponse
	res.FromModel(model.Booking{ID: "b-1", VerificationCode: "ABC234"})

	raw, err := json.Marshal(res)
	require.NoError(t, err)

	assert.NotContains(t, string(raw), "ABC234")
	assert.NotContains(t, string(raw), "start_time")
}

func TestNewReceipt(t *testing.T) {
	start := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	b := model.Booking{ID: "b-1", AccountID: "rider-1", Place: "Library", Cycle: "Cycle 2", Started: true, StartTime: &start}

	receipt := dto.NewReceipt(b.Stop(start.Add(20*time.Minute), "Hostel"))

	assert.Equal(t, dto.Receipt{
		BookingID:    "b-1",
		AccountID:    "rider-1",
		Place:        "Library",
		Cycle:        "Cycle 2",
		StartTime:    "2024-05-01T09:00:00Z",
		EndTime:      "2024-05-01T09:20:00Z",
		Duration:     20,
		Cost:         20,
		DropLocation: "Hostel",
	}, receipt)
}

func TestRideStoppedEvent_JSON(t *testing.T) {
	raw, err := json.Marshal(dto.RideStoppedEvent{BookingID: "b-1", Duration: 20, Cost: 20, DropLocation: "Hostel"})
	require.NoError(t, err)

	assert.JSONEq(t, `{"booking_id":"b-1","duration":20,"cost":20,"drop_location":"Hostel"}`, string(raw))
}

func TestRideStartedEvent_JSON(t *testing.T) {
	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	raw, err := json.Marshal(dto.RideStartedEvent{BookingID: "b-1", StartTime: start})
	require.NoError(t, err)

	assert.JSONEq(t, `{"booking_id":"b-1","start_time":"2025-03-01T10:00:00Z"}`, string(raw))
}
