package model

import "time"

const (
	TableName  = "ride_histories"
	EntityName = "ride_history"

	FieldID              = "id"
	FieldAccountID       = "account_id"
	FieldBookingID       = "booking_id"
	FieldDurationMinutes = "duration_minutes"
	FieldCost            = "cost"
	FieldDropLocation    = "drop_location"
	FieldRecordedAt      = "recorded_at"
)

// RideHistory is written once when a ride stops and never changes afterwards.
type RideHistory struct {
	ID              string    `db:"id"`
	AccountID       string    `db:"account_id"`
	BookingID       string    `db:"booking_id"`
	DurationMinutes int       `db:"duration_minutes"`
	Cost            int       `db:"cost"`
	DropLocation    string    `db:"drop_location"`
	RecordedAt      time.Time `db:"recorded_at"`
}
