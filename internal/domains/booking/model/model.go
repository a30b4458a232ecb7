package model

import (
	"cyclebook/shared/model"
	"cyclebook/shared/pricing"
	"math"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldAccountID        = "account_id"
	FieldPlace            = "place"
	FieldCycle            = "cycle"
	FieldVerificationCode = "verification_code"
	FieldStarted          = "started"
	FieldStopped          = "stopped"
	FieldStartTime        = "start_time"
	FieldEndTime          = "end_time"
	FieldDurationMinutes  = "duration_minutes"
	FieldCost             = "cost"
	FieldDropLocation     = "drop_location"
	FieldCreatedAt        = "created_at"
	FieldModifiedAt       = "modified_at"
)

// Booking moves pending -> started -> stopped and never back.
type Booking struct {
	ID               string     `db:"id"`
	AccountID        string     `db:"account_id"`
	Place            string     `db:"place"`
	Cycle            string     `db:"cycle"`
	VerificationCode string     `db:"verification_code"`
	Started          bool       `db:"started"`
	Stopped          bool       `db:"stopped"`
	StartTime        *time.Time `db:"start_time"`
	EndTime          *time.Time `db:"end_time"`
	DurationMinutes  *int       `db:"duration_minutes"`
	Cost             *int       `db:"cost"`
	DropLocation     *string    `db:"drop_location"`
	model.Metadata
}

func (b Booking) Exists() bool {
	return b.ID != ""
}

// Active reports whether the booking currently holds its cycle.
func (b Booking) Active() bool {
	return b.Started && !b.Stopped
}

// Stop freezes duration, cost and drop location. Duration is whole elapsed minutes.
func (b Booking) Stop(end time.Time, dropLocation string) Booking {
	minutes := 0
	if b.StartTime != nil {
		minutes = int(math.Floor(end.Sub(*b.StartTime).Minutes()))
	}

	if minutes < 0 {
		minutes = 0
	}

	cost := pricing.Cost(minutes)

	b.Stopped = true
	b.EndTime = &end
	b.DurationMinutes = &minutes
	b.Cost = &cost
	b.DropLocation = &dropLocation
	b.ModifiedAt = end

	return b
}

// BookingWithOwner is a booking joined with the email of the rider who made it.
type BookingWithOwner struct {
	Booking
	OwnerEmail string `column:"email" db:"owner_email" table:"accounts"`
}

func (BookingWithOwner) GetJoinQuery() string {
	return "LEFT JOIN accounts ON accounts.id = bookings.account_id"
}
