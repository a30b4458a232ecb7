package dto

import (
	"cyclebook/internal/domains/booking/model"
	"cyclebook/shared/constant"
	gDto "cyclebook/shared/dto"
	gModel "cyclebook/shared/model"
	"cyclebook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	Place string `json:"place" validate:"required,notblank,max=100"`
	Cycle string `json:"cycle" validate:"required,notblank,max=50"`
}

func (c *CreateBookingRequest) Normalize() {
	c.Place = strings.TrimSpace(c.Place)
	c.Cycle = strings.TrimSpace(c.Cycle)
}

func (c *CreateBookingRequest) ToModel(accountID, code string) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:               uuid.NewString(),
		AccountID:        accountID,
		Place:            c.Place,
		Cycle:            c.Cycle,
		VerificationCode: code,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

type StartRideRequest struct {
	BookingID string `json:"booking_id" validate:"required,uuid"`
	Code      string `json:"code"       validate:"required,notblank,max=16"`
}

type StopRideRequest struct {
	BookingID    string `json:"booking_id"    validate:"required,uuid"`
	DropLocation string `json:"drop_location" validate:"required,notblank,max=255"`
}

type CycleAvailability struct {
	Cycle     string `json:"cycle"`
	Available bool   `json:"available"`
}

// BookingResponse never carries the verification code; only the rider sees it, once.
type BookingResponse struct {
	ID              string  `json:"id"`
	AccountID       string  `json:"account_id"`
	Place           string  `json:"place"`
	Cycle           string  `json:"cycle"`
	Started         bool    `json:"started"`
	Stopped         bool    `json:"stopped"`
	StartTime       *string `json:"start_time,omitempty"`
	EndTime         *string `json:"end_time,omitempty"`
	DurationMinutes *int    `json:"duration,omitempty"`
	Cost            *int    `json:"cost,omitempty"`
	DropLocation    *string `json:"drop_location,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.AccountID = m.AccountID
	r.Place = m.Place
	r.Cycle = m.Cycle
	r.Started = m.Started
	r.Stopped = m.Stopped
	r.StartTime = formatTime(m.StartTime)
	r.EndTime = formatTime(m.EndTime)
	r.DurationMinutes = m.DurationMinutes
	r.Cost = m.Cost
	r.DropLocation = m.DropLocation
	r.Metadata.FromModel(m.Metadata)
}

type CreateBookingResponse struct {
	Booking          BookingResponse `json:"booking"`
	VerificationCode string          `json:"verification_code"`
	Message          string          `json:"message"`
}

type ActiveBookingResponse struct {
	BookingResponse
	OwnerEmail string `json:"owner_email"`
}

func (r *ActiveBookingResponse) FromModel(m model.BookingWithOwner) {
	r.BookingResponse.FromModel(m.Booking)
	r.OwnerEmail = m.OwnerEmail
}

func FromActiveModels(models []model.BookingWithOwner) []ActiveBookingResponse {
	res := make([]ActiveBookingResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}

type StopRideResponse struct {
	Message  string `json:"message"`
	Duration int    `json:"duration"`
	Cost     int    `json:"cost"`
}

// Event payloads use the same snake_case keys as the HTTP bodies.

type RideStartedEvent struct {
	BookingID string    `json:"booking_id"`
	StartTime time.Time `json:"start_time"`
}

type RideStoppedEvent struct {
	BookingID    string `json:"booking_id"`
	Duration     int    `json:"duration"`
	Cost         int    `json:"cost"`
	DropLocation string `json:"drop_location"`
}

type CycleStatusEvent struct {
	Place     string `json:"place"`
	Cycle     string `json:"cycle"`
	Available bool   `json:"available"`
}

// Receipt is the archived record of a finished ride.
type Receipt struct {
	BookingID    string `json:"booking_id"`
	AccountID    string `json:"account_id"`
	Place        string `json:"place"`
	Cycle        string `json:"cycle"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Duration     int    `json:"duration"`
	Cost         int    `json:"cost"`
	DropLocation string `json:"drop_location"`
}

func NewReceipt(m model.Booking) Receipt {
	r := Receipt{
		BookingID: m.ID,
		AccountID: m.AccountID,
		Place:     m.Place,
		Cycle:     m.Cycle,
	}

	if v := formatTime(m.StartTime); v != nil {
		r.StartTime = *v
	}

	if v := formatTime(m.EndTime); v != nil {
		r.EndTime = *v
	}

	if m.DurationMinutes != nil {
		r.Duration = *m.DurationMinutes
	}

	if m.Cost != nil {
		r.Cost = *m.Cost
	}

	if m.DropLocation != nil {
		r.DropLocation = *m.DropLocation
	}

	return r
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	v := timezone.Format(*t, constant.DateFormat)

	return &v
}
