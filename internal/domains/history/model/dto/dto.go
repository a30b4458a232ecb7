package dto

import (
	"cyclebook/internal/domains/history/model"
	"cyclebook/shared/constant"
	"cyclebook/shared/timezone"
)

type RideHistoryResponse struct {
	ID           string `json:"id"`
	BookingID    string `json:"booking_id"`
	Duration     int    `json:"duration"`
	Cost         int    `json:"cost"`
	DropLocation string `json:"drop_location"`
	Timestamp    string `json:"timestamp"`
}

func (r *RideHistoryResponse) FromModel(m model.RideHistory) {
	r.ID = m.ID
	r.BookingID = m.BookingID
	r.Duration = m.DurationMinutes
	r.Cost = m.Cost
	r.DropLocation = m.DropLocation
	r.Timestamp = timezone.Format(m.RecordedAt, constant.DateFormat)
}

func FromModels(models []model.RideHistory) []RideHistoryResponse {
	res := make([]RideHistoryResponse, len(models))
	for i, m := range models {
		res[i].FromModel(m)
	}

	return res
}
