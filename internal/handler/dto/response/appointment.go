package response

import (
	"time"

	"legalbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	CategoryID      uuid.UUID `json:"categoryId"`
	CategoryName    string    `json:"categoryName"`
	Date            string    `json:"date"`
	Start           string    `json:"start"`
	DurationMin     int       `json:"durationMin"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	IsPaid          bool      `json:"isPaid"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromAppointmentView(v *queries.AppointmentView) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              v.ID,
		CategoryID:      v.CategoryID,
		CategoryName:    v.CategoryName,
		Date:            v.Date,
		Start:           v.Start,
		DurationMin:     v.DurationMin,
		TotalPriceCents: v.TotalPriceCents,
		IsPaid:          v.IsPaid,
		CreatedAt:       v.CreatedAt,
	}
}

type BookAppointmentResponse struct {
	ID uuid.UUID `json:"id"`
}
