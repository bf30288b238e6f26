package response

import (
	"legalbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CategoryResponse struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PricePer15MinCents int64     `json:"pricePer15MinCents"`
	Description        string    `json:"description"`
}

func FromCategoryView(v *queries.CategoryView) *CategoryResponse {
	return &CategoryResponse{
		ID:                 v.ID,
		Name:               v.Name,
		PricePer15MinCents: v.PricePer15MinCents,
		Description:        v.Description,
	}
}

type AvailabilityResponse struct {
	CategoryID  uuid.UUID `json:"categoryId"`
	Date        string    `json:"date"`
	BookedTimes []string  `json:"bookedTimes"`
}

type SlotCheckResponse struct {
	CategoryID uuid.UUID `json:"categoryId"`
	Date       string    `json:"date"`
	Start      string    `json:"start"`
	Available  bool      `json:"available"`
}
