package response

import (
	"time"

	"legalbook/internal/usecase/queries"

	"github.com/google/uuid"
)

// CartItemResponse prices are live: recomputed from the current catalog on
// every read.
type CartItemResponse struct {
	ID              uuid.UUID `json:"id"`
	CategoryID      uuid.UUID `json:"categoryId"`
	CategoryName    string    `json:"categoryName"`
	Date            string    `json:"date"`
	Start           string    `json:"start"`
	DurationMin     int       `json:"durationMin"`
	UnitPriceCents  int64     `json:"unitPriceCents"`
	TotalPriceCents int64     `json:"totalPriceCents"`
	AddedAt         time.Time `json:"addedAt"`
}

type CartResponse struct {
	ID         uuid.UUID           `json:"id"`
	Items      []*CartItemResponse `json:"items"`
	TotalCents int64               `json:"totalCents"`
}

func FromCartView(v *queries.CartView) *CartResponse {
	items := make([]*CartItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = &CartItemResponse{
			ID:              item.ID,
			CategoryID:      item.CategoryID,
			CategoryName:    item.CategoryName,
			Date:            item.Date,
			Start:           item.Start,
			DurationMin:     item.DurationMin,
			UnitPriceCents:  item.UnitPriceCents,
			TotalPriceCents: item.TotalPriceCents,
			AddedAt:         item.AddedAt,
		}
	}
	return &CartResponse{
		ID:         v.ID,
		Items:      items,
		TotalCents: v.TotalCents,
	}
}

type AddCartItemResponse struct {
	ID uuid.UUID `json:"id"`
}
