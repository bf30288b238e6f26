package response

import (
	"time"

	"legalbook/internal/usecase/commands"
	"legalbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrderItemResponse struct {
	ID              uuid.UUID  `json:"id"`
	CategoryID      uuid.UUID  `json:"categoryId"`
	CategoryName    string     `json:"categoryName"`
	Date            string     `json:"date"`
	Start           string     `json:"start"`
	DurationMin     int        `json:"durationMin"`
	UnitPriceCents  int64      `json:"unitPriceCents"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	AppointmentID   *uuid.UUID `json:"appointmentId,omitempty"`
}

type OrderResponse struct {
	ID               uuid.UUID            `json:"id"`
	TotalAmountCents int64                `json:"totalAmountCents"`
	Status           string               `json:"status"`
	Items            []*OrderItemResponse `json:"items"`
	CreatedAt        time.Time            `json:"createdAt"`
	UpdatedAt        time.Time            `json:"updatedAt"`
}

func FromOrderView(v *queries.OrderView) *OrderResponse {
	items := make([]*OrderItemResponse, len(v.Items))
	for i, item := range v.Items {
		items[i] = &OrderItemResponse{
			ID:              item.ID,
			CategoryID:      item.CategoryID,
			CategoryName:    item.CategoryName,
			Date:            item.Date,
			Start:           item.Start,
			DurationMin:     item.DurationMin,
			UnitPriceCents:  item.UnitPriceCents,
			TotalPriceCents: item.TotalPriceCents,
			AppointmentID:   item.AppointmentID,
		}
	}
	return &OrderResponse{
		ID:               v.ID,
		TotalAmountCents: v.TotalAmountCents,
		Status:           v.Status,
		Items:            items,
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

// CheckoutResponse hands the client secret to the frontend so the card can
// be confirmed against the payment provider directly.
type CheckoutResponse struct {
	OrderID          uuid.UUID `json:"orderId"`
	TotalAmountCents int64     `json:"totalAmountCents"`
	ClientSecret     string    `json:"clientSecret"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		OrderID:          r.OrderID,
		TotalAmountCents: r.TotalAmountCents,
		ClientSecret:     r.ClientSecret,
	}
}
