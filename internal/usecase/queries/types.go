package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type CategoryView struct {
	ID                 uuid.UUID `json:"id"`
	Name               string    `json:"name"`
	PricePer15MinCents int64     `json:"price_per_15min_cents"`
	Description        string    `json:"description"`
}

type AppointmentView struct {
	ID                 uuid.UUID `json:"id"`
	UserID             uuid.UUID `json:"user_id"`
	CategoryID         uuid.UUID `json:"category_id"`
	CategoryName       string    `json:"category_name"`
	PricePer15MinCents int64     `json:"price_per_15min_cents"`
	Date               string    `json:"date"`
	Start              string    `json:"start"`
	DurationMin        int       `json:"duration_min"`
	TotalPriceCents    int64     `json:"total_price_cents"`
	IsPaid             bool      `json:"is_paid"`
	CreatedAt          time.Time `json:"created_at"`
}

// CartItemView carries a live price: unit and total are computed from the
// catalog's current price at read time, never stored.
type CartItemView struct {
	ID              uuid.UUID `json:"id"`
	CategoryID      uuid.UUID `json:"category_id"`
	CategoryName    string    `json:"category_name"`
	Date            string    `json:"date"`
	Start           string    `json:"start"`
	DurationMin     int       `json:"duration_min"`
	UnitPriceCents  int64     `json:"unit_price_cents"`
	TotalPriceCents int64     `json:"total_price_cents"`
	AddedAt         time.Time `json:"added_at"`
}

type CartView struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Items      []*CartItemView `json:"items"`
	TotalCents int64           `json:"total_cents"`
}

type OrderItemView struct {
	ID              uuid.UUID  `json:"id"`
	CategoryID      uuid.UUID  `json:"category_id"`
	CategoryName    string     `json:"category_name"`
	Date            string     `json:"date"`
	Start           string     `json:"start"`
	DurationMin     int        `json:"duration_min"`
	UnitPriceCents  int64      `json:"unit_price_cents"`
	TotalPriceCents int64      `json:"total_price_cents"`
	AppointmentID   *uuid.UUID `json:"appointment_id,omitempty"`
}

type OrderView struct {
	ID               uuid.UUID        `json:"id"`
	UserID           uuid.UUID        `json:"user_id"`
	TotalAmountCents int64            `json:"total_amount_cents"`
	Status           string           `json:"status"`
	PaymentIntentID  string           `json:"payment_intent_id"`
	Items            []*OrderItemView `json:"items"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// CartItemRow is what the read store returns per cart line: the raw slot plus
// the category's current unit price. Totals are computed above the store so
// the pricing engine stays the single pricing authority.
type CartItemRow struct {
	ID             uuid.UUID
	CartID         uuid.UUID
	CategoryID     uuid.UUID
	CategoryName   string
	UnitPriceCents int64
	Date           time.Time
	StartMinutes   int
	DurationMin    int
	AddedAt        time.Time
}
