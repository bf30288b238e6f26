package cart

import (
	"errors"
	"time"

	"legalbook/internal/domain/consultation"

	"github.com/google/uuid"
)

var (
	ErrItemNotFound    = errors.New("cart item not found")
	ErrSlotAlreadyPaid = errors.New("slot is already booked by a paid appointment")
)

// Cart is the per-user staging area for candidate bookings. It holds no
// prices: every total is derived from the catalog's current unit prices at
// read time. Holding an item reserves nothing; conflicts are resolved at
// settlement.
type Cart struct {
	id        uuid.UUID
	userID    uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewCart(userID uuid.UUID) *Cart {
	return &Cart{
		id:     uuid.New(),
		userID: userID,
	}
}

func ReconstructCart(id, userID uuid.UUID, createdAt, updatedAt time.Time) *Cart {
	return &Cart{
		id:        id,
		userID:    userID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Cart) ID() uuid.UUID        { return c.id }
func (c *Cart) UserID() uuid.UUID    { return c.userID }
func (c *Cart) CreatedAt() time.Time { return c.createdAt }
func (c *Cart) UpdatedAt() time.Time { return c.updatedAt }

// Item is a provisional booking in a cart: category + slot only.
type Item struct {
	id         uuid.UUID
	cartID     uuid.UUID
	categoryID uuid.UUID
	slot       consultation.Slot
	addedAt    time.Time
}

// NewItem stamps the item with addedAt so cart reads keep insertion order.
func NewItem(cartID, categoryID uuid.UUID, slot consultation.Slot, addedAt time.Time) *Item {
	return &Item{
		id:         uuid.New(),
		cartID:     cartID,
		categoryID: categoryID,
		slot:       slot,
		addedAt:    addedAt,
	}
}

func ReconstructItem(id, cartID, categoryID uuid.UUID, slot consultation.Slot, addedAt time.Time) *Item {
	return &Item{
		id:         id,
		cartID:     cartID,
		categoryID: categoryID,
		slot:       slot,
		addedAt:    addedAt,
	}
}

func (i *Item) ID() uuid.UUID           { return i.id }
func (i *Item) CartID() uuid.UUID       { return i.cartID }
func (i *Item) CategoryID() uuid.UUID   { return i.categoryID }
func (i *Item) Slot() consultation.Slot { return i.slot }
func (i *Item) AddedAt() time.Time      { return i.addedAt }

// Reschedule replaces the item's category and slot. The caller re-runs the
// paid-slot guard before persisting.
func (i *Item) Reschedule(categoryID uuid.UUID, slot consultation.Slot) {
	i.categoryID = categoryID
	i.slot = slot
}
