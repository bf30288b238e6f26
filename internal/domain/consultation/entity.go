package consultation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategoryName      = errors.New("unknown consultation category")
	ErrNonPositiveUnitPrice     = errors.New("unit price must be positive")
	ErrPaidAppointmentImmutable = errors.New("paid appointment cannot be modified or cancelled")
)

// Category is a consultation type from the fixed catalog. Identity is
// immutable; the unit price is admin-mutable and therefore never cached by
// anything that computes a price.
type Category struct {
	id                 uuid.UUID
	name               CategoryName
	pricePer15MinCents int64
	description        string
}

func NewCategory(name CategoryName, pricePer15MinCents int64, description string) (*Category, error) {
	if !name.IsValid() {
		return nil, ErrInvalidCategoryName
	}
	if pricePer15MinCents <= 0 {
		return nil, ErrNonPositiveUnitPrice
	}
	return &Category{
		id:                 uuid.New(),
		name:               name,
		pricePer15MinCents: pricePer15MinCents,
		description:        description,
	}, nil
}

func ReconstructCategory(id uuid.UUID, name CategoryName, pricePer15MinCents int64, description string) *Category {
	return &Category{
		id:                 id,
		name:               name,
		pricePer15MinCents: pricePer15MinCents,
		description:        description,
	}
}

func (c *Category) ID() uuid.UUID             { return c.id }
func (c *Category) Name() CategoryName        { return c.name }
func (c *Category) PricePer15MinCents() int64 { return c.pricePer15MinCents }
func (c *Category) Description() string       { return c.description }

// PriceFor evaluates the pricing engine against this category's current unit
// price.
func (c *Category) PriceFor(d Duration) int64 {
	return PriceCents(c.pricePer15MinCents, d)
}

// Appointment is one confirmed consultation slot. The (category, date, start)
// tuple is unique across all appointments; the storage layer enforces that
// with a unique index, not an application-level pre-check.
type Appointment struct {
	id              uuid.UUID
	userID          uuid.UUID
	categoryID      uuid.UUID
	slot            Slot
	totalPriceCents int64
	isPaid          bool
	createdAt       time.Time
}

// NewAppointment prices the slot from the category's current unit price. The
// caller never supplies the total.
func NewAppointment(userID uuid.UUID, category *Category, slot Slot, isPaid bool) *Appointment {
	return &Appointment{
		id:              uuid.New(),
		userID:          userID,
		categoryID:      category.ID(),
		slot:            slot,
		totalPriceCents: category.PriceFor(slot.Duration()),
		isPaid:          isPaid,
	}
}

func ReconstructAppointment(
	id, userID, categoryID uuid.UUID,
	slot Slot,
	totalPriceCents int64,
	isPaid bool,
	createdAt time.Time,
) *Appointment {
	return &Appointment{
		id:              id,
		userID:          userID,
		categoryID:      categoryID,
		slot:            slot,
		totalPriceCents: totalPriceCents,
		isPaid:          isPaid,
		createdAt:       createdAt,
	}
}

func (a *Appointment) ID() uuid.UUID          { return a.id }
func (a *Appointment) UserID() uuid.UUID      { return a.userID }
func (a *Appointment) CategoryID() uuid.UUID  { return a.categoryID }
func (a *Appointment) Slot() Slot             { return a.slot }
func (a *Appointment) TotalPriceCents() int64 { return a.totalPriceCents }
func (a *Appointment) IsPaid() bool           { return a.isPaid }
func (a *Appointment) CreatedAt() time.Time   { return a.createdAt }

// EnsureCancellable guards the cancel operation: a paid appointment is
// immutable.
func (a *Appointment) EnsureCancellable() error {
	if a.isPaid {
		return ErrPaidAppointmentImmutable
	}
	return nil
}
