//go:build unit

package builder

import (
	"time"

	"legalbook/internal/domain/consultation"
	reqdto "legalbook/internal/handler/dto/request"
	"legalbook/internal/usecase/queries"
	"legalbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Tomorrow returns a date safely in the future so slot validation passes
// regardless of when the test runs.
func Tomorrow() time.Time {
	return consultation.NormalizeDate(time.Now().UTC().Add(24 * time.Hour))
}

type SlotBuilder struct {
	Date     time.Time
	Start    consultation.TimeOfDay
	Duration consultation.Duration
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		Date:     Tomorrow(),
		Start:    consultation.TimeOfDay(10 * 60),
		Duration: consultation.DurationHour,
	}
}

func (b *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(b)
	return b
}

func (b *SlotBuilder) Build() consultation.Slot {
	return consultation.ReconstructSlot(b.Date, b.Start, b.Duration)
}

type CategoryBuilder struct {
	ID                 uuid.UUID
	Name               consultation.CategoryName
	PricePer15MinCents int64
	Description        string
}

func NewCategoryBuilder() *CategoryBuilder {
	return &CategoryBuilder{
		ID:                 uuid.New(),
		Name:               consultation.CategoryFamilyLaw,
		PricePer15MinCents: 4500,
		Description:        "Divorce, custody, adoption and family disputes",
	}
}

func (b *CategoryBuilder) With(mutate func(*CategoryBuilder)) *CategoryBuilder {
	mutate(b)
	return b
}

func (b *CategoryBuilder) BuildDomain() *consultation.Category {
	return consultation.ReconstructCategory(b.ID, b.Name, b.PricePer15MinCents, b.Description)
}

func (b *CategoryBuilder) BuildSnapshot() *shared.CategorySnapshot {
	return &shared.CategorySnapshot{
		ID:                 b.ID,
		Name:               b.Name,
		PricePer15MinCents: b.PricePer15MinCents,
		Description:        b.Description,
	}
}

func (b *CategoryBuilder) BuildView() *queries.CategoryView {
	return &queries.CategoryView{
		ID:                 b.ID,
		Name:               string(b.Name),
		PricePer15MinCents: b.PricePer15MinCents,
		Description:        b.Description,
	}
}

type AppointmentRequestBuilder struct {
	CategoryID  uuid.UUID
	Date        string
	Start       string
	DurationMin int
}

func NewAppointmentRequestBuilder() *AppointmentRequestBuilder {
	return &AppointmentRequestBuilder{
		CategoryID:  uuid.New(),
		Date:        Tomorrow().Format("2006-01-02"),
		Start:       "10:00",
		DurationMin: 60,
	}
}

func (b *AppointmentRequestBuilder) With(mutate func(*AppointmentRequestBuilder)) *AppointmentRequestBuilder {
	mutate(b)
	return b
}

func (b *AppointmentRequestBuilder) BuildBookRequestDTO() reqdto.BookAppointmentRequest {
	return reqdto.BookAppointmentRequest{
		CategoryID:  b.CategoryID,
		Date:        b.Date,
		Start:       b.Start,
		DurationMin: b.DurationMin,
	}
}

func (b *AppointmentRequestBuilder) BuildAddCartItemRequestDTO() reqdto.AddCartItemRequest {
	return reqdto.AddCartItemRequest{
		CategoryID:  b.CategoryID,
		Date:        b.Date,
		Start:       b.Start,
		DurationMin: b.DurationMin,
	}
}
