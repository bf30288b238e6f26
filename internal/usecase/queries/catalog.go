package queries

import (
	"context"
	"time"

	"legalbook/internal/domain/consultation"

	"github.com/google/uuid"
)

type CategoryReadStore interface {
	List(ctx context.Context) ([]*CategoryView, error)
}

type AvailabilityReadStore interface {
	// BookedStartTimes returns the start times of all appointments for the
	// category on the given day, in ascending order.
	BookedStartTimes(ctx context.Context, categoryID uuid.UUID, date time.Time) ([]consultation.TimeOfDay, error)
	SlotTaken(ctx context.Context, categoryID uuid.UUID, date time.Time, start consultation.TimeOfDay) (bool, error)
}

type CatalogQueries interface {
	ListCategories(ctx context.Context) ([]*CategoryView, error)
	// BookedTimes answers availability lookups; read-only, no side effects.
	BookedTimes(ctx context.Context, categoryID uuid.UUID, date time.Time) ([]string, error)
	IsSlotFree(ctx context.Context, categoryID uuid.UUID, date time.Time, start consultation.TimeOfDay) (bool, error)
}

type catalogQueriesImpl struct {
	categories   CategoryReadStore
	availability AvailabilityReadStore
}

func NewCatalogQueries(categories CategoryReadStore, availability AvailabilityReadStore) CatalogQueries {
	return &catalogQueriesImpl{
		categories:   categories,
		availability: availability,
	}
}

func (q *catalogQueriesImpl) ListCategories(ctx context.Context) ([]*CategoryView, error) {
	return q.categories.List(ctx)
}

func (q *catalogQueriesImpl) BookedTimes(ctx context.Context, categoryID uuid.UUID, date time.Time) ([]string, error) {
	times, err := q.availability.BookedStartTimes(ctx, categoryID, date)
	if err != nil {
		return nil, err
	}
	result := make([]string, len(times))
	for i, t := range times {
		result[i] = t.String()
	}
	return result, nil
}

func (q *catalogQueriesImpl) IsSlotFree(ctx context.Context, categoryID uuid.UUID, date time.Time, start consultation.TimeOfDay) (bool, error) {
	taken, err := q.availability.SlotTaken(ctx, categoryID, date, start)
	if err != nil {
		return false, err
	}
	return !taken, nil
}
