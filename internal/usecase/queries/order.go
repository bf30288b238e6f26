package queries

import (
	"context"

	"legalbook/internal/infra"
	"legalbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrOrderNotFound = errs.New("order not found")

type OrderReadStore interface {
	FindByID(ctx context.Context, orderID uuid.UUID) (*OrderView, error)
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
}

type AppointmentReadStore interface {
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error)
}

type OrderQueries interface {
	// GetByID returns an order only to its owner. Non-existent and
	// not-owned look identical to the caller.
	GetByID(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error)
	ListAppointments(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error)
}

type orderQueriesImpl struct {
	orders       OrderReadStore
	appointments AppointmentReadStore
}

func NewOrderQueries(orders OrderReadStore, appointments AppointmentReadStore) OrderQueries {
	return &orderQueriesImpl{
		orders:       orders,
		appointments: appointments,
	}
}

func (q *orderQueriesImpl) GetByID(ctx context.Context, userID, orderID uuid.UUID) (*OrderView, error) {
	view, err := q.orders.FindByID(ctx, orderID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if view.UserID != userID {
		return nil, ErrOrderNotFound
	}
	return view, nil
}

func (q *orderQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]*OrderView, error) {
	return q.orders.FindByUser(ctx, userID)
}

func (q *orderQueriesImpl) ListAppointments(ctx context.Context, userID uuid.UUID) ([]*AppointmentView, error) {
	return q.appointments.FindByUser(ctx, userID)
}
