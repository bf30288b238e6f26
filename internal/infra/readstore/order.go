package readstore

import (
	"context"

	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"
	"legalbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type OrderReadStore struct {
	db db.DBTX
}

func NewOrderReadStore(pool db.DBTX) *OrderReadStore {
	return &OrderReadStore{db: pool}
}

const orderColumns = `id, user_id, total_amount_cents, status, payment_intent_id, created_at, updated_at`

func (s *OrderReadStore) FindByID(ctx context.Context, orderID uuid.UUID) (*queries.OrderView, error) {
	row := s.db.QueryRow(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = $1`,
		pgconv.UUIDToPgtype(orderID),
	)
	view, err := scanOrder(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}
	items, err := s.itemsFor(ctx, orderID)
	if err != nil {
		return nil, err
	}
	view.Items = items
	return view, nil
}

func (s *OrderReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.OrderView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`,
		pgconv.UUIDToPgtype(userID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list orders", err)
	}
	defer rows.Close()

	var views []*queries.OrderView
	for rows.Next() {
		view, err := scanOrder(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read orders", err)
	}

	for _, view := range views {
		items, err := s.itemsFor(ctx, view.ID)
		if err != nil {
			return nil, err
		}
		view.Items = items
	}
	return views, nil
}

type orderScanner interface {
	Scan(dest ...any) error
}

func scanOrder(row orderScanner) (*queries.OrderView, error) {
	var (
		id         pgtype.UUID
		userID     pgtype.UUID
		totalCents int64
		status     string
		intentID   pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	if err := row.Scan(&id, &userID, &totalCents, &status, &intentID, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return &queries.OrderView{
		ID:               pgconv.UUIDFromPgtype(id),
		UserID:           pgconv.UUIDFromPgtype(userID),
		TotalAmountCents: totalCents,
		Status:           status,
		PaymentIntentID:  intentID.String,
		CreatedAt:        pgconv.TimeFromPgtype(createdAt),
		UpdatedAt:        pgconv.TimeFromPgtype(updatedAt),
	}, nil
}

func (s *OrderReadStore) itemsFor(ctx context.Context, orderID uuid.UUID) ([]*queries.OrderItemView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, category_id, category_name, date, start_time, duration_minutes,
		        unit_price_cents, total_price_cents, appointment_id
		 FROM order_items WHERE order_id = $1 ORDER BY date, start_time`,
		pgconv.UUIDToPgtype(orderID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	items := make([]*queries.OrderItemView, 0)
	for rows.Next() {
		var (
			id            pgtype.UUID
			categoryID    pgtype.UUID
			name          string
			date          pgtype.Date
			start         pgtype.Time
			duration      int32
			unitCents     int64
			totalCents    int64
			appointmentID pgtype.UUID
		)
		err := rows.Scan(&id, &categoryID, &name, &date, &start, &duration, &unitCents, &totalCents, &appointmentID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		items = append(items, &queries.OrderItemView{
			ID:              pgconv.UUIDFromPgtype(id),
			CategoryID:      pgconv.UUIDFromPgtype(categoryID),
			CategoryName:    name,
			Date:            pgconv.DateFromPgtype(date).Format("2006-01-02"),
			Start:           pgconv.TimeOfDayFromPgtype(start).String(),
			DurationMin:     int(duration),
			UnitPriceCents:  unitCents,
			TotalPriceCents: totalCents,
			AppointmentID:   pgconv.UUIDPtrFromPgtype(appointmentID),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}
	return items, nil
}

type AppointmentReadStore struct {
	db db.DBTX
}

func NewAppointmentReadStore(pool db.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{db: pool}
}

func (s *AppointmentReadStore) FindByUser(ctx context.Context, userID uuid.UUID) ([]*queries.AppointmentView, error) {
	rows, err := s.db.Query(ctx,
		`SELECT a.id, a.user_id, a.category_id, cat.name, cat.price_per_15min_cents,
		        a.date, a.start_time, a.duration_minutes, a.price_cents, a.paid, a.created_at
		 FROM appointments a
		 JOIN categories cat ON cat.id = a.category_id
		 WHERE a.user_id = $1
		 ORDER BY a.date, a.start_time`,
		pgconv.UUIDToPgtype(userID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	defer rows.Close()

	var views []*queries.AppointmentView
	for rows.Next() {
		var (
			id         pgtype.UUID
			uID        pgtype.UUID
			categoryID pgtype.UUID
			name       string
			unitCents  int64
			date       pgtype.Date
			start      pgtype.Time
			duration   int32
			priceCents int64
			paid       bool
			createdAt  pgtype.Timestamptz
		)
		err := rows.Scan(&id, &uID, &categoryID, &name, &unitCents, &date, &start, &duration, &priceCents, &paid, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment", err)
		}
		views = append(views, &queries.AppointmentView{
			ID:                 pgconv.UUIDFromPgtype(id),
			UserID:             pgconv.UUIDFromPgtype(uID),
			CategoryID:         pgconv.UUIDFromPgtype(categoryID),
			CategoryName:       name,
			PricePer15MinCents: unitCents,
			Date:               pgconv.DateFromPgtype(date).Format("2006-01-02"),
			Start:              pgconv.TimeOfDayFromPgtype(start).String(),
			DurationMin:        int(duration),
			TotalPriceCents:    priceCents,
			IsPaid:             paid,
			CreatedAt:          pgconv.TimeFromPgtype(createdAt),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read appointments", err)
	}
	return views, nil
}
