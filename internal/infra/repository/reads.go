package repository

import (
	"context"

	"legalbook/internal/domain/cart"
	"legalbook/internal/domain/consultation"
	"legalbook/internal/domain/order"
	"legalbook/internal/infra"
	"legalbook/internal/infra/db"
	"legalbook/internal/pkg/pgconv"
	"legalbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// CommandReads serves the write side's own lookups. When built over a
// transaction it sees that transaction's uncommitted writes.
type CommandReads struct {
	db db.DBTX
}

func NewCommandReads(tx db.DBTX) *CommandReads {
	return &CommandReads{db: tx}
}

func (r *CommandReads) CategoryByID(ctx context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	var (
		catID       pgtype.UUID
		name        string
		priceCents  int64
		description pgtype.Text
	)
	row := r.db.QueryRow(ctx,
		`SELECT id, name, price_per_15min_cents, description FROM categories WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err := row.Scan(&catID, &name, &priceCents, &description); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get category", err)
	}
	return &shared.CategorySnapshot{
		ID:                 pgconv.UUIDFromPgtype(catID),
		Name:               consultation.CategoryName(name),
		PricePer15MinCents: priceCents,
		Description:        description.String,
	}, nil
}

func (r *CommandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*consultation.Appointment, error) {
	var (
		aptID      pgtype.UUID
		userID     pgtype.UUID
		categoryID pgtype.UUID
		date       pgtype.Date
		start      pgtype.Time
		duration   int32
		priceCents int64
		paid       bool
		createdAt  pgtype.Timestamptz
	)
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, category_id, date, start_time, duration_minutes, price_cents, paid, created_at
		 FROM appointments WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	err := row.Scan(&aptID, &userID, &categoryID, &date, &start, &duration, &priceCents, &paid, &createdAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment", err)
	}
	slot := consultation.ReconstructSlot(
		pgconv.DateFromPgtype(date),
		pgconv.TimeOfDayFromPgtype(start),
		consultation.Duration(duration),
	)
	return consultation.ReconstructAppointment(
		pgconv.UUIDFromPgtype(aptID),
		pgconv.UUIDFromPgtype(userID),
		pgconv.UUIDFromPgtype(categoryID),
		slot,
		priceCents,
		paid,
		pgconv.TimeFromPgtype(createdAt),
	), nil
}

func (r *CommandReads) PaidSlotTaken(ctx context.Context, categoryID uuid.UUID, slot consultation.Slot) (bool, error) {
	var taken bool
	row := r.db.QueryRow(ctx,
		`SELECT EXISTS (
		     SELECT 1 FROM appointments
		     WHERE category_id = $1 AND date = $2 AND start_time = $3 AND paid
		 )`,
		pgconv.UUIDToPgtype(categoryID),
		pgconv.DateToPgtype(slot.Date()),
		pgconv.TimeOfDayToPgtype(slot.Start()),
	)
	if err := row.Scan(&taken); err != nil {
		return false, infra.WrapRepoErr("failed to check slot", err)
	}
	return taken, nil
}

func scanCartItem(row pgx.Row) (*cart.Item, error) {
	var (
		id         pgtype.UUID
		cartID     pgtype.UUID
		categoryID pgtype.UUID
		date       pgtype.Date
		start      pgtype.Time
		duration   int32
		addedAt    pgtype.Timestamptz
	)
	if err := row.Scan(&id, &cartID, &categoryID, &date, &start, &duration, &addedAt); err != nil {
		return nil, err
	}
	slot := consultation.ReconstructSlot(
		pgconv.DateFromPgtype(date),
		pgconv.TimeOfDayFromPgtype(start),
		consultation.Duration(duration),
	)
	return cart.ReconstructItem(
		pgconv.UUIDFromPgtype(id),
		pgconv.UUIDFromPgtype(cartID),
		pgconv.UUIDFromPgtype(categoryID),
		slot,
		pgconv.TimeFromPgtype(addedAt),
	), nil
}

const cartItemColumns = `id, cart_id, category_id, date, start_time, duration_minutes, added_at`

func (r *CommandReads) CartItemByID(ctx context.Context, itemID uuid.UUID) (*cart.Item, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+cartItemColumns+` FROM cart_items WHERE id = $1`,
		pgconv.UUIDToPgtype(itemID),
	)
	item, err := scanCartItem(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("cart item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get cart item", err)
	}
	return item, nil
}

func (r *CommandReads) CartItemsByUser(ctx context.Context, userID uuid.UUID) ([]*cart.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT ci.id, ci.cart_id, ci.category_id, ci.date, ci.start_time, ci.duration_minutes, ci.added_at
		 FROM cart_items ci
		 JOIN carts c ON c.id = ci.cart_id
		 WHERE c.user_id = $1
		 ORDER BY ci.added_at`,
		pgconv.UUIDToPgtype(userID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list cart items", err)
	}
	defer rows.Close()

	var items []*cart.Item
	for rows.Next() {
		item, err := scanCartItem(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan cart item", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read cart items", err)
	}
	return items, nil
}

func (r *CommandReads) CartOwner(ctx context.Context, cartID uuid.UUID) (uuid.UUID, error) {
	var owner pgtype.UUID
	row := r.db.QueryRow(ctx, `SELECT user_id FROM carts WHERE id = $1`, pgconv.UUIDToPgtype(cartID))
	if err := row.Scan(&owner); err != nil {
		if pgconv.IsNoRows(err) {
			return uuid.Nil, infra.WrapRepoErr("cart not found", err, infra.KindNotFound)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to get cart owner", err)
	}
	return pgconv.UUIDFromPgtype(owner), nil
}

func (r *CommandReads) OrderWithItems(ctx context.Context, orderID uuid.UUID) (*order.Order, error) {
	var (
		id         pgtype.UUID
		userID     pgtype.UUID
		totalCents int64
		status     string
		intentID   pgtype.Text
		createdAt  pgtype.Timestamptz
		updatedAt  pgtype.Timestamptz
	)
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, total_amount_cents, status, payment_intent_id, created_at, updated_at
		 FROM orders WHERE id = $1`,
		pgconv.UUIDToPgtype(orderID),
	)
	err := row.Scan(&id, &userID, &totalCents, &status, &intentID, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("order not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get order", err)
	}

	items, err := r.orderItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return order.ReconstructOrder(
		pgconv.UUIDFromPgtype(id),
		pgconv.UUIDFromPgtype(userID),
		totalCents,
		order.Status(status),
		intentID.String,
		items,
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}

func (r *CommandReads) orderItems(ctx context.Context, orderID uuid.UUID) ([]*order.Item, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, order_id, category_id, category_name, date, start_time, duration_minutes,
		        unit_price_cents, total_price_cents, appointment_id
		 FROM order_items WHERE order_id = $1 ORDER BY date, start_time`,
		pgconv.UUIDToPgtype(orderID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list order items", err)
	}
	defer rows.Close()

	var items []*order.Item
	for rows.Next() {
		var (
			id            pgtype.UUID
			oID           pgtype.UUID
			categoryID    pgtype.UUID
			categoryName  string
			date          pgtype.Date
			start         pgtype.Time
			duration      int32
			unitCents     int64
			totalCents    int64
			appointmentID pgtype.UUID
		)
		err := rows.Scan(&id, &oID, &categoryID, &categoryName, &date, &start, &duration,
			&unitCents, &totalCents, &appointmentID)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan order item", err)
		}
		slot := consultation.ReconstructSlot(
			pgconv.DateFromPgtype(date),
			pgconv.TimeOfDayFromPgtype(start),
			consultation.Duration(duration),
		)
		items = append(items, order.ReconstructItem(
			pgconv.UUIDFromPgtype(id),
			pgconv.UUIDFromPgtype(oID),
			pgconv.UUIDFromPgtype(categoryID),
			consultation.CategoryName(categoryName),
			slot,
			unitCents,
			totalCents,
			pgconv.UUIDPtrFromPgtype(appointmentID),
		))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read order items", err)
	}
	return items, nil
}
