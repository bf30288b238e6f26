package shared

import (
	"context"

	"legalbook/internal/domain/cart"
	"legalbook/internal/domain/consultation"
	"legalbook/internal/domain/order"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full read-committed transaction for write operations with retry
	// on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// Reads: pool-backed command reads for validation outside transactions
	Reads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Carts() CartRepository
	Orders() OrderRepository
	Reconciliations() ReconciliationRepository
	Reads() CommandReads
}

// CommandReads are the write-side's own reads: snapshots and entities needed
// to make a command decision, scoped to the surrounding transaction when
// obtained from a Tx.
type CommandReads interface {
	CategoryByID(ctx context.Context, id uuid.UUID) (*CategorySnapshot, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*consultation.Appointment, error)
	// PaidSlotTaken reports whether a paid appointment already occupies the
	// exact (category, date, start) tuple. Unpaid appointments and other
	// users' cart items do not count: the cart reserves no capacity.
	PaidSlotTaken(ctx context.Context, categoryID uuid.UUID, slot consultation.Slot) (bool, error)
	CartItemByID(ctx context.Context, itemID uuid.UUID) (*cart.Item, error)
	CartItemsByUser(ctx context.Context, userID uuid.UUID) ([]*cart.Item, error)
	CartOwner(ctx context.Context, cartID uuid.UUID) (uuid.UUID, error)
	OrderWithItems(ctx context.Context, orderID uuid.UUID) (*order.Order, error)
}

type AppointmentRepository interface {
	// Insert relies on the storage-level unique index over
	// (category, date, start); a violation surfaces as KindDuplicateKey.
	Insert(ctx context.Context, a *consultation.Appointment) error
	// InsertIfSlotFree is the atomic create-if-absent used by settlement:
	// returns false without error when the slot is already taken.
	InsertIfSlotFree(ctx context.Context, a *consultation.Appointment) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type CartRepository interface {
	// GetOrCreate returns the user's cart, creating it lazily on first use.
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*cart.Cart, error)
	InsertItem(ctx context.Context, item *cart.Item) error
	UpdateItem(ctx context.Context, item *cart.Item) error
	DeleteItem(ctx context.Context, itemID uuid.UUID) error
	ClearByUserID(ctx context.Context, userID uuid.UUID) error
}

type OrderRepository interface {
	// Insert persists the order and all of its item snapshots.
	Insert(ctx context.Context, o *order.Order) error
	SetPaymentIntent(ctx context.Context, orderID uuid.UUID, intentID string) error
	// TransitionStatus performs the atomic conditional state transition:
	// UPDATE ... WHERE id = $1 AND status = from. Returns false when no row
	// matched, which is how replayed settlement events become no-ops.
	TransitionStatus(ctx context.Context, orderID uuid.UUID, from, to order.Status) (bool, error)
	LinkAppointment(ctx context.Context, orderItemID, appointmentID uuid.UUID) error
}

type ReconciliationRepository interface {
	Record(ctx context.Context, ex *order.ReconciliationException) error
}
