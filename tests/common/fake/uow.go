//go:build unit

package fake

import (
	"context"
	"fmt"
	"sort"

	"legalbook/internal/domain/cart"
	"legalbook/internal/domain/consultation"
	"legalbook/internal/domain/order"
	"legalbook/internal/infra"
	"legalbook/internal/usecase/shared"

	"github.com/google/uuid"
)

// Store is the in-memory state behind the fake unit of work. Tests seed and
// inspect it directly.
type Store struct {
	Categories   map[uuid.UUID]*shared.CategorySnapshot
	Appointments map[uuid.UUID]*consultation.Appointment
	Carts        map[uuid.UUID]*cart.Cart // keyed by user id
	CartItems    map[uuid.UUID]*cart.Item
	Orders       map[uuid.UUID]*order.Order
	Exceptions   []*order.ReconciliationException
}

func NewStore() *Store {
	return &Store{
		Categories:   make(map[uuid.UUID]*shared.CategorySnapshot),
		Appointments: make(map[uuid.UUID]*consultation.Appointment),
		Carts:        make(map[uuid.UUID]*cart.Cart),
		CartItems:    make(map[uuid.UUID]*cart.Item),
		Orders:       make(map[uuid.UUID]*order.Order),
	}
}

func (s *Store) clone() *Store {
	c := NewStore()
	for k, v := range s.Categories {
		c.Categories[k] = v
	}
	for k, v := range s.Appointments {
		c.Appointments[k] = v
	}
	for k, v := range s.Carts {
		c.Carts[k] = v
	}
	for k, v := range s.CartItems {
		c.CartItems[k] = v
	}
	for k, v := range s.Orders {
		c.Orders[k] = v
	}
	c.Exceptions = append(c.Exceptions, s.Exceptions...)
	return c
}

func (s *Store) copyFrom(other *Store) {
	s.Categories = other.Categories
	s.Appointments = other.Appointments
	s.Carts = other.Carts
	s.CartItems = other.CartItems
	s.Orders = other.Orders
	s.Exceptions = other.Exceptions
}

func slotKey(categoryID uuid.UUID, slot consultation.Slot) string {
	return fmt.Sprintf("%s|%s|%s", categoryID, slot.Date().Format("2006-01-02"), slot.Start())
}

// UnitOfWork mimics transactional behavior: Within runs the callback
// against a clone of the store and only commits the clone back on success,
// so a returned error rolls everything back.
type UnitOfWork struct {
	Store *Store
}

func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{Store: store}
}

func (u *UnitOfWork) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	working := u.Store.clone()
	if err := fn(ctx, &fakeTx{store: working}); err != nil {
		return err
	}
	u.Store.copyFrom(working)
	return nil
}

func (u *UnitOfWork) Reads() shared.CommandReads {
	return &fakeReads{store: u.Store}
}

type fakeTx struct {
	store *Store
}

func (t *fakeTx) Appointments() shared.AppointmentRepository {
	return &fakeAppointments{store: t.store}
}

func (t *fakeTx) Carts() shared.CartRepository {
	return &fakeCarts{store: t.store}
}

func (t *fakeTx) Orders() shared.OrderRepository {
	return &fakeOrders{store: t.store}
}

func (t *fakeTx) Reconciliations() shared.ReconciliationRepository {
	return &fakeReconciliations{store: t.store}
}

func (t *fakeTx) Reads() shared.CommandReads {
	return &fakeReads{store: t.store}
}

type fakeAppointments struct {
	store *Store
}

func (r *fakeAppointments) Insert(_ context.Context, a *consultation.Appointment) error {
	key := slotKey(a.CategoryID(), a.Slot())
	for _, existing := range r.store.Appointments {
		if slotKey(existing.CategoryID(), existing.Slot()) == key {
			return infra.WrapRepoErr("slot already booked", nil, infra.KindDuplicateKey)
		}
	}
	r.store.Appointments[a.ID()] = a
	return nil
}

func (r *fakeAppointments) InsertIfSlotFree(_ context.Context, a *consultation.Appointment) (bool, error) {
	key := slotKey(a.CategoryID(), a.Slot())
	for _, existing := range r.store.Appointments {
		if slotKey(existing.CategoryID(), existing.Slot()) == key {
			return false, nil
		}
	}
	r.store.Appointments[a.ID()] = a
	return true, nil
}

func (r *fakeAppointments) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.store.Appointments[id]; !ok {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	delete(r.store.Appointments, id)
	return nil
}

type fakeCarts struct {
	store *Store
}

func (r *fakeCarts) GetOrCreate(_ context.Context, userID uuid.UUID) (*cart.Cart, error) {
	if c, ok := r.store.Carts[userID]; ok {
		return c, nil
	}
	c := cart.NewCart(userID)
	r.store.Carts[userID] = c
	return c, nil
}

func (r *fakeCarts) InsertItem(_ context.Context, item *cart.Item) error {
	r.store.CartItems[item.ID()] = item
	return nil
}

func (r *fakeCarts) UpdateItem(_ context.Context, item *cart.Item) error {
	if _, ok := r.store.CartItems[item.ID()]; !ok {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	r.store.CartItems[item.ID()] = item
	return nil
}

func (r *fakeCarts) DeleteItem(_ context.Context, itemID uuid.UUID) error {
	if _, ok := r.store.CartItems[itemID]; !ok {
		return infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	delete(r.store.CartItems, itemID)
	return nil
}

func (r *fakeCarts) ClearByUserID(_ context.Context, userID uuid.UUID) error {
	userCart, ok := r.store.Carts[userID]
	if !ok {
		return nil
	}
	for id, item := range r.store.CartItems {
		if item.CartID() == userCart.ID() {
			delete(r.store.CartItems, id)
		}
	}
	return nil
}

type fakeOrders struct {
	store *Store
}

func (r *fakeOrders) Insert(_ context.Context, o *order.Order) error {
	r.store.Orders[o.ID()] = o
	return nil
}

func (r *fakeOrders) SetPaymentIntent(_ context.Context, orderID uuid.UUID, intentID string) error {
	o, ok := r.store.Orders[orderID]
	if !ok {
		return infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	r.store.Orders[orderID] = order.ReconstructOrder(
		o.ID(), o.UserID(), o.TotalAmountCents(), o.Status(), intentID,
		o.Items(), o.CreatedAt(), o.UpdatedAt(),
	)
	return nil
}

func (r *fakeOrders) TransitionStatus(_ context.Context, orderID uuid.UUID, from, to order.Status) (bool, error) {
	o, ok := r.store.Orders[orderID]
	if !ok || o.Status() != from {
		return false, nil
	}
	r.store.Orders[orderID] = order.ReconstructOrder(
		o.ID(), o.UserID(), o.TotalAmountCents(), to, o.PaymentIntentID(),
		o.Items(), o.CreatedAt(), o.UpdatedAt(),
	)
	return true, nil
}

func (r *fakeOrders) LinkAppointment(_ context.Context, orderItemID, appointmentID uuid.UUID) error {
	for _, o := range r.store.Orders {
		for _, item := range o.Items() {
			if item.ID() == orderItemID {
				item.LinkAppointment(appointmentID)
				return nil
			}
		}
	}
	return infra.WrapRepoErr("order item not found", nil, infra.KindNotFound)
}

type fakeReconciliations struct {
	store *Store
}

func (r *fakeReconciliations) Record(_ context.Context, ex *order.ReconciliationException) error {
	for _, existing := range r.store.Exceptions {
		if existing.OrderItemID() == ex.OrderItemID() {
			return nil
		}
	}
	r.store.Exceptions = append(r.store.Exceptions, ex)
	return nil
}

type fakeReads struct {
	store *Store
}

func (r *fakeReads) CategoryByID(_ context.Context, id uuid.UUID) (*shared.CategorySnapshot, error) {
	snap, ok := r.store.Categories[id]
	if !ok {
		return nil, infra.WrapRepoErr("category not found", nil, infra.KindNotFound)
	}
	return snap, nil
}

func (r *fakeReads) AppointmentByID(_ context.Context, id uuid.UUID) (*consultation.Appointment, error) {
	a, ok := r.store.Appointments[id]
	if !ok {
		return nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return a, nil
}

func (r *fakeReads) PaidSlotTaken(_ context.Context, categoryID uuid.UUID, slot consultation.Slot) (bool, error) {
	key := slotKey(categoryID, slot)
	for _, a := range r.store.Appointments {
		if a.IsPaid() && slotKey(a.CategoryID(), a.Slot()) == key {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeReads) CartItemByID(_ context.Context, itemID uuid.UUID) (*cart.Item, error) {
	item, ok := r.store.CartItems[itemID]
	if !ok {
		return nil, infra.WrapRepoErr("cart item not found", nil, infra.KindNotFound)
	}
	return item, nil
}

func (r *fakeReads) CartItemsByUser(_ context.Context, userID uuid.UUID) ([]*cart.Item, error) {
	userCart, ok := r.store.Carts[userID]
	if !ok {
		return nil, nil
	}
	var items []*cart.Item
	for _, item := range r.store.CartItems {
		if item.CartID() == userCart.ID() {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].AddedAt().Before(items[j].AddedAt())
	})
	return items, nil
}

func (r *fakeReads) CartOwner(_ context.Context, cartID uuid.UUID) (uuid.UUID, error) {
	for userID, c := range r.store.Carts {
		if c.ID() == cartID {
			return userID, nil
		}
	}
	return uuid.Nil, infra.WrapRepoErr("cart not found", nil, infra.KindNotFound)
}

func (r *fakeReads) OrderWithItems(_ context.Context, orderID uuid.UUID) (*order.Order, error) {
	o, ok := r.store.Orders[orderID]
	if !ok {
		return nil, infra.WrapRepoErr("order not found", nil, infra.KindNotFound)
	}
	return o, nil
}
