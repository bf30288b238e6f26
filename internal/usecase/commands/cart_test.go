//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/pkg/clock"
	"legalbook/internal/usecase/commands"
	"legalbook/tests/common/builder"
	"legalbook/tests/common/fake"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CartCommandsTestSuite struct {
	suite.Suite
	store *fake.Store
	clock *clock.MockClock
	carts commands.CartCommands

	userID   uuid.UUID
	category *builder.CategoryBuilder
}

func (s *CartCommandsTestSuite) SetupTest() {
	s.store = fake.NewStore()
	s.clock = clock.NewMockClock(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))
	s.carts = commands.NewCartCommands(fake.NewUnitOfWork(s.store), s.clock)
	s.userID = uuid.New()

	s.category = builder.NewCategoryBuilder()
	s.store.Categories[s.category.ID] = s.category.BuildSnapshot()
}

func TestCartCommandsSuite(t *testing.T) {
	suite.Run(t, new(CartCommandsTestSuite))
}

func (s *CartCommandsTestSuite) addInput(mutate ...func(*commands.AddCartItemInput)) commands.AddCartItemInput {
	input := commands.AddCartItemInput{
		CategoryID: s.category.ID,
		Slot: commands.SlotInput{
			Date:     time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			Start:    consultation.NewTimeOfDay(10, 0),
			Duration: consultation.DurationHour,
		},
	}
	for _, m := range mutate {
		m(&input)
	}
	return input
}

// pinSlot drops a paid or unpaid appointment onto the default input slot.
func (s *CartCommandsTestSuite) pinSlot(paid bool) {
	slot, err := consultation.NewSlot(
		time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
		consultation.NewTimeOfDay(10, 0),
		consultation.DurationHour,
		s.clock.Now(),
	)
	s.Require().NoError(err)
	appointment := consultation.NewAppointment(uuid.New(), s.category.BuildDomain(), slot, paid)
	s.store.Appointments[appointment.ID()] = appointment
}

func (s *CartCommandsTestSuite) TestAddItem() {
	s.Run("success: creates the cart lazily and stores the item", func() {
		s.SetupTest()

		itemID, err := s.carts.AddItem(context.Background(), s.userID, s.addInput())

		s.Require().NoError(err)
		s.Require().Contains(s.store.Carts, s.userID)
		item := s.store.CartItems[itemID]
		s.Require().NotNil(item)
		s.Equal(s.category.ID, item.CategoryID())
		s.Equal(s.store.Carts[s.userID].ID(), item.CartID())
	})

	s.Run("items are stamped and read back in insertion order", func() {
		s.SetupTest()

		// Start times deliberately out of chronological order: the read
		// must follow when items were added, not when the slots begin.
		starts := []consultation.TimeOfDay{
			consultation.NewTimeOfDay(14, 0),
			consultation.NewTimeOfDay(9, 0),
			consultation.NewTimeOfDay(11, 30),
		}
		added := s.clock.Now()
		var want []uuid.UUID
		for _, start := range starts {
			input := s.addInput(func(i *commands.AddCartItemInput) {
				i.Slot.Start = start
			})
			id, err := s.carts.AddItem(context.Background(), s.userID, input)
			s.Require().NoError(err)
			want = append(want, id)
			s.clock.Advance(time.Minute)
		}

		items, err := fake.NewUnitOfWork(s.store).Reads().CartItemsByUser(context.Background(), s.userID)
		s.Require().NoError(err)
		s.Require().Len(items, len(want))
		for i, item := range items {
			s.Equal(want[i], item.ID())
			s.Equal(added.Add(time.Duration(i)*time.Minute), item.AddedAt())
		}
	})

	s.Run("invalid slot is rejected", func() {
		s.SetupTest()
		input := s.addInput(func(i *commands.AddCartItemInput) {
			i.Slot.Start = consultation.NewTimeOfDay(8, 0)
		})

		_, err := s.carts.AddItem(context.Background(), s.userID, input)

		s.ErrorIs(err, commands.ErrValidation)
	})

	s.Run("unknown category is rejected", func() {
		s.SetupTest()
		input := s.addInput(func(i *commands.AddCartItemInput) {
			i.CategoryID = uuid.New()
		})

		_, err := s.carts.AddItem(context.Background(), s.userID, input)

		s.ErrorIs(err, commands.ErrCategoryNotFound)
	})

	s.Run("paid appointment blocks the slot", func() {
		s.SetupTest()
		s.pinSlot(true)

		_, err := s.carts.AddItem(context.Background(), s.userID, s.addInput())

		s.ErrorIs(err, commands.ErrSlotAlreadyPaid)
		s.Empty(s.store.CartItems)
	})

	s.Run("unpaid appointment does not block the slot", func() {
		s.SetupTest()
		s.pinSlot(false)

		_, err := s.carts.AddItem(context.Background(), s.userID, s.addInput())

		s.NoError(err)
	})

	s.Run("two users may stage the same slot", func() {
		s.SetupTest()
		_, err := s.carts.AddItem(context.Background(), s.userID, s.addInput())
		s.Require().NoError(err)

		_, err = s.carts.AddItem(context.Background(), uuid.New(), s.addInput())

		s.NoError(err)
		s.Len(s.store.CartItems, 2)
	})
}

func (s *CartCommandsTestSuite) TestUpdateItem() {
	s.Run("partial update keeps unspecified fields", func() {
		s.SetupTest()
		itemID, err := s.carts.AddItem(context.Background(), s.userID, s.addInput())
		s.Require().NoError(err)

		duration := consultation.DurationHalf
		err = s.carts.UpdateItem(context.Background(), s.userID, itemID, commands.UpdateCartItemInput{
			Duration: &duration,
		})

		s.Require().NoError(err)
		updated := s.store.CartItems[itemID]
		s.Equal(consultation.DurationHalf, updated.Slot().Duration())
		s.Equal(s.category.ID, updated.CategoryID())
		s.Equal(consultation.NewTimeOfDay(10, 0), updated.Slot().Start())
	})

	s.Run("merged result is re-validated", func() {
		s.SetupTest()
		itemID, err := s.carts.AddItem(context.Background(), s.userID, s.addInput())
		s.Require().NoError(err)

		// 17:30 + the item's existing one-hour duration runs past close.
		start := consultation.NewTimeOfDay(17, 30)
		err = s.carts.UpdateItem(context.Background(), s.userID, itemID, commands.UpdateCartItemInput{
			Start: &start,
		})

		s.ErrorIs(err, commands.ErrValidation)
		s.Equal(consultation.NewTimeOfDay(10, 0), s.store.CartItems[itemID].Slot().Start())
	})

	s.Run("moving onto a paid slot is rejected", func() {
		s.SetupTest()
		itemID, err := s.carts.AddItem(context.Background(), s.userID, s.addInput(func(i *commands.AddCartItemInput) {
			i.Slot.Start = consultation.NewTimeOfDay(14, 0)
		}))
		s.Require().NoError(err)
		s.pinSlot(true)

		start := consultation.NewTimeOfDay(10, 0)
		err = s.carts.UpdateItem(context.Background(), s.userID, itemID, commands.UpdateCartItemInput{
			Start: &start,
		})

		s.ErrorIs(err, commands.ErrSlotAlreadyPaid)
		s.Equal(consultation.NewTimeOfDay(14, 0), s.store.CartItems[itemID].Slot().Start())
	})

	s.Run("someone else's item reads as not found", func() {
		s.SetupTest()
		itemID, err := s.carts.AddItem(context.Background(), uuid.New(), s.addInput())
		s.Require().NoError(err)

		duration := consultation.DurationHalf
		err = s.carts.UpdateItem(context.Background(), s.userID, itemID, commands.UpdateCartItemInput{
			Duration: &duration,
		})

		s.ErrorIs(err, commands.ErrCartItemNotFound)
	})
}

func (s *CartCommandsTestSuite) TestRemoveItem() {
	s.Run("success", func() {
		s.SetupTest()
		itemID, err := s.carts.AddItem(context.Background(), s.userID, s.addInput())
		s.Require().NoError(err)

		s.Require().NoError(s.carts.RemoveItem(context.Background(), s.userID, itemID))
		s.Empty(s.store.CartItems)
	})

	s.Run("someone else's item reads as not found", func() {
		s.SetupTest()
		itemID, err := s.carts.AddItem(context.Background(), uuid.New(), s.addInput())
		s.Require().NoError(err)

		err = s.carts.RemoveItem(context.Background(), s.userID, itemID)

		s.ErrorIs(err, commands.ErrCartItemNotFound)
		s.Len(s.store.CartItems, 1)
	})
}

func (s *CartCommandsTestSuite) TestClear() {
	s.Run("removes only the caller's items", func() {
		s.SetupTest()
		_, err := s.carts.AddItem(context.Background(), s.userID, s.addInput())
		s.Require().NoError(err)
		otherUser := uuid.New()
		otherItemID, err := s.carts.AddItem(context.Background(), otherUser, s.addInput())
		s.Require().NoError(err)

		s.Require().NoError(s.carts.Clear(context.Background(), s.userID))

		s.Len(s.store.CartItems, 1)
		s.Contains(s.store.CartItems, otherItemID)
	})

	s.Run("clearing an absent cart is a no-op", func() {
		s.SetupTest()

		s.NoError(s.carts.Clear(context.Background(), s.userID))
	})
}
