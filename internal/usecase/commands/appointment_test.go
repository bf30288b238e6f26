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

type AppointmentCommandsTestSuite struct {
	suite.Suite
	store        *fake.Store
	clock        *clock.MockClock
	appointments commands.AppointmentCommands

	userID   uuid.UUID
	category *builder.CategoryBuilder
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.store = fake.NewStore()
	s.clock = clock.NewMockClock(time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC))
	s.appointments = commands.NewAppointmentCommands(fake.NewUnitOfWork(s.store), s.clock)
	s.userID = uuid.New()

	s.category = builder.NewCategoryBuilder()
	s.store.Categories[s.category.ID] = s.category.BuildSnapshot()
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func (s *AppointmentCommandsTestSuite) bookInput(mutate ...func(*commands.BookAppointmentInput)) commands.BookAppointmentInput {
	input := commands.BookAppointmentInput{
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

func (s *AppointmentCommandsTestSuite) TestBook() {
	s.Run("success: creates an unpaid appointment with the category price", func() {
		s.SetupTest()

		id, err := s.appointments.Book(context.Background(), s.userID, s.bookInput())

		s.Require().NoError(err)
		booked, ok := s.store.Appointments[id]
		s.Require().True(ok)
		s.False(booked.IsPaid())
		s.Equal(s.userID, booked.UserID())
		// One hour at the category's per-15-minute rate.
		s.Equal(s.category.PricePer15MinCents*4, booked.TotalPriceCents())
	})

	s.Run("past date is rejected", func() {
		s.SetupTest()
		input := s.bookInput(func(i *commands.BookAppointmentInput) {
			i.Slot.Date = time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
		})

		_, err := s.appointments.Book(context.Background(), s.userID, input)

		s.ErrorIs(err, commands.ErrValidation)
	})

	s.Run("slot running past closing time is rejected", func() {
		s.SetupTest()
		input := s.bookInput(func(i *commands.BookAppointmentInput) {
			i.Slot.Start = consultation.NewTimeOfDay(17, 0)
			i.Slot.Duration = consultation.DurationHour
		})

		_, err := s.appointments.Book(context.Background(), s.userID, input)

		s.ErrorIs(err, commands.ErrValidation)
	})

	s.Run("unknown category is rejected", func() {
		s.SetupTest()
		input := s.bookInput(func(i *commands.BookAppointmentInput) {
			i.CategoryID = uuid.New()
		})

		_, err := s.appointments.Book(context.Background(), s.userID, input)

		s.ErrorIs(err, commands.ErrCategoryNotFound)
	})

	s.Run("occupied slot conflicts even when unpaid", func() {
		s.SetupTest()
		_, err := s.appointments.Book(context.Background(), uuid.New(), s.bookInput())
		s.Require().NoError(err)

		_, err = s.appointments.Book(context.Background(), s.userID, s.bookInput())

		s.ErrorIs(err, commands.ErrSlotConflict)
		s.Len(s.store.Appointments, 1)
	})

	s.Run("same start in a different category does not conflict", func() {
		s.SetupTest()
		other := builder.NewCategoryBuilder().With(func(b *builder.CategoryBuilder) {
			b.Name = "Contracts"
			b.PricePer15MinCents = 5500
		})
		s.store.Categories[other.ID] = other.BuildSnapshot()

		_, err := s.appointments.Book(context.Background(), s.userID, s.bookInput())
		s.Require().NoError(err)

		_, err = s.appointments.Book(context.Background(), s.userID, s.bookInput(func(i *commands.BookAppointmentInput) {
			i.CategoryID = other.ID
		}))

		s.NoError(err)
		s.Len(s.store.Appointments, 2)
	})
}

func (s *AppointmentCommandsTestSuite) TestCancel() {
	s.Run("success: deletes an unpaid owned appointment", func() {
		s.SetupTest()
		id, err := s.appointments.Book(context.Background(), s.userID, s.bookInput())
		s.Require().NoError(err)

		s.Require().NoError(s.appointments.Cancel(context.Background(), s.userID, id))
		s.Empty(s.store.Appointments)
	})

	s.Run("unknown appointment", func() {
		s.SetupTest()

		err := s.appointments.Cancel(context.Background(), s.userID, uuid.New())

		s.ErrorIs(err, commands.ErrAppointmentNotFound)
	})

	s.Run("someone else's appointment is off limits", func() {
		s.SetupTest()
		id, err := s.appointments.Book(context.Background(), uuid.New(), s.bookInput())
		s.Require().NoError(err)

		err = s.appointments.Cancel(context.Background(), s.userID, id)

		s.ErrorIs(err, commands.ErrForbidden)
		s.Len(s.store.Appointments, 1)
	})

	s.Run("paid appointment cannot be cancelled", func() {
		s.SetupTest()
		paid := consultation.NewAppointment(
			s.userID,
			s.category.BuildDomain(),
			builder.NewSlotBuilder().Build(),
			true,
		)
		s.store.Appointments[paid.ID()] = paid

		err := s.appointments.Cancel(context.Background(), s.userID, paid.ID())

		s.ErrorIs(err, commands.ErrPaidImmutable)
		s.Len(s.store.Appointments, 1)
	})
}
