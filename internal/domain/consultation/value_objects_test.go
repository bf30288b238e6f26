//go:build unit

package consultation_test

import (
	"testing"
	"time"

	"legalbook/internal/domain/consultation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var today = time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

type slotCase struct {
	name     string
	date     time.Time
	start    consultation.TimeOfDay
	duration consultation.Duration
	errIs    error
}

func TestNewSlot(t *testing.T) {
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("date validation", func(t *testing.T) {
		runSlotCases(t, []slotCase{
			{
				name:     "yesterday rejected",
				date:     today.AddDate(0, 0, -1),
				start:    consultation.NewTimeOfDay(10, 0),
				duration: consultation.DurationHour,
				errIs:    consultation.ErrDateInPast,
			},
			{
				name:     "same day allowed",
				date:     today,
				start:    consultation.NewTimeOfDay(10, 0),
				duration: consultation.DurationHour,
			},
			{
				name:     "future day allowed",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(10, 0),
				duration: consultation.DurationHour,
			},
		})
	})

	t.Run("start time boundaries", func(t *testing.T) {
		runSlotCases(t, []slotCase{
			{
				name:     "08:59 rejected",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(8, 59),
				duration: consultation.DurationQuarter,
				errIs:    consultation.ErrOutsideWorkingHours,
			},
			{
				name:     "09:00 accepted",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(9, 0),
				duration: consultation.DurationQuarter,
			},
			{
				name:     "18:00 rejected as a start time",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(18, 0),
				duration: consultation.DurationQuarter,
				errIs:    consultation.ErrOutsideWorkingHours,
			},
			{
				name:     "23:00 rejected",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(23, 0),
				duration: consultation.DurationQuarter,
				errIs:    consultation.ErrOutsideWorkingHours,
			},
		})
	})

	t.Run("duration validation", func(t *testing.T) {
		runSlotCases(t, []slotCase{
			{
				name:     "45 minutes rejected",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(10, 0),
				duration: consultation.Duration(45),
				errIs:    consultation.ErrInvalidDuration,
			},
			{
				name:     "zero duration rejected",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(10, 0),
				duration: consultation.Duration(0),
				errIs:    consultation.ErrInvalidDuration,
			},
			{
				name:     "120 minutes accepted",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(10, 0),
				duration: consultation.DurationDouble,
			},
		})
	})

	t.Run("end time boundary", func(t *testing.T) {
		runSlotCases(t, []slotCase{
			{
				name:     "16:00 + 120min ends at close, rejected",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(16, 0),
				duration: consultation.DurationDouble,
				errIs:    consultation.ErrEndsAfterClose,
			},
			{
				name:     "16:00 + 60min ends at 17:00, accepted",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(16, 0),
				duration: consultation.DurationHour,
			},
			{
				name:     "17:30 + 15min ends at 17:45, accepted",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(17, 30),
				duration: consultation.DurationQuarter,
			},
			{
				name:     "17:45 + 15min ends at close, rejected",
				date:     tomorrow,
				start:    consultation.NewTimeOfDay(17, 45),
				duration: consultation.DurationQuarter,
				errIs:    consultation.ErrEndsAfterClose,
			},
		})
	})

	t.Run("date is normalized to its calendar day", func(t *testing.T) {
		slot, err := consultation.NewSlot(
			time.Date(2026, 4, 10, 23, 59, 0, 0, time.UTC),
			consultation.NewTimeOfDay(10, 0),
			consultation.DurationHour,
			today,
		)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), slot.Date())
		assert.Equal(t, consultation.NewTimeOfDay(11, 0), slot.End())
	})
}

func runSlotCases(t *testing.T, cases []slotCase) {
	t.Helper()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := consultation.NewSlot(tc.date, tc.start, tc.duration, today)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    consultation.TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: consultation.NewTimeOfDay(9, 0)},
		{in: "17:59", want: consultation.NewTimeOfDay(17, 59)},
		{in: "9am", wantErr: true},
		{in: "25:00", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := consultation.ParseTimeOfDay(tc.in)
			if tc.wantErr {
				require.ErrorIs(t, err, consultation.ErrInvalidTimeFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.in, got.String())
		})
	}
}
