package consultation

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeFormat   = errors.New("time must be in HH:MM format")
	ErrDateInPast          = errors.New("appointment date cannot be in the past")
	ErrOutsideWorkingHours = errors.New("appointments are only available between 09:00 and 18:00")
	ErrEndsAfterClose      = errors.New("appointment would end after working hours")
	ErrInvalidDuration     = errors.New("duration must be one of 15, 30, 60 or 120 minutes")
)

// Working hours. The close boundary is exclusive on both ends: a session may
// neither start at 18:00 nor run up to 18:00.
const (
	workingHoursStart = 9 * 60
	workingHoursEnd   = 18 * 60
)

// TimeOfDay is a wall-clock start time expressed as minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, ErrInvalidTimeFormat
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) Add(d Duration) TimeOfDay {
	return t + TimeOfDay(d)
}

// Slot is a validated candidate booking slot. The same rules apply whether the
// slot is booked directly or staged in a cart.
type Slot struct {
	date     time.Time
	start    TimeOfDay
	duration Duration
}

// NewSlot validates the schedule rules against "today" as supplied by the
// caller's clock. Same-day slots are allowed.
func NewSlot(date time.Time, start TimeOfDay, duration Duration, today time.Time) (Slot, error) {
	day := NormalizeDate(date)
	if day.Before(NormalizeDate(today)) {
		return Slot{}, ErrDateInPast
	}
	if start < workingHoursStart || start >= workingHoursEnd {
		return Slot{}, ErrOutsideWorkingHours
	}
	if !duration.IsValid() {
		return Slot{}, ErrInvalidDuration
	}
	if start.Add(duration) >= workingHoursEnd {
		return Slot{}, ErrEndsAfterClose
	}
	return Slot{date: day, start: start, duration: duration}, nil
}

// ReconstructSlot rebuilds a slot from storage without re-running the
// booking-time rules; persisted slots may legitimately be in the past.
func ReconstructSlot(date time.Time, start TimeOfDay, duration Duration) Slot {
	return Slot{date: NormalizeDate(date), start: start, duration: duration}
}

func (s Slot) Date() time.Time    { return s.date }
func (s Slot) Start() TimeOfDay   { return s.start }
func (s Slot) Duration() Duration { return s.duration }
func (s Slot) End() TimeOfDay     { return s.start.Add(s.duration) }

// NormalizeDate truncates a timestamp to its calendar day in UTC so that slot
// dates compare by day regardless of the wall-clock component.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
