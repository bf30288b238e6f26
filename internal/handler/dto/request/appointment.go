package request

import (
	"time"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/pkg/errs"
	"legalbook/internal/usecase/commands"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidDate  = errs.New("invalid date format, expected YYYY-MM-DD")
	ErrInvalidStart = errs.New("invalid start time format, expected HH:MM")
)

// BookAppointmentRequest carries schedule fields only. Clients never send
// prices; totals are computed server-side from the catalog.
type BookAppointmentRequest struct {
	CategoryID  uuid.UUID `json:"categoryId" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	Start       string    `json:"start" binding:"required"`
	DurationMin int       `json:"durationMin" binding:"required"`
}

func (r BookAppointmentRequest) ToInput() (commands.BookAppointmentInput, error) {
	slot, err := parseSlotInput(r.Date, r.Start, r.DurationMin)
	if err != nil {
		return commands.BookAppointmentInput{}, err
	}
	return commands.BookAppointmentInput{
		CategoryID: r.CategoryID,
		Slot:       slot,
	}, nil
}

func parseSlotInput(date, start string, durationMin int) (commands.SlotInput, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return commands.SlotInput{}, ErrInvalidDate
	}
	startTime, err := consultation.ParseTimeOfDay(start)
	if err != nil {
		return commands.SlotInput{}, ErrInvalidStart
	}
	return commands.SlotInput{
		Date:     day,
		Start:    startTime,
		Duration: consultation.Duration(durationMin),
	}, nil
}
