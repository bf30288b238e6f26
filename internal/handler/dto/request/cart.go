package request

import (
	"time"

	"legalbook/internal/domain/consultation"
	"legalbook/internal/usecase/commands"

	"github.com/google/uuid"
)

type AddCartItemRequest struct {
	CategoryID  uuid.UUID `json:"categoryId" binding:"required"`
	Date        string    `json:"date" binding:"required"`
	Start       string    `json:"start" binding:"required"`
	DurationMin int       `json:"durationMin" binding:"required"`
}

func (r AddCartItemRequest) ToInput() (commands.AddCartItemInput, error) {
	slot, err := parseSlotInput(r.Date, r.Start, r.DurationMin)
	if err != nil {
		return commands.AddCartItemInput{}, err
	}
	return commands.AddCartItemInput{
		CategoryID: r.CategoryID,
		Slot:       slot,
	}, nil
}

// UpdateCartItemRequest is a partial update: absent fields keep the item's
// current value.
type UpdateCartItemRequest struct {
	CategoryID  *uuid.UUID `json:"categoryId,omitempty"`
	Date        *string    `json:"date,omitempty"`
	Start       *string    `json:"start,omitempty"`
	DurationMin *int       `json:"durationMin,omitempty"`
}

func (r UpdateCartItemRequest) ToInput() (commands.UpdateCartItemInput, error) {
	input := commands.UpdateCartItemInput{CategoryID: r.CategoryID}

	if r.Date != nil {
		day, err := time.Parse(dateLayout, *r.Date)
		if err != nil {
			return commands.UpdateCartItemInput{}, ErrInvalidDate
		}
		input.Date = &day
	}
	if r.Start != nil {
		startTime, err := consultation.ParseTimeOfDay(*r.Start)
		if err != nil {
			return commands.UpdateCartItemInput{}, ErrInvalidStart
		}
		input.Start = &startTime
	}
	if r.DurationMin != nil {
		d := consultation.Duration(*r.DurationMin)
		input.Duration = &d
	}
	return input, nil
}
