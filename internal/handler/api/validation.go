package api

import (
	"errors"
	"net/http"

	"legalbook/internal/domain/consultation"

	"github.com/gin-gonic/gin"
)

// writeSlotValidationError maps a slot validation failure to a 422 carrying
// the rule that was broken and the request field it applies to, so callers
// can attach the error to the right input.
func writeSlotValidationError(c *gin.Context, err error) {
	field, rule := "slot", "Invalid consultation slot"
	switch {
	case errors.Is(err, consultation.ErrDateInPast):
		field, rule = "date", "Date cannot be in the past"
	case errors.Is(err, consultation.ErrOutsideWorkingHours):
		field, rule = "start", "Start must be between 09:00 and 18:00"
	case errors.Is(err, consultation.ErrEndsAfterClose):
		field, rule = "durationMin", "Slot would run past 18:00"
	case errors.Is(err, consultation.ErrInvalidDuration):
		field, rule = "durationMin", "Duration must be one of 15, 30, 60 or 120 minutes"
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"error":  rule,
		"detail": gin.H{"field": field},
	})
}
