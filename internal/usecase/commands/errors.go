package commands

import (
	"legalbook/internal/pkg/errs"
)

var (
	ErrCategoryNotFound    = errs.New("category not found")
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrCartItemNotFound    = errs.New("cart item not found")
	ErrValidation          = errs.New("validation failed")
	ErrSlotConflict        = errs.New("slot is already booked for this category")
	ErrSlotAlreadyPaid     = errs.New("slot is already taken by a paid appointment")
	ErrPaidImmutable       = errs.New("paid appointment cannot be cancelled")
	ErrForbidden           = errs.New("caller does not own this resource")
	ErrEmptyCart           = errs.New("cart is empty")
	ErrInvalidTotal        = errs.New("cart total must be positive")
	ErrUpstreamPayment     = errs.New("payment provider request failed")
	ErrInvalidSignature    = errs.New("invalid webhook signature")
	ErrDatabase            = errs.New("database operation failed")
)
