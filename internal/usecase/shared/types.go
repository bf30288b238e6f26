package shared

import (
	"legalbook/internal/domain/consultation"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on read-side query types
type CategorySnapshot struct {
	ID                 uuid.UUID
	Name               consultation.CategoryName
	PricePer15MinCents int64
	Description        string
}

func (s *CategorySnapshot) ToDomain() *consultation.Category {
	return consultation.ReconstructCategory(s.ID, s.Name, s.PricePer15MinCents, s.Description)
}
