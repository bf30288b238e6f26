//go:build unit

package consultation_test

import (
	"testing"

	"legalbook/internal/domain/consultation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCategory(t *testing.T) {
	t.Run("valid category", func(t *testing.T) {
		cat, err := consultation.NewCategory(consultation.CategoryFamilyLaw, 4500, "Family matters")
		require.NoError(t, err)
		assert.Equal(t, consultation.CategoryFamilyLaw, cat.Name())
		assert.Equal(t, int64(4500), cat.PricePer15MinCents())
	})

	t.Run("unknown name rejected", func(t *testing.T) {
		_, err := consultation.NewCategory(consultation.CategoryName("Astrology"), 4500, "")
		require.ErrorIs(t, err, consultation.ErrInvalidCategoryName)
	})

	// The bound matches the column constraint: strictly positive.
	t.Run("zero unit price rejected", func(t *testing.T) {
		_, err := consultation.NewCategory(consultation.CategoryFamilyLaw, 0, "")
		require.ErrorIs(t, err, consultation.ErrNonPositiveUnitPrice)
	})

	t.Run("negative unit price rejected", func(t *testing.T) {
		_, err := consultation.NewCategory(consultation.CategoryFamilyLaw, -100, "")
		require.ErrorIs(t, err, consultation.ErrNonPositiveUnitPrice)
	})
}
