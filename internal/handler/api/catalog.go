package api

import (
	"net/http"
	"time"

	"legalbook/internal/domain/consultation"
	resdto "legalbook/internal/handler/dto/response"
	"legalbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalog queries.CatalogQueries
}

func NewCatalogHandler(catalog queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// @Summary List consultation categories
// @Description List all legal consultation categories with their unit prices
// @Tags catalog
// @Produce json
// @Success 200 {array} resdto.CategoryResponse
// @Router /consultations/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	views, err := h.catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.CategoryResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromCategoryView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get booked times
// @Description List booked start times for a category on a given day
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /consultations/categories/{id}/availability [get]
func (h *CatalogHandler) GetAvailability(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	times, err := h.catalog.BookedTimes(c.Request.Context(), categoryID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if times == nil {
		times = []string{}
	}
	c.JSON(http.StatusOK, resdto.AvailabilityResponse{
		CategoryID:  categoryID,
		Date:        dateStr,
		BookedTimes: times,
	})
}

// @Summary Check a single slot
// @Description Report whether a start time is still free for a category on a given day
// @Tags catalog
// @Produce json
// @Param id path string true "Category ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param start query string true "Start time (HH:MM)"
// @Success 200 {object} resdto.SlotCheckResponse
// @Failure 400 {object} map[string]string
// @Router /consultations/categories/{id}/slot-check [get]
func (h *CatalogHandler) CheckSlot(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid category ID format",
		})
		return
	}

	dateStr := c.Query("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	start, err := consultation.ParseTimeOfDay(c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid start time, expected HH:MM",
		})
		return
	}

	free, err := h.catalog.IsSlotFree(c.Request.Context(), categoryID, date, start)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.SlotCheckResponse{
		CategoryID: categoryID,
		Date:       dateStr,
		Start:      start.String(),
		Available:  free,
	})
}
