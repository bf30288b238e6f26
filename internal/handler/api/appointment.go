package api

import (
	"errors"
	"net/http"

	reqdto "legalbook/internal/handler/dto/request"
	resdto "legalbook/internal/handler/dto/response"
	"legalbook/internal/handler/middleware"
	"legalbook/internal/usecase/commands"
	"legalbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AppointmentHandler struct {
	commands commands.AppointmentCommands
	orders   queries.OrderQueries
}

func NewAppointmentHandler(cmds commands.AppointmentCommands, orders queries.OrderQueries) *AppointmentHandler {
	return &AppointmentHandler{
		commands: cmds,
		orders:   orders,
	}
}

// @Summary Book appointment
// @Description Book a consultation slot directly, bypassing the cart
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BookAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.BookAppointmentResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /consultations/appointments [post]
func (h *AppointmentHandler) Book(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BookAppointmentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	id, err := h.commands.Book(c.Request.Context(), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrValidation):
			writeSlotValidationError(c, err)
		case errors.Is(err, commands.ErrCategoryNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Category not found",
			})
		case errors.Is(err, commands.ErrSlotConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Slot is already booked",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.BookAppointmentResponse{ID: id})
}

// @Summary Cancel appointment
// @Description Cancel an unpaid appointment owned by the caller
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /consultations/appointments/{id} [delete]
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid appointment ID format",
		})
		return
	}

	if err := h.commands.Cancel(c.Request.Context(), userID, appointmentID); err != nil {
		switch {
		case errors.Is(err, commands.ErrAppointmentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Appointment not found",
			})
		case errors.Is(err, commands.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Appointment belongs to another user",
			})
		case errors.Is(err, commands.ErrPaidImmutable):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Paid appointments cannot be cancelled",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary List appointments
// @Description List all appointments for the current user
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 401 {object} map[string]string
// @Router /consultations/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	views, err := h.orders.ListAppointments(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.AppointmentResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromAppointmentView(v)
	}
	c.JSON(http.StatusOK, response)
}
