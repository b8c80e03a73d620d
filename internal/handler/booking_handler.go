package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lodgeos/internal/domain"
	"lodgeos/internal/service"
)

// BookingHandler handles reservation endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /api/v1/bookings
// @Summary Create a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body service.CreateBookingInput true "Booking details"
// @Success 201 {object} APIResponse{data=domain.Booking}
// @Failure 409 {object} APIResponse "Room already booked for the range"
// @Security BearerAuth
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	var input service.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	booking, err := h.bookingService.Create(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, booking)
}

// Get handles GET /api/v1/bookings/:id
func (h *BookingHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	booking, err := h.bookingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}

// List handles GET /api/v1/bookings
func (h *BookingHandler) List(c *gin.Context) {
	offset, limit := parsePagination(c)
	status := domain.BookingStatus(c.Query("status"))

	bookings, total, err := h.bookingService.List(c.Request.Context(), status, offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bookings, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// Update handles PUT /api/v1/bookings/:id
func (h *BookingHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	var input service.UpdateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	booking, err := h.bookingService.Update(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}

// CheckIn handles POST /api/v1/bookings/:id/check-in
func (h *BookingHandler) CheckIn(c *gin.Context) {
	h.transition(c, domain.BookingCheckedIn)
}

// CheckOut handles POST /api/v1/bookings/:id/check-out
func (h *BookingHandler) CheckOut(c *gin.Context) {
	h.transition(c, domain.BookingCheckedOut)
}

// Cancel handles POST /api/v1/bookings/:id/cancel
func (h *BookingHandler) Cancel(c *gin.Context) {
	h.transition(c, domain.BookingCancelled)
}

func (h *BookingHandler) transition(c *gin.Context, target domain.BookingStatus) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	booking, err := h.bookingService.Transition(c.Request.Context(), id, target)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, booking)
}
