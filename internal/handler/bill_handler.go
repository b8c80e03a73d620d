package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lodgeos/internal/service"
)

// BillHandler handles invoice and payment endpoints.
type BillHandler struct {
	billingService service.BillingService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billingService service.BillingService) *BillHandler {
	return &BillHandler{billingService: billingService}
}

// GenerateForBooking handles POST /api/v1/bookings/:id/generate-bill
// @Summary Generate the invoice for a booking
// @Description Issues the next invoice number of the GST or non-GST series and
// @Description stores a finalized bill. Each booking can be billed once.
// @Tags bills
// @Accept json
// @Produce json
// @Param id path string true "Booking ID (UUID)"
// @Param request body service.GenerateBillInput true "Billing options"
// @Success 201 {object} APIResponse{data=service.BillDetail}
// @Failure 409 {object} APIResponse "Bill already exists"
// @Security BearerAuth
// @Router /bookings/{id}/generate-bill [post]
func (h *BillHandler) GenerateForBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	var input service.GenerateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.billingService.GenerateForBooking(c.Request.Context(), bookingID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, detail)
}

// GetForBooking handles GET /api/v1/bookings/:id/bill
func (h *BillHandler) GetForBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid booking id")
		return
	}

	detail, err := h.billingService.GetByBookingID(c.Request.Context(), bookingID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// CreateManual handles POST /api/v1/bills
func (h *BillHandler) CreateManual(c *gin.Context) {
	var input service.CreateManualBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bill, err := h.billingService.CreateManual(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, bill)
}

// Get handles GET /api/v1/bills/:id
func (h *BillHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill id")
		return
	}

	detail, err := h.billingService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// Finalize handles POST /api/v1/bills/:id/finalize
func (h *BillHandler) Finalize(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill id")
		return
	}

	detail, err := h.billingService.Finalize(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}

// RecordPayment handles POST /api/v1/bills/:id/payments
func (h *BillHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill id")
		return
	}

	var input service.RecordPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	detail, err := h.billingService.RecordPayment(c.Request.Context(), id, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, detail)
}
