package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"lodgeos/internal/domain"
	"lodgeos/internal/service"
)

// CounterHandler handles invoice numbering counter endpoints (admin only).
type CounterHandler struct {
	counterService service.CounterService
}

// NewCounterHandler creates a new CounterHandler.
func NewCounterHandler(counterService service.CounterService) *CounterHandler {
	return &CounterHandler{counterService: counterService}
}

// List handles GET /api/v1/invoice-counters
func (h *CounterHandler) List(c *gin.Context) {
	counters, err := h.counterService.List(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, counters)
}

// SetStartingNumber handles PUT /api/v1/invoice-counters/:series
// @Summary Re-baseline an invoice numbering series
// @Description Sets the series so the next issued invoice number is exactly
// @Description starting_number. Moving a counter backwards is rejected.
// @Tags invoice-counters
// @Accept json
// @Produce json
// @Param series path string true "Series" Enums(GST, NON_GST)
// @Param request body service.SetCounterInput true "New starting number"
// @Success 200 {object} APIResponse{data=domain.InvoiceCounter}
// @Failure 409 {object} APIResponse "Starting number would re-issue a number"
// @Security BearerAuth
// @Router /invoice-counters/{series} [put]
func (h *CounterHandler) SetStartingNumber(c *gin.Context) {
	series := domain.CounterSeries(strings.ToUpper(c.Param("series")))
	if series != domain.SeriesGST && series != domain.SeriesNonGST {
		RespondError(c, http.StatusBadRequest, "INVALID_SERIES", "series must be GST or NON_GST")
		return
	}

	var input service.SetCounterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	counter, err := h.counterService.SetStartingNumber(c.Request.Context(), series, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, counter)
}
