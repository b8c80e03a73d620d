package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lodgeos/internal/domain"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *PagMeta    `json:"meta,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PagMeta holds pagination metadata.
type PagMeta struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondPaginated sends a 200 success response with pagination metadata.
func RespondPaginated(c *gin.Context, data interface{}, meta PagMeta) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: &meta})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN", "forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid credentials"
	case errors.Is(err, domain.ErrUserInactive):
		return http.StatusForbidden, "USER_INACTIVE", "user is inactive"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "email already registered"
	case errors.Is(err, domain.ErrInvalidStayDates):
		return http.StatusBadRequest, "INVALID_STAY_DATES", "check-out must be after check-in"
	case errors.Is(err, domain.ErrInvalidRate):
		return http.StatusBadRequest, "INVALID_RATE", "rate per night must be positive"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "INVALID_AMOUNT", "amount is out of range"
	case errors.Is(err, domain.ErrInvalidGSTPercent):
		return http.StatusBadRequest, "INVALID_GST_PERCENT", "gst percent must be between 0 and 100"
	case errors.Is(err, domain.ErrInvalidGSTIN):
		return http.StatusBadRequest, "INVALID_GSTIN", "GSTIN does not match the standard 15-character format"
	case errors.Is(err, domain.ErrDuplicateRoomNumber):
		return http.StatusConflict, "DUPLICATE_ROOM_NUMBER", "room number already exists"
	case errors.Is(err, domain.ErrRoomTypeInUse):
		return http.StatusConflict, "ROOM_TYPE_IN_USE", "room type is referenced by existing rooms"
	case errors.Is(err, domain.ErrRoomUnavailable):
		return http.StatusConflict, "ROOM_UNAVAILABLE", "room is already booked for an overlapping date range"
	case errors.Is(err, domain.ErrInvalidStatusTransition):
		return http.StatusConflict, "INVALID_STATUS_TRANSITION", "status transition not permitted"
	case errors.Is(err, domain.ErrBillAlreadyExists):
		return http.StatusConflict, "BILL_ALREADY_EXISTS", "a bill has already been generated for this booking"
	case errors.Is(err, domain.ErrBillNotFinalized):
		return http.StatusBadRequest, "BILL_NOT_FINALIZED", "bill has not been finalized"
	case errors.Is(err, domain.ErrBillAlreadyFinalized):
		return http.StatusConflict, "BILL_ALREADY_FINALIZED", "bill has already been finalized"
	case errors.Is(err, domain.ErrBillNumberConflict):
		return http.StatusConflict, "BILL_NUMBER_CONFLICT", "invoice number was issued concurrently; retry the request"
	case errors.Is(err, domain.ErrCounterRegression):
		return http.StatusConflict, "COUNTER_REGRESSION", "starting number would re-issue an already issued invoice number"
	case errors.Is(err, domain.ErrSettingsNotConfigured):
		return http.StatusConflict, "SETTINGS_NOT_CONFIGURED", "lodge settings must be configured before billing"
	case errors.Is(err, domain.ErrInvalidReportFilter):
		return http.StatusBadRequest, "INVALID_REPORT_FILTER", "invalid report filter value"
	case errors.Is(err, domain.ErrUnsupportedFileType):
		return http.StatusBadRequest, "UNSUPPORTED_FILE_TYPE", "unsupported file type; allowed: jpg, jpeg, png"
	case errors.Is(err, domain.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size"
	case errors.Is(err, domain.ErrUploadFailed):
		return http.StatusInternalServerError, "UPLOAD_FAILED", "file upload to storage failed"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	status, code, msg := MapDomainError(err)
	if status >= 500 {
		requestID, _ := c.Get("request_id")
		log.Printf("[%s] internal error: %v", requestID, err)
	}
	RespondError(c, status, code, msg)
}
