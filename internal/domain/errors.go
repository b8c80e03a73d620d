package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")
	ErrDuplicateEmail     = errors.New("email already registered")

	ErrInvalidStayDates  = errors.New("check-out must be after check-in")
	ErrInvalidRate       = errors.New("rate per night must be positive")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInvalidGSTPercent = errors.New("gst percent must be between 0 and 100")
	ErrInvalidGSTIN      = errors.New("invalid GSTIN format")

	ErrDuplicateRoomNumber = errors.New("room number already exists")
	ErrRoomTypeInUse       = errors.New("room type is referenced by existing rooms")
	ErrRoomUnavailable     = errors.New("room is already booked for an overlapping date range")

	ErrInvalidStatusTransition = errors.New("status transition not permitted")

	ErrBillAlreadyExists    = errors.New("a bill has already been generated for this booking")
	ErrBillNotFinalized     = errors.New("bill has not been finalized")
	ErrBillAlreadyFinalized = errors.New("bill has already been finalized")
	ErrBillNumberConflict   = errors.New("invoice number already issued, retry")
	ErrCounterRegression    = errors.New("starting number would re-issue an already issued invoice number")

	ErrSettingsNotConfigured = errors.New("lodge settings have not been configured")

	ErrInvalidReportFilter = errors.New("invalid report filter value")

	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrFileTooLarge        = errors.New("file exceeds maximum allowed size")
	ErrUploadFailed        = errors.New("file upload to storage failed")
)
