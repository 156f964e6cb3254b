package errors

import (
	"fmt"
	"net/http"
	"strings"

	"agritoken/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same error code, so errors produced by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Farmer-related errors
	ErrFarmerNotFound = NewBaseError(
		http.StatusNotFound,
		"FARMER_NOT_FOUND",
		"Farmer not found",
		"",
	)

	ErrFarmerNotRegistered = NewBaseError(
		http.StatusBadRequest,
		"FARMER_NOT_REGISTERED",
		"Farmer not registered. Please complete registration first.",
		"",
	)

	ErrFarmerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"FARMER_ALREADY_EXISTS",
		"An account with this identifier is already registered",
		"",
	)

	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	// Asset-related errors
	ErrAssetNotFound = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_FOUND",
		"Asset not found",
		"",
	)

	ErrAssetNotOpen = NewBaseError(
		http.StatusNotFound,
		"ASSET_NOT_OPEN",
		"Asset not found or closed",
		"",
	)

	ErrAssetAlreadyDistributed = NewBaseError(
		http.StatusConflict,
		"ASSET_ALREADY_DISTRIBUTED",
		"Profits for this asset were already distributed",
		"",
	)

	ErrInsufficientTokens = NewBaseError(
		http.StatusBadRequest,
		"INSUFFICIENT_TOKENS",
		"Not enough tokens available",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Event log errors
	ErrLogUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"EVENT_LOG_UNAVAILABLE",
		"Event log cannot accept writes",
		"",
	)

	ErrTopicUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"EVENT_TOPIC_UNAVAILABLE",
		"Failed to initialize topic and no fallback topic ID provided",
		"",
	)

	ErrRehydrationFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"REHYDRATION_FAILED",
		"Failed to rebuild state from the event log",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// LedgerError represents a failed call to the external ledger, implementing the AppError interface.
// The ledger message is surfaced verbatim.
type LedgerError struct {
	err       error
	operation string
}

// NewLedgerError wraps a ledger failure for the given operation.
func NewLedgerError(err error, operation string) AppError {
	return &LedgerError{
		err:       err,
		operation: operation,
	}
}

// Error implements the error interface
func (e *LedgerError) Error() string {
	return errors.Wrapf(e.err, "ledger %s failed", e.operation).Error()
}

// Unwrap returns the underlying ledger error
func (e *LedgerError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *LedgerError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *LedgerError) ErrorCode() string {
	return "LEDGER_ERROR"
}

// Message returns the user-friendly error message
func (e *LedgerError) Message() string {
	return e.err.Error()
}

// Details returns detailed error information
func (e *LedgerError) Details() string {
	return e.operation
}

// DistributionError aggregates payout failures of a profit distribution run.
// Payouts that succeeded before or after a failure are not reversed.
type DistributionError struct {
	AssetID string
	Paid    int
	Failed  int
	// PaidInvestments lists the investments already paid in this run; a retry pays them again.
	PaidInvestments []string
	err             error
}

// NewDistributionError builds the aggregate error; err is usually an errors.Join of every failure.
func NewDistributionError(assetID string, paid, failed int, err error) *DistributionError {
	return &DistributionError{
		AssetID: assetID,
		Paid:    paid,
		Failed:  failed,
		err:     err,
	}
}

// WithPaidInvestments records which investments were paid before the run gave up.
func (e *DistributionError) WithPaidInvestments(ids ...string) *DistributionError {
	e.PaidInvestments = append(e.PaidInvestments, ids...)

	return e
}

// Error implements the error interface
func (e *DistributionError) Error() string {
	return fmt.Sprintf("distribution for asset %s incomplete: %d paid, %d failed: %v", e.AssetID, e.Paid, e.Failed, e.err)
}

// Unwrap returns the joined payout failures
func (e *DistributionError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DistributionError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *DistributionError) ErrorCode() string {
	return "DISTRIBUTION_INCOMPLETE"
}

// Message returns the user-friendly error message
func (e *DistributionError) Message() string {
	return fmt.Sprintf("Distribution incomplete: %d investors paid, %d failed. A retry pays the paid investors again", e.Paid, e.Failed)
}

// Details returns detailed error information
func (e *DistributionError) Details() string {
	if len(e.PaidInvestments) == 0 {
		return e.err.Error()
	}

	return fmt.Sprintf("already paid: %s; %v", strings.Join(e.PaidInvestments, ", "), e.err)
}
