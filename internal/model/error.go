package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Message string      `json:"message"`
	Fields  FieldErrors `json:"fields,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeDuplicateOrder      = "DUPLICATE_ORDER_NUMBER"
	ErrCodeStorageUnavailable  = "STORAGE_UNAVAILABLE"
	ErrCodeMailerNotConfigured = "MAILER_NOT_CONFIGURED"
	ErrCodeNotificationFailed  = "NOTIFICATION_FAILED"
	ErrCodeInternalError       = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound      = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound        = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrDuplicateOrderNumber = NewDomainError(ErrCodeDuplicateOrder, "An order with this order number already exists")
	ErrStorageUnavailable   = NewDomainError(ErrCodeStorageUnavailable, "Order storage is unavailable")
	ErrMailerNotConfigured  = NewDomainError(ErrCodeMailerNotConfigured, "SMTP credentials are not configured")
	ErrNotificationFailed   = NewDomainError(ErrCodeNotificationFailed, "Failed to send order email")
)
