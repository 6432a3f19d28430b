package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON     = "INVALID_JSON"
	ErrCodeValidation      = "VALIDATION_ERROR"
	ErrCodeNoActiveCart    = "NO_ACTIVE_CART"
	ErrCodeEmptyCart       = "EMPTY_CART"
	ErrCodeConfigMissing   = "CONFIG_MISSING"
	ErrCodePaymentProvider = "PAYMENT_PROVIDER_ERROR"
	ErrCodeProductNotFound = "PRODUCT_NOT_FOUND"
	ErrCodeOrderNotFound   = "ORDER_NOT_FOUND"
	ErrCodeCartItemMissing = "CART_ITEM_NOT_FOUND"
	ErrCodeSettingNotFound = "SETTING_NOT_FOUND"
	ErrCodeInvalidQuantity = "INVALID_QUANTITY"
	ErrCodeInvalidStatus   = "INVALID_STATUS"
	ErrCodeUnauthorised    = "UNAUTHORIZED"
	ErrCodeForbidden       = "FORBIDDEN"
	ErrCodeInternalError   = "INTERNAL_ERROR"
)

// DomainError carries a machine-readable code alongside the message so
// handlers can map business failures onto HTTP statuses.
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
	ErrNoActiveCart    = NewDomainError(ErrCodeNoActiveCart, "No active cart found.")
	ErrEmptyCart       = NewDomainError(ErrCodeEmptyCart, "Cart has no items")
	ErrConfigMissing   = NewDomainError(ErrCodeConfigMissing, "Shipping configuration is missing")
	ErrPaymentProvider = NewDomainError(ErrCodePaymentProvider, "Payment session could not be created")
	ErrProductNotFound = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrOrderNotFound   = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrCartItemMissing = NewDomainError(ErrCodeCartItemMissing, "Cart item not found")
	ErrSettingNotFound = NewDomainError(ErrCodeSettingNotFound, "Config key not found")
	ErrInvalidQuantity = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidStatus   = NewDomainError(ErrCodeInvalidStatus, "Invalid order status")
)
