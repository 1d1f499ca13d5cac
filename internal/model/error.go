package model

import "errors"

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON         = "INVALID_JSON"
	ErrCodeInvalidID           = "INVALID_ID"
	ErrCodeMissingField        = "MISSING_FIELD"
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeProductNotFound     = "PRODUCT_NOT_FOUND"
	ErrCodeCartItemNotFound    = "CART_ITEM_NOT_FOUND"
	ErrCodeOrderNotFound       = "ORDER_NOT_FOUND"
	ErrCodeShopNotFound        = "SHOP_NOT_FOUND"
	ErrCodeDeliveryNotFound    = "DELIVERY_NOT_FOUND"
	ErrCodeEmptyCart           = "EMPTY_CART"
	ErrCodeInvalidQuantity     = "INVALID_QUANTITY"
	ErrCodeOrderTokenExhausted = "ORDER_TOKEN_EXHAUSTED"
	ErrCodeUnauthorised        = "UNAUTHORIZED"
	ErrCodeForbidden           = "FORBIDDEN"
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
	ErrUserNotFound        = NewDomainError(ErrCodeUserNotFound, "User not found")
	ErrProductNotFound     = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrCartItemNotFound    = NewDomainError(ErrCodeCartItemNotFound, "Cart item not found")
	ErrOrderNotFound       = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrShopNotFound        = NewDomainError(ErrCodeShopNotFound, "Shop not found")
	ErrDeliveryNotFound    = NewDomainError(ErrCodeDeliveryNotFound, "Delivery not found")
	ErrEmptyCart           = NewDomainError(ErrCodeEmptyCart, "Cart is empty")
	ErrInvalidQuantity     = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be between 1 and 2147483647")
	ErrUnauthorised        = NewDomainError(ErrCodeUnauthorised, "Caller does not own this resource")
	ErrOrderTokenExhausted = NewDomainError(ErrCodeOrderTokenExhausted, "Could not allocate a unique order number")
	ErrAddressRequired     = NewDomainError(ErrCodeMissingField, "Delivery address is required")
	ErrForbidden           = NewDomainError(ErrCodeForbidden, "Resource belongs to another user")
)

// ErrorCode returns the domain code carried by err, or an empty string when err
// is not (and does not wrap) a DomainError.
func ErrorCode(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsNotFound reports whether err is one of the not-found domain errors.
func IsNotFound(err error) bool {
	switch ErrorCode(err) {
	case ErrCodeUserNotFound, ErrCodeProductNotFound, ErrCodeCartItemNotFound,
		ErrCodeOrderNotFound, ErrCodeShopNotFound, ErrCodeDeliveryNotFound:
		return true
	}
	return false
}
