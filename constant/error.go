package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrDuplicateRequest
	ErrTooManyRequests
	ErrIdempotencyMismatch

	// validation
	ErrMissingCustomerFields
	ErrEmptyOrder
	ErrInvalidLineItem
	ErrIncompleteAddress
	ErrInvalidOrderStatus
	ErrMissingDateFrom
	ErrInvalidDateFrom
	ErrNegativeQuantity
	ErrNegativeReorderPoint
	ErrInvalidChangeType
	ErrInvalidRestockAmount
	ErrInvalidInventoryFilter
	ErrMissingContactFields
	ErrInvalidPhone
	ErrInvalidCartID
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "something went wrong, please try again or call us",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrCredentialExists:    "email or phone already exists",
	ErrInvalidPassword:     "password invalid",
	ErrForbidden:           "forbidden",
	ErrDuplicateRequest:    "duplicate request, the first submission is still being processed",
	ErrTooManyRequests:     "too many requests, please slow down",
	ErrIdempotencyMismatch: "idempotency key was already used with a different request",

	ErrMissingCustomerFields:  "Name, email, and phone are required",
	ErrEmptyOrder:             "Order must contain at least one item",
	ErrInvalidLineItem:        "Each order item needs an id, a title and a quantity of at least 1",
	ErrIncompleteAddress:      "Delivery address requires street, city, state and zip",
	ErrInvalidOrderStatus:     "Invalid status",
	ErrMissingDateFrom:        "dateFrom query parameter is required (YYYY-MM-DD format)",
	ErrInvalidDateFrom:        "dateFrom must be in YYYY-MM-DD format",
	ErrNegativeQuantity:       "quantity must not be negative",
	ErrNegativeReorderPoint:   "reorder point must not be negative",
	ErrInvalidChangeType:      "invalid change type",
	ErrInvalidRestockAmount:   "restock amount must not be negative",
	ErrInvalidInventoryFilter: "invalid inventory filter",
	ErrMissingContactFields:   "Name, phone, and message are required",
	ErrInvalidPhone:           "Please enter a valid phone number",
	ErrInvalidCartID:          "invalid cart id",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrCredentialExists:    http.StatusBadRequest,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrForbidden:           http.StatusForbidden,
	ErrDuplicateRequest:    http.StatusConflict,
	ErrTooManyRequests:     http.StatusTooManyRequests,
	ErrIdempotencyMismatch: http.StatusUnprocessableEntity,

	ErrMissingCustomerFields:  http.StatusBadRequest,
	ErrEmptyOrder:             http.StatusBadRequest,
	ErrInvalidLineItem:        http.StatusBadRequest,
	ErrIncompleteAddress:      http.StatusBadRequest,
	ErrInvalidOrderStatus:     http.StatusBadRequest,
	ErrMissingDateFrom:        http.StatusBadRequest,
	ErrInvalidDateFrom:        http.StatusBadRequest,
	ErrNegativeQuantity:       http.StatusBadRequest,
	ErrNegativeReorderPoint:   http.StatusBadRequest,
	ErrInvalidChangeType:      http.StatusBadRequest,
	ErrInvalidRestockAmount:   http.StatusBadRequest,
	ErrInvalidInventoryFilter: http.StatusBadRequest,
	ErrMissingContactFields:   http.StatusBadRequest,
	ErrInvalidPhone:           http.StatusBadRequest,
	ErrInvalidCartID:          http.StatusBadRequest,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrCredentialExists:    "0005",
	ErrInvalidPassword:     "0006",
	ErrForbidden:           "0007",
	ErrDuplicateRequest:    "0008",
	ErrTooManyRequests:     "0009",
	ErrIdempotencyMismatch: "0010",

	ErrMissingCustomerFields:  "1001",
	ErrEmptyOrder:             "1002",
	ErrInvalidLineItem:        "1003",
	ErrIncompleteAddress:      "1004",
	ErrInvalidOrderStatus:     "1005",
	ErrMissingDateFrom:        "1006",
	ErrInvalidDateFrom:        "1007",
	ErrNegativeQuantity:       "1008",
	ErrNegativeReorderPoint:   "1009",
	ErrInvalidChangeType:      "1010",
	ErrInvalidRestockAmount:   "1011",
	ErrInvalidInventoryFilter: "1012",
	ErrMissingContactFields:   "1013",
	ErrInvalidPhone:           "1014",
	ErrInvalidCartID:          "1015",
}

// IsValidation reports whether the error type is caused by caller input.
func IsValidation(t ErrorType) bool {
	return t == ErrInvalidRequest || t >= ErrMissingCustomerFields
}
