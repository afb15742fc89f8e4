package apperrors

import "net/http"

// Authentication and authorization failures (auth domain, 600xx).
var (
	// WrongCredentials covers both "no such user" and "wrong password" so
	// responses never reveal whether a given email is registered.
	WrongCredentials  = New(http.StatusUnauthorized, "60001", "Wrong credentials provided")
	UserAlreadyExists = New(http.StatusConflict, "60002", "User already exists")
	ExpiredToken      = New(http.StatusUnauthorized, "60003", "Token has expired")
	InvalidToken      = New(http.StatusUnauthorized, "60004", "Invalid token provided")
	NotAllowed        = New(http.StatusForbidden, "60005", "Access not allowed")
	Unauthorized      = New(http.StatusUnauthorized, "60006", "Unauthorized access")
)

// User failures (601xx).
var (
	UserNotFound = New(http.StatusNotFound, "60101", "User not found")
	InvalidEmail = New(http.StatusBadRequest, "60103", "Invalid email format")
)

// Role failures (602xx).
var (
	RoleNotFound      = New(http.StatusNotFound, "60201", "Role not found")
	RoleAlreadyExists = New(http.StatusConflict, "60202", "Role already exists")
)

// Order failures (605xx).
var (
	OrderNotFound      = New(http.StatusNotFound, "60501", "Order not found")
	InvalidOrderStatus = New(http.StatusBadRequest, "60502", "Invalid order status")
	CannotCancelOrder  = New(http.StatusBadRequest, "60503", "Order cannot be cancelled")
)

// Validation failures (606xx).
var (
	InvalidInput = New(http.StatusBadRequest, "60601", "Invalid input provided")
	MissingField = New(http.StatusBadRequest, "60602", "Required field is missing")
)

// Global failures (700xx).
var (
	Internal        = New(http.StatusInternalServerError, "70000", "Something went wrong")
	NotFound        = New(http.StatusNotFound, "70001", "Resource not found")
	BadRequest      = New(http.StatusBadRequest, "70002", "Bad request")
	TooManyRequests = New(http.StatusTooManyRequests, "70003", "Too many requests")
)
