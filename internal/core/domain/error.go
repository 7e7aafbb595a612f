package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid login or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")
	ErrEmailNotVerified           = errors.New("email is not verified")
	ErrBadVerificationCode        = errors.New("verification code is invalid or expired")

	// * Business errors.
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrOrderItemsRequired   = errors.New("order must contain at least one item")
	ErrItemWeightInvalid    = errors.New("item weight must be greater than zero")
	ErrItemPriceInvalid     = errors.New("item price must be non-negative")
	ErrPaymentAmountInvalid = errors.New("payment amount must be greater than zero")
	ErrBadOrderStatus       = errors.New("order status is not recognized")
	ErrResetNotConfirmed    = errors.New("order reset is not confirmed")
)
