package service

import "errors"

var (
	ErrEmptyItems               = errors.New("order must contain at least one item")
	ErrQuantityInvalid          = errors.New("quantity must be > 0")
	ErrInvalidStatus            = errors.New("unknown status")
	ErrInvalidTransition        = errors.New("status transition not allowed")
	ErrInvalidPaymentTransition = errors.New("payment status transition not allowed")
)
