package order

import "errors"

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrEmptyCart           = errors.New("cannot place an order with an empty cart")
	ErrUnknownStatus       = errors.New("unknown order status")
	ErrInvalidTransition   = errors.New("order status can only move forward")
	ErrDeliveryUnavailable = errors.New("selected delivery option or zone is not available")
)
