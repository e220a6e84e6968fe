package settlement

import "errors"

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidOrderState = errors.New("invalid order state")
	ErrAlreadySettled    = errors.New("order already settled")
	ErrAlreadyCancelled  = errors.New("order already cancelled")
	ErrRiderNotAssigned  = errors.New("rider not assigned")
)
