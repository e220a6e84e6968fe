package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrUndefinedStatus       = errors.New("undefined order status")
)
