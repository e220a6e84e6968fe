package wallet

import "errors"

var (
	ErrInvalidEntityID = errors.New("invalid entity id")
	ErrInvalidAmount   = errors.New("invalid amount")

	ErrWalletNotFound  = errors.New("wallet not found")
	ErrNegativeBalance = errors.New("operation would make balance negative")
)
