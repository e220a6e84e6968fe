package reconciliation

import "errors"

var (
	ErrInvalidEntityID   = errors.New("invalid entity id")
	ErrUnknownEntityType = errors.New("unknown entity type")
)
