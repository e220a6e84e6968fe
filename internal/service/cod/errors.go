package cod

import "errors"

var (
	ErrInvalidRiderID       = errors.New("invalid rider id")
	ErrEntryAlreadyRecorded = errors.New("cod entry already recorded")
	ErrNoPendingEntries     = errors.New("no pending cod entries")
	ErrProfileNotFound      = errors.New("rider profile not found")
)
