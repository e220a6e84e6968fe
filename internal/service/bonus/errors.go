package bonus

import "errors"

var ErrInvalidRiderID = errors.New("invalid rider id")
