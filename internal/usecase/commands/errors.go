package commands

import "coworking-booking/internal/pkg/errs"

// Rejection sentinels for the booking rules. Each maps to a distinct
// client-facing status in the handler layer; none is ever collapsed into
// a generic failure.
var (
	ErrInvalidTimeFormat     = errs.New("invalid time format")
	ErrInvalidTimeRange      = errs.New("start time must be before end time")
	ErrInvalidDate           = errs.New("invalid reservation date")
	ErrRoomNotFound          = errs.New("room not found")
	ErrSpaceNotFound         = errs.New("space not found")
	ErrCapacityExceeded      = errs.New("party size exceeds room capacity")
	ErrOutsideOperatingHours = errs.New("requested slot is outside operating hours")
	ErrQuotaExceeded         = errs.New("reservation quota exceeded")
	ErrSlotConflict          = errs.New("slot conflicts with an existing reservation")
	ErrUnauthorized          = errs.New("not authorized for this reservation")
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrSpaceNameTaken        = errs.New("space name already taken")
	ErrRoomNameTaken         = errs.New("room name already taken")
	ErrDomainValidation      = errs.New("domain validation error")
	ErrStorageUnavailable    = errs.New("storage unavailable")
)
