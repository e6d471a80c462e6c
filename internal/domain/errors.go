package domain

import "errors"

var (
	ErrUnavailable    = errors.New("booking api unavailable")
	ErrInvalidBooking = errors.New("booking expires before it was created")
)

var (
	ErrPlotNotFound    = errors.New("plot not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrLandNotFound    = errors.New("land not found")
	ErrLandExists      = errors.New("land already exists")
)

var (
	ErrPlotUnavailable      = errors.New("plot is not available for booking")
	ErrNoActiveSelection    = errors.New("no plot selected for booking")
	ErrBookingFailed        = errors.New("booking could not be created")
	ErrBookingNotCancelable = errors.New("booking cannot be cancelled by customer")
	ErrNoPendingCancel      = errors.New("no booking awaiting cancel confirmation")
	ErrCancelFailed         = errors.New("booking could not be cancelled")
)

var (
	ErrValidation = errors.New("validation error")
)
