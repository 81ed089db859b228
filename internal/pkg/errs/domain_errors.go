package errs

import "errors"

// Sentinel errors shared by the usecase and handler layers
var (
	// Credential errors
	ErrUnauthenticated = errors.New("no usable credential")

	// Validation errors
	ErrInvalidContactInfo = errors.New("invalid contact info")
	ErrInvalidRequest     = errors.New("invalid request")

	// Remote errors
	ErrRemoteWriteFailed  = errors.New("remote write failed")
	ErrRemoteReadFailed   = errors.New("remote read failed")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrStatusUpdateFailed = errors.New("status update failed")

	// Reservation errors
	ErrLocalOnlyReservation = errors.New("reservation exists only on this device")

	// Owner mode errors
	ErrOwnerModeRequired = errors.New("owner mode required")

	// Storage errors
	ErrStorageFailure = errors.New("local storage failure")
)
