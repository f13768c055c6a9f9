package as5600

import "errors"

// Sentinel errors. Transport failures are not wrapped: the error returned by
// the underlying bus is surfaced to the caller as-is and never retried.
var (
	// ErrBurnLimitExceeded is returned when a permanent write is requested
	// after its OTP target reached its hardware ceiling. No write is issued.
	ErrBurnLimitExceeded = errors.New("as5600: burn limit exceeded")

	// ErrBurnNotAuthorized is returned when a burn operation is invoked with
	// the zero BurnAuthorization value.
	ErrBurnNotAuthorized = errors.New("as5600: burn not authorized")

	// ErrInvalidRegisterValue is returned when a decoded bit pattern does not
	// correspond to any defined enumeration member, or a 12-bit register
	// reads back out of range.
	ErrInvalidRegisterValue = errors.New("as5600: invalid register value")

	// ErrValueOutOfRange is returned when a caller-supplied value exceeds the
	// 12-bit register range.
	ErrValueOutOfRange = errors.New("as5600: value exceeds 12-bit range")

	// ErrLockContention is returned by the simulated backend when the
	// register-file lock could not be acquired within the bounded wait.
	ErrLockContention = errors.New("as5600: register file lock contention")
)
