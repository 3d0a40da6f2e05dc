package domain

import "errors"

// Domain errors.
var (
	ErrNotAdministrator    = errors.New("caller lacks administrator permission")
	ErrScheduleUnavailable = errors.New("schedule source unavailable")
	ErrMalformedSchedule   = errors.New("malformed schedule payload")
	ErrUnsupportedLedger   = errors.New("unsupported ledger url scheme")
)
