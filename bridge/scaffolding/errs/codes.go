package errs

import "net/http"

// ErrCode represents a stable error classification carried in responses.
type ErrCode struct {
	value int
}

// Value returns the integer value of the code.
func (ec ErrCode) Value() int {
	return ec.value
}

// String returns the string representation of the code.
func (ec ErrCode) String() string {
	return codeNames[ec.value]
}

// MarshalText implements the marshal interface for text based marshaling.
func (ec ErrCode) MarshalText() ([]byte, error) {
	return []byte(ec.String()), nil
}

var (
	OK                 = ErrCode{value: 0}
	Internal           = ErrCode{value: 1}
	InvalidArgument    = ErrCode{value: 2}
	NotFound           = ErrCode{value: 3}
	Unauthenticated    = ErrCode{value: 4}
	PermissionDenied   = ErrCode{value: 5}
	FailedPrecondition = ErrCode{value: 6}
	Aborted            = ErrCode{value: 7}
	InternalOnlyLog    = ErrCode{value: 8}
)

var codeNames = map[int]string{
	0: "ok",
	1: "internal",
	2: "invalid_argument",
	3: "not_found",
	4: "unauthenticated",
	5: "permission_denied",
	6: "failed_precondition",
	7: "aborted",
	8: "internal",
}

var httpStatus = map[ErrCode]int{
	OK:                 http.StatusOK,
	Internal:           http.StatusInternalServerError,
	InvalidArgument:    http.StatusBadRequest,
	NotFound:           http.StatusNotFound,
	Unauthenticated:    http.StatusUnauthorized,
	PermissionDenied:   http.StatusForbidden,
	FailedPrecondition: http.StatusUnprocessableEntity,
	Aborted:            http.StatusConflict,
	InternalOnlyLog:    http.StatusInternalServerError,
}
