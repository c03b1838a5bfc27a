package bridge

/*
#include <c_api/ie_c_api.h>
*/
import "C"
import (
	"fmt"
)

// StatusCode is an Inference Engine status code. Values match the C API's
// IEStatusCode enum.
type StatusCode int

const (
	StatusOK                StatusCode = 0
	StatusGeneralError      StatusCode = -1
	StatusNotImplemented    StatusCode = -2
	StatusNetworkNotLoaded  StatusCode = -3
	StatusParameterMismatch StatusCode = -4
	StatusNotFound          StatusCode = -5
	StatusOutOfBounds       StatusCode = -6
	StatusUnexpected        StatusCode = -7
	StatusRequestBusy       StatusCode = -8
	StatusResultNotReady    StatusCode = -9
	StatusNotAllocated      StatusCode = -10
	StatusInferNotStarted   StatusCode = -11
	StatusNetworkNotRead    StatusCode = -12
)

func (c StatusCode) String() string {
	switch c {
	case StatusOK:
		return "ok"
	case StatusGeneralError:
		return "general error"
	case StatusNotImplemented:
		return "not implemented"
	case StatusNetworkNotLoaded:
		return "network not loaded"
	case StatusParameterMismatch:
		return "parameter mismatch"
	case StatusNotFound:
		return "not found"
	case StatusOutOfBounds:
		return "out of bounds"
	case StatusUnexpected:
		return "unexpected"
	case StatusRequestBusy:
		return "request busy"
	case StatusResultNotReady:
		return "result not ready"
	case StatusNotAllocated:
		return "not allocated"
	case StatusInferNotStarted:
		return "infer not started"
	case StatusNetworkNotRead:
		return "network not read"
	default:
		return fmt.Sprintf("unknown status %d", int(c))
	}
}

// StatusError is a non-OK status returned by an Inference Engine call.
// Errors are surfaced to the caller as returned by the library; this layer
// performs no recovery, retry or reinterpretation.
type StatusError struct {
	Op   string // C API function that failed
	Code StatusCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openvino: %s: %s", e.Op, e.Code)
}

// check converts a C status code into an error, nil for OK.
func check(op string, status C.IEStatusCode) error {
	if StatusCode(status) == StatusOK {
		return nil
	}
	return &StatusError{Op: op, Code: StatusCode(status)}
}
