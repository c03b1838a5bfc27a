package engine

import (
	"github.com/pkg/errors"

	"github.com/gomlx/go-openvino/internal/bridge"
)

// ErrClosed is returned when an operation is attempted on a closed handle.
var ErrClosed = errors.New("openvino: handle is closed")

// ErrNetworkConsumed is returned when a Network is used after
// CompileNetwork consumed it.
var ErrNetworkConsumed = errors.New("openvino: network already consumed by CompileNetwork")

// StatusError is a non-OK status returned by the Inference Engine. Errors
// wrapped by this package keep the StatusError in their chain, so callers
// can inspect the library's verdict with errors.As.
type StatusError = bridge.StatusError

// StatusCode is an Inference Engine status code.
type StatusCode = bridge.StatusCode

// Status codes surfaced by StatusError.
const (
	StatusOK                = bridge.StatusOK
	StatusGeneralError      = bridge.StatusGeneralError
	StatusNotImplemented    = bridge.StatusNotImplemented
	StatusNetworkNotLoaded  = bridge.StatusNetworkNotLoaded
	StatusParameterMismatch = bridge.StatusParameterMismatch
	StatusNotFound          = bridge.StatusNotFound
	StatusOutOfBounds       = bridge.StatusOutOfBounds
	StatusUnexpected        = bridge.StatusUnexpected
	StatusRequestBusy       = bridge.StatusRequestBusy
	StatusResultNotReady    = bridge.StatusResultNotReady
	StatusNotAllocated      = bridge.StatusNotAllocated
	StatusInferNotStarted   = bridge.StatusInferNotStarted
	StatusNetworkNotRead    = bridge.StatusNetworkNotRead
)
