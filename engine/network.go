package engine

import (
	"github.com/pkg/errors"

	"github.com/gomlx/go-openvino/internal/bridge"
)

// Precision identifies a tensor element type.
type Precision = bridge.Precision

// Layout identifies a tensor memory layout.
type Layout = bridge.Layout

// ResizeAlgorithm selects the pre-processing resize applied to an input.
type ResizeAlgorithm = bridge.ResizeAlgorithm

const (
	FP32 = bridge.PrecisionFP32
	FP16 = bridge.PrecisionFP16
	I16  = bridge.PrecisionI16
	U8   = bridge.PrecisionU8
	I8   = bridge.PrecisionI8
	U16  = bridge.PrecisionU16
	I32  = bridge.PrecisionI32
	I64  = bridge.PrecisionI64

	LayoutAny  = bridge.LayoutAny
	LayoutNCHW = bridge.LayoutNCHW
	LayoutNHWC = bridge.LayoutNHWC
	LayoutCHW  = bridge.LayoutCHW
	LayoutNC   = bridge.LayoutNC

	ResizeNone     = bridge.ResizeNone
	ResizeBilinear = bridge.ResizeBilinear
	ResizeArea     = bridge.ResizeArea
)

// Network is a parsed, uncompiled model graph. It is exclusively owned by
// its creator until CompileNetwork consumes it or Close releases it.
type Network struct {
	raw      *bridge.Network
	consumed bool
}

func (n *Network) guard() error {
	if n.consumed {
		return ErrNetworkConsumed
	}
	if n.raw == nil {
		return ErrClosed
	}
	return nil
}

// Close releases the network. Close is idempotent and a no-op on a network
// already consumed by CompileNetwork.
func (n *Network) Close() error {
	if n.raw != nil {
		n.raw.Close()
		n.raw = nil
	}
	return nil
}

// InputNames returns the network's input names in index order.
func (n *Network) InputNames() ([]string, error) {
	if err := n.guard(); err != nil {
		return nil, err
	}
	count, err := n.raw.InputsCount()
	if err != nil {
		return nil, errors.Wrap(err, "count inputs")
	}
	names := make([]string, count)
	for i := range names {
		if names[i], err = n.raw.InputName(i); err != nil {
			return nil, errors.Wrapf(err, "input %d", i)
		}
	}
	return names, nil
}

// OutputNames returns the network's output names in index order.
func (n *Network) OutputNames() ([]string, error) {
	if err := n.guard(); err != nil {
		return nil, err
	}
	count, err := n.raw.OutputsCount()
	if err != nil {
		return nil, errors.Wrap(err, "count outputs")
	}
	names := make([]string, count)
	for i := range names {
		if names[i], err = n.raw.OutputName(i); err != nil {
			return nil, errors.Wrapf(err, "output %d", i)
		}
	}
	return names, nil
}

// SetInputPrecision sets the element type expected for the named input.
// Must be called before the network is compiled.
func (n *Network) SetInputPrecision(name string, p Precision) error {
	if err := n.guard(); err != nil {
		return err
	}
	return errors.Wrapf(n.raw.SetInputPrecision(name, p), "input %q", name)
}

// SetInputLayout sets the memory layout expected for the named input.
func (n *Network) SetInputLayout(name string, l Layout) error {
	if err := n.guard(); err != nil {
		return err
	}
	return errors.Wrapf(n.raw.SetInputLayout(name, l), "input %q", name)
}

// SetInputResizeAlgorithm sets the pre-processing resize for the named input.
func (n *Network) SetInputResizeAlgorithm(name string, alg ResizeAlgorithm) error {
	if err := n.guard(); err != nil {
		return err
	}
	return errors.Wrapf(n.raw.SetInputResizeAlgorithm(name, alg), "input %q", name)
}

// SetOutputPrecision sets the element type produced for the named output.
func (n *Network) SetOutputPrecision(name string, p Precision) error {
	if err := n.guard(); err != nil {
		return err
	}
	return errors.Wrapf(n.raw.SetOutputPrecision(name, p), "output %q", name)
}

// ExecutableNetwork is a network compiled for a specific device. Any number
// of independent InferRequests may be created from one ExecutableNetwork.
type ExecutableNetwork struct {
	raw *bridge.ExecutableNetwork
}

// Close releases the executable network. Close is idempotent. Requests
// already created remain valid: the library reference-counts the compiled
// model, so a request's lifetime is independent of the handle that spawned
// it.
func (x *ExecutableNetwork) Close() error {
	if x.raw != nil {
		x.raw.Close()
		x.raw = nil
	}
	return nil
}

// CreateInferRequest creates a fresh inference request with its own
// execution state. The executable network is only borrowed; creating
// requests never mutates it or the requests already created from it.
func (x *ExecutableNetwork) CreateInferRequest() (*InferRequest, error) {
	if x.raw == nil {
		return nil, ErrClosed
	}
	raw, err := x.raw.CreateInferRequest()
	if err != nil {
		return nil, errors.Wrap(err, "create infer request")
	}
	return &InferRequest{raw: raw}, nil
}

// InferRequest is a single inference invocation context. A request must not
// be shared across goroutines; create one request per goroutine instead.
type InferRequest struct {
	raw *bridge.InferRequest
}

// Close releases the request. Close is idempotent.
func (r *InferRequest) Close() error {
	if r.raw != nil {
		r.raw.Close()
		r.raw = nil
	}
	return nil
}

// SetBlob binds a blob to the named input or output.
func (r *InferRequest) SetBlob(name string, b *Blob) error {
	if r.raw == nil {
		return ErrClosed
	}
	if b == nil || b.raw == nil {
		return errors.Wrapf(ErrClosed, "blob for %q", name)
	}
	return errors.Wrapf(r.raw.SetBlob(name, b.raw), "set blob %q", name)
}

// GetBlob returns the blob currently bound to the named input or output.
func (r *InferRequest) GetBlob(name string) (*Blob, error) {
	if r.raw == nil {
		return nil, ErrClosed
	}
	raw, err := r.raw.GetBlob(name)
	if err != nil {
		return nil, errors.Wrapf(err, "get blob %q", name)
	}
	return &Blob{raw: raw}, nil
}

// Infer runs the request synchronously, blocking until the device finishes.
func (r *InferRequest) Infer() error {
	if r.raw == nil {
		return ErrClosed
	}
	return errors.Wrap(r.raw.Infer(), "infer")
}
