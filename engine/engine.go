// Package engine provides the high-level API for loading and compiling
// OpenVINO models.
//
// Handles form a strict pipeline: an Engine reads a model file into a
// Network, compiles the Network (consuming it) into an ExecutableNetwork,
// and the ExecutableNetwork creates any number of independent InferRequests.
// Every handle is exclusively owned by its caller and released with Close.
//
// All calls are synchronous and blocking. The package holds no shared
// mutable state; to run inference concurrently, create one InferRequest per
// goroutine and never share a single request across goroutines. Whether
// concurrent requests may run against one ExecutableNetwork is governed by
// the Inference Engine's own thread-safety contract for the target device.
package engine

import (
	"github.com/pkg/errors"

	"github.com/gomlx/go-openvino/internal/bridge"
)

// Engine is the root runtime context. It discovers device plugins and
// performs model reading and compilation. An Engine is a long-lived
// resource: ReadNetwork and CompileNetwork borrow it and never consume it,
// so one Engine serves any number of loads.
type Engine struct {
	raw *bridge.Core
}

// New creates an Engine. configPath points to an XML plugin configuration
// file; the empty string selects the library's default plugin discovery.
func New(configPath string) (*Engine, error) {
	raw, err := bridge.NewCore(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "create engine (config %q)", configPath)
	}
	return &Engine{raw: raw}, nil
}

// NewDefault creates an Engine with default plugin discovery. It is
// equivalent to New("") and mirrors the library's two core constructors.
func NewDefault() (*Engine, error) {
	return New("")
}

// Close releases the engine and all plugin resources it holds. Close is
// idempotent. Networks must be read and compiled before their Engine is
// closed; ExecutableNetworks and InferRequests already created remain valid.
func (e *Engine) Close() error {
	if e.raw != nil {
		e.raw.Close()
		e.raw = nil
	}
	return nil
}

// AvailableDevices returns the device names the local installation can
// compile for.
func (e *Engine) AvailableDevices() ([]string, error) {
	if e.raw == nil {
		return nil, ErrClosed
	}
	devices, err := e.raw.AvailableDevices()
	if err != nil {
		return nil, errors.Wrap(err, "list devices")
	}
	return devices, nil
}

// ReadNetwork parses an IR model file into a Network. weightsPath names a
// separate weights file; it is forwarded to the library verbatim, including
// when empty — the library decides whether that means embedded weights.
// A malformed or unreadable model fails with the library's own error.
func (e *Engine) ReadNetwork(modelPath, weightsPath string) (*Network, error) {
	if e.raw == nil {
		return nil, ErrClosed
	}
	raw, err := e.raw.ReadNetwork(modelPath, weightsPath)
	if err != nil {
		return nil, errors.Wrapf(err, "read network %q", modelPath)
	}
	return &Network{raw: raw}, nil
}

// CompileNetwork compiles a network for the named device, producing an
// ExecutableNetwork. On success the Network is CONSUMED: its handle is
// released and any further use of it fails with ErrNetworkConsumed. On
// failure the Network remains usable, so an unsupported device can be
// retried with a different one. Device names are validated by the library.
func (e *Engine) CompileNetwork(n *Network, device string) (*ExecutableNetwork, error) {
	if n == nil {
		return nil, errors.New("nil network")
	}
	if err := n.guard(); err != nil {
		return nil, err
	}
	if e.raw == nil {
		return nil, ErrClosed
	}

	raw, err := e.raw.LoadNetwork(n.raw, device)
	if err != nil {
		return nil, errors.Wrapf(err, "compile network for device %q", device)
	}

	n.raw.Close()
	n.raw = nil
	n.consumed = true
	return &ExecutableNetwork{raw: raw}, nil
}

// Version returns the Inference Engine C API version string.
func Version() string {
	return bridge.APIVersion()
}
