// Package bridge provides low-level cgo bindings to the OpenVINO
// Inference Engine C API.
//
// This package wraps c_api/ie_c_api.h and exposes Go-friendly handle types
// for the core, networks, executable networks, inference requests and blobs.
// Every function is a direct forwarding call; the library owns all wrapped
// state and each handle must be released with its Close method.
package bridge

/*
#cgo LDFLAGS: -linference_engine_c_api
#include <c_api/ie_c_api.h>
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"unsafe"
)

// Core represents an Inference Engine core, the root runtime context that
// discovers device plugins and performs model reading and compilation.
type Core struct {
	handle *C.ie_core_t
}

// NewCore creates an Inference Engine core. configPath points to an XML
// plugin configuration file; the empty string selects the library's default
// plugin discovery.
func NewCore(configPath string) (*Core, error) {
	cPath := C.CString(configPath)
	defer C.free(unsafe.Pointer(cPath))

	var handle *C.ie_core_t
	if err := check("ie_core_create", C.ie_core_create(cPath, &handle)); err != nil {
		return nil, err
	}
	return &Core{handle: handle}, nil
}

// Close releases the core and all plugin resources it holds.
func (c *Core) Close() {
	if c.handle != nil {
		C.ie_core_free(&c.handle)
		c.handle = nil
	}
}

// AvailableDevices returns the device names the local installation can
// compile for.
func (c *Core) AvailableDevices() ([]string, error) {
	var avail C.ie_available_devices_t
	if err := check("ie_core_get_available_devices",
		C.ie_core_get_available_devices(c.handle, &avail)); err != nil {
		return nil, err
	}
	defer C.ie_core_available_devices_free(&avail)

	devices := make([]string, int(avail.num_devices))
	for i, p := range unsafe.Slice(avail.devices, int(avail.num_devices)) {
		devices[i] = C.GoString(p)
	}
	return devices, nil
}

// ReadNetwork parses an IR model file (and optionally a separate weights
// file) into a Network. Both paths are forwarded to the library verbatim;
// the interpretation of an empty weights path is the library's.
func (c *Core) ReadNetwork(modelPath, weightsPath string) (*Network, error) {
	cModel := C.CString(modelPath)
	defer C.free(unsafe.Pointer(cModel))
	cWeights := C.CString(weightsPath)
	defer C.free(unsafe.Pointer(cWeights))

	var handle *C.ie_network_t
	if err := check("ie_core_read_network",
		C.ie_core_read_network(c.handle, cModel, cWeights, &handle)); err != nil {
		return nil, err
	}
	return &Network{handle: handle}, nil
}

// LoadNetwork compiles a network for the named device. The network handle
// itself is not released here; ownership policy lives in the engine package.
func (c *Core) LoadNetwork(n *Network, device string) (*ExecutableNetwork, error) {
	cDevice := C.CString(device)
	defer C.free(unsafe.Pointer(cDevice))

	// Empty plugin configuration; per-plugin options are not exposed.
	var cfg C.ie_config_t

	var handle *C.ie_executable_network_t
	if err := check("ie_core_load_network",
		C.ie_core_load_network(c.handle, n.handle, cDevice, &cfg, &handle)); err != nil {
		return nil, err
	}
	return &ExecutableNetwork{handle: handle}, nil
}

// APIVersion returns the Inference Engine C API version string.
func APIVersion() string {
	v := C.ie_c_api_version()
	s := C.GoString(v.api_version)
	C.ie_version_free(&v)
	return s
}
