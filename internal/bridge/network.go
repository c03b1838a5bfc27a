package bridge

/*
#include <c_api/ie_c_api.h>
#include <stdlib.h>
*/
import "C"
import (
	"unsafe"
)

// Precision identifies a tensor element type. Values match the C API's
// precision_e enum.
type Precision int

const (
	PrecisionFP32 Precision = C.FP32
	PrecisionFP16 Precision = C.FP16
	PrecisionI16  Precision = C.I16
	PrecisionU8   Precision = C.U8
	PrecisionI8   Precision = C.I8
	PrecisionU16  Precision = C.U16
	PrecisionI32  Precision = C.I32
	PrecisionI64  Precision = C.I64
)

// Layout identifies a tensor memory layout. Values match the C API's
// layout_e enum.
type Layout int

const (
	LayoutAny  Layout = C.ANY
	LayoutNCHW Layout = C.NCHW
	LayoutNHWC Layout = C.NHWC
	LayoutCHW  Layout = C.CHW
	LayoutNC   Layout = C.NC
)

// ResizeAlgorithm selects the pre-processing resize applied to an input.
// Values match the C API's resize_alg_e enum.
type ResizeAlgorithm int

const (
	ResizeNone     ResizeAlgorithm = C.NO_RESIZE
	ResizeBilinear ResizeAlgorithm = C.RESIZE_BILINEAR
	ResizeArea     ResizeAlgorithm = C.RESIZE_AREA
)

// Network represents a parsed, uncompiled model graph.
type Network struct {
	handle *C.ie_network_t
}

// Close releases the network.
func (n *Network) Close() {
	if n.handle != nil {
		C.ie_network_free(&n.handle)
		n.handle = nil
	}
}

// InputsCount returns the number of network inputs.
func (n *Network) InputsCount() (int, error) {
	var size C.size_t
	if err := check("ie_network_get_inputs_number",
		C.ie_network_get_inputs_number(n.handle, &size)); err != nil {
		return 0, err
	}
	return int(size), nil
}

// InputName returns the name of the input at the given index.
func (n *Network) InputName(index int) (string, error) {
	var cName *C.char
	if err := check("ie_network_get_input_name",
		C.ie_network_get_input_name(n.handle, C.size_t(index), &cName)); err != nil {
		return "", err
	}
	name := C.GoString(cName)
	C.ie_network_name_free(&cName)
	return name, nil
}

// OutputsCount returns the number of network outputs.
func (n *Network) OutputsCount() (int, error) {
	var size C.size_t
	if err := check("ie_network_get_outputs_number",
		C.ie_network_get_outputs_number(n.handle, &size)); err != nil {
		return 0, err
	}
	return int(size), nil
}

// OutputName returns the name of the output at the given index.
func (n *Network) OutputName(index int) (string, error) {
	var cName *C.char
	if err := check("ie_network_get_output_name",
		C.ie_network_get_output_name(n.handle, C.size_t(index), &cName)); err != nil {
		return "", err
	}
	name := C.GoString(cName)
	C.ie_network_name_free(&cName)
	return name, nil
}

// SetInputPrecision sets the element type expected for the named input.
func (n *Network) SetInputPrecision(name string, p Precision) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return check("ie_network_set_input_precision",
		C.ie_network_set_input_precision(n.handle, cName, C.precision_e(p)))
}

// SetInputLayout sets the memory layout expected for the named input.
func (n *Network) SetInputLayout(name string, l Layout) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return check("ie_network_set_input_layout",
		C.ie_network_set_input_layout(n.handle, cName, C.layout_e(l)))
}

// SetInputResizeAlgorithm sets the pre-processing resize for the named input.
func (n *Network) SetInputResizeAlgorithm(name string, alg ResizeAlgorithm) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return check("ie_network_set_input_resize_algorithm",
		C.ie_network_set_input_resize_algorithm(n.handle, cName, C.resize_alg_e(alg)))
}

// SetOutputPrecision sets the element type produced for the named output.
func (n *Network) SetOutputPrecision(name string, p Precision) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return check("ie_network_set_output_precision",
		C.ie_network_set_output_precision(n.handle, cName, C.precision_e(p)))
}

// ExecutableNetwork represents a network compiled for a specific device.
type ExecutableNetwork struct {
	handle *C.ie_executable_network_t
}

// Close releases the executable network.
func (x *ExecutableNetwork) Close() {
	if x.handle != nil {
		C.ie_exec_network_free(&x.handle)
		x.handle = nil
	}
}

// CreateInferRequest creates a fresh inference request bound to the
// executable network. The library reference-counts the compiled model, so
// the request stays usable after the executable network is closed.
func (x *ExecutableNetwork) CreateInferRequest() (*InferRequest, error) {
	var handle *C.ie_infer_request_t
	if err := check("ie_exec_network_create_infer_request",
		C.ie_exec_network_create_infer_request(x.handle, &handle)); err != nil {
		return nil, err
	}
	return &InferRequest{handle: handle}, nil
}

// InferRequest represents a single inference invocation context.
type InferRequest struct {
	handle *C.ie_infer_request_t
}

// Close releases the request.
func (r *InferRequest) Close() {
	if r.handle != nil {
		C.ie_infer_request_free(&r.handle)
		r.handle = nil
	}
}

// SetBlob binds a blob to the named input or output.
func (r *InferRequest) SetBlob(name string, b *Blob) error {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))
	return check("ie_infer_request_set_blob",
		C.ie_infer_request_set_blob(r.handle, cName, b.handle))
}

// GetBlob returns the blob currently bound to the named input or output.
func (r *InferRequest) GetBlob(name string) (*Blob, error) {
	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName))

	var handle *C.ie_blob_t
	if err := check("ie_infer_request_get_blob",
		C.ie_infer_request_get_blob(r.handle, cName, &handle)); err != nil {
		return nil, err
	}
	return &Blob{handle: handle}, nil
}

// Infer runs the request synchronously, blocking until the device finishes.
func (r *InferRequest) Infer() error {
	return check("ie_infer_request_infer", C.ie_infer_request_infer(r.handle))
}
