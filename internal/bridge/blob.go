package bridge

/*
#include <c_api/ie_c_api.h>
#include <stdlib.h>
#include <string.h>
*/
import "C"
import (
	"fmt"
	"unsafe"
)

// MaxRank is the dimension capacity of the C API's dimensions_t.
const MaxRank = 8

// TensorDesc describes a blob's layout, dimensions and element type.
type TensorDesc struct {
	Layout    Layout
	Dims      []uint64
	Precision Precision
}

func (d TensorDesc) toC() (C.tensor_desc_t, error) {
	var cd C.tensor_desc_t
	if len(d.Dims) > MaxRank {
		return cd, fmt.Errorf("tensor rank %d exceeds maximum %d", len(d.Dims), MaxRank)
	}
	cd.layout = C.layout_e(d.Layout)
	cd.precision = C.precision_e(d.Precision)
	cd.dims.ranks = C.size_t(len(d.Dims))
	for i, dim := range d.Dims {
		cd.dims.dims[i] = C.size_t(dim)
	}
	return cd, nil
}

// Blob represents a library-owned tensor data container.
type Blob struct {
	handle *C.ie_blob_t
	// buf is the C-allocated copy backing blobs created by NewBlob; nil for
	// blobs obtained from a request.
	buf unsafe.Pointer
}

// NewBlob wraps a copy of data as a blob with the given description. The
// data is copied into C-allocated memory because the library retains the
// buffer for the blob's lifetime, which cgo pointer rules forbid for Go
// memory.
func NewBlob(desc TensorDesc, data []byte) (*Blob, error) {
	cd, err := desc.toC()
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("blob data must not be empty")
	}

	buf := C.malloc(C.size_t(len(data)))
	if buf == nil {
		return nil, fmt.Errorf("allocate %d bytes for blob", len(data))
	}
	C.memcpy(buf, unsafe.Pointer(&data[0]), C.size_t(len(data)))

	var handle *C.ie_blob_t
	if err := check("ie_blob_make_memory_from_preallocated",
		C.ie_blob_make_memory_from_preallocated(&cd, buf, C.size_t(len(data)), &handle)); err != nil {
		C.free(buf)
		return nil, err
	}
	return &Blob{handle: handle, buf: buf}, nil
}

// Close releases the blob and any C memory backing it.
func (b *Blob) Close() {
	if b.handle != nil {
		C.ie_blob_free(&b.handle)
		b.handle = nil
	}
	if b.buf != nil {
		C.free(b.buf)
		b.buf = nil
	}
}

// ByteSize returns the size of the blob's buffer in bytes.
func (b *Blob) ByteSize() (int, error) {
	var size C.int
	if err := check("ie_blob_byte_size", C.ie_blob_byte_size(b.handle, &size)); err != nil {
		return 0, err
	}
	return int(size), nil
}

// Bytes returns a copy of the blob's buffer.
func (b *Blob) Bytes() ([]byte, error) {
	size, err := b.ByteSize()
	if err != nil {
		return nil, err
	}

	var cbuf C.ie_blob_buffer_t
	if err := check("ie_blob_get_cbuffer", C.ie_blob_get_cbuffer(b.handle, &cbuf)); err != nil {
		return nil, err
	}
	// The buffer pointer is the sole member of the C-side union.
	ptr := *(*unsafe.Pointer)(unsafe.Pointer(&cbuf))
	if ptr == nil {
		return nil, &StatusError{Op: "ie_blob_get_cbuffer", Code: StatusNotAllocated}
	}

	out := make([]byte, size)
	copy(out, unsafe.Slice((*byte)(ptr), size))
	return out, nil
}
