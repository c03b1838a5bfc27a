package engine

import (
	"github.com/pkg/errors"

	"github.com/gomlx/go-openvino/internal/bridge"
)

// TensorDesc describes a blob's layout, dimensions and element type.
type TensorDesc = bridge.TensorDesc

// MaxRank is the largest tensor rank a TensorDesc can carry.
const MaxRank = bridge.MaxRank

// Blob is a tensor data container owned by the library. Blobs created with
// NewBlob copy the caller's bytes; blobs returned by GetBlob reference the
// request's own buffers.
type Blob struct {
	raw *bridge.Blob
}

// NewBlob wraps a copy of data as a blob with the given description.
func NewBlob(desc TensorDesc, data []byte) (*Blob, error) {
	raw, err := bridge.NewBlob(desc, data)
	if err != nil {
		return nil, errors.Wrap(err, "create blob")
	}
	return &Blob{raw: raw}, nil
}

// Close releases the blob. Close is idempotent.
func (b *Blob) Close() error {
	if b.raw != nil {
		b.raw.Close()
		b.raw = nil
	}
	return nil
}

// ByteSize returns the size of the blob's buffer in bytes.
func (b *Blob) ByteSize() (int, error) {
	if b.raw == nil {
		return 0, ErrClosed
	}
	return b.raw.ByteSize()
}

// Bytes returns a copy of the blob's buffer.
func (b *Blob) Bytes() ([]byte, error) {
	if b.raw == nil {
		return nil, ErrClosed
	}
	return b.raw.Bytes()
}
