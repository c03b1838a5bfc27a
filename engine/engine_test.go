package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Lifecycle guards must fire before any call crosses into the library, so
// they are testable with zero-value handles.

func TestClosedEngine(t *testing.T) {
	e := &Engine{}
	require.NoError(t, e.Close())

	_, err := e.AvailableDevices()
	require.ErrorIs(t, err, ErrClosed)

	_, err = e.ReadNetwork("model.xml", "")
	require.ErrorIs(t, err, ErrClosed)
}

func TestEngineCloseIdempotent(t *testing.T) {
	e := &Engine{}
	require.NoError(t, e.Close())
	require.NoError(t, e.Close())
}

func TestCompileNetworkNil(t *testing.T) {
	e := &Engine{}
	_, err := e.CompileNetwork(nil, "CPU")
	require.Error(t, err)
}

func TestCompileNetworkConsumed(t *testing.T) {
	e := &Engine{}
	n := &Network{consumed: true}

	_, err := e.CompileNetwork(n, "CPU")
	require.ErrorIs(t, err, ErrNetworkConsumed)
}

func TestConsumedNetworkOperations(t *testing.T) {
	n := &Network{consumed: true}

	_, err := n.InputNames()
	require.ErrorIs(t, err, ErrNetworkConsumed)

	_, err = n.OutputNames()
	require.ErrorIs(t, err, ErrNetworkConsumed)

	require.ErrorIs(t, n.SetInputPrecision("data", FP32), ErrNetworkConsumed)
	require.ErrorIs(t, n.SetInputLayout("data", LayoutNCHW), ErrNetworkConsumed)
	require.ErrorIs(t, n.SetInputResizeAlgorithm("data", ResizeBilinear), ErrNetworkConsumed)
	require.ErrorIs(t, n.SetOutputPrecision("prob", FP32), ErrNetworkConsumed)

	// Closing a consumed network stays a no-op.
	require.NoError(t, n.Close())
}

func TestClosedNetwork(t *testing.T) {
	n := &Network{}
	require.NoError(t, n.Close())

	_, err := n.InputNames()
	require.ErrorIs(t, err, ErrClosed)
}

func TestClosedExecutableNetwork(t *testing.T) {
	x := &ExecutableNetwork{}
	require.NoError(t, x.Close())
	require.NoError(t, x.Close())

	_, err := x.CreateInferRequest()
	require.ErrorIs(t, err, ErrClosed)
}

func TestClosedInferRequest(t *testing.T) {
	r := &InferRequest{}
	require.NoError(t, r.Close())

	require.ErrorIs(t, r.Infer(), ErrClosed)
	require.ErrorIs(t, r.SetBlob("data", &Blob{}), ErrClosed)

	_, err := r.GetBlob("prob")
	require.ErrorIs(t, err, ErrClosed)
}

func TestClosedBlob(t *testing.T) {
	b := &Blob{}
	require.NoError(t, b.Close())

	_, err := b.ByteSize()
	require.ErrorIs(t, err, ErrClosed)

	_, err = b.Bytes()
	require.ErrorIs(t, err, ErrClosed)
}

func TestNewBlobRejectsBadArguments(t *testing.T) {
	// Rank above the descriptor capacity fails before any library call.
	desc := TensorDesc{
		Layout:    LayoutAny,
		Dims:      make([]uint64, MaxRank+1),
		Precision: FP32,
	}
	_, err := NewBlob(desc, make([]byte, 16))
	require.Error(t, err)

	// So does an empty buffer.
	desc.Dims = []uint64{1}
	_, err = NewBlob(desc, nil)
	require.Error(t, err)
}
