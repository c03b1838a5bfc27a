package bridge

import (
	"os"
	"testing"
)

func TestCheckStatusValues(t *testing.T) {
	// The C API's status enum is mirrored by pure Go constants so the
	// taxonomy stays inspectable without a cgo round trip.
	if StatusOK != 0 {
		t.Fatalf("StatusOK = %d, want 0", StatusOK)
	}
	if StatusNetworkNotRead != -12 {
		t.Fatalf("StatusNetworkNotRead = %d, want -12", StatusNetworkNotRead)
	}
}

func TestNewBlobRejectsOversizedRank(t *testing.T) {
	desc := TensorDesc{
		Layout:    LayoutAny,
		Dims:      make([]uint64, MaxRank+1),
		Precision: PrecisionFP32,
	}
	if _, err := NewBlob(desc, make([]byte, 4)); err == nil {
		t.Fatal("NewBlob accepted rank above descriptor capacity")
	}
}

func TestNewBlobRejectsEmptyData(t *testing.T) {
	desc := TensorDesc{
		Layout:    LayoutAny,
		Dims:      []uint64{1},
		Precision: PrecisionU8,
	}
	if _, err := NewBlob(desc, nil); err == nil {
		t.Fatal("NewBlob accepted empty data")
	}
}

func TestCoreRoundTrip(t *testing.T) {
	if os.Getenv("OPENVINO_TEST_MODEL_XML") == "" {
		t.Skip("OPENVINO_TEST_MODEL_XML not set")
	}

	core, err := NewCore("")
	if err != nil {
		t.Fatalf("NewCore() error = %v", err)
	}
	defer core.Close()

	devices, err := core.AvailableDevices()
	if err != nil {
		t.Fatalf("AvailableDevices() error = %v", err)
	}
	if len(devices) == 0 {
		t.Error("AvailableDevices() returned no devices")
	}

	if v := APIVersion(); v == "" {
		t.Error("APIVersion() returned an empty string")
	}

	// Close is idempotent.
	core.Close()
}
