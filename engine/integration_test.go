package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlx/go-openvino/engine"
)

// Integration tests need a local OpenVINO runtime and a small IR model.
// Point OPENVINO_TEST_MODEL_XML (and optionally OPENVINO_TEST_MODEL_BIN and
// OPENVINO_TEST_DEVICE) at one to enable them.

func testModelPaths(t *testing.T) (modelPath, weightsPath string) {
	t.Helper()
	modelPath = os.Getenv("OPENVINO_TEST_MODEL_XML")
	if modelPath == "" {
		t.Skip("OPENVINO_TEST_MODEL_XML not set")
	}
	return modelPath, os.Getenv("OPENVINO_TEST_MODEL_BIN")
}

func testDevice() string {
	if d := os.Getenv("OPENVINO_TEST_DEVICE"); d != "" {
		return d
	}
	return "CPU"
}

func TestEngineConstructionIsNotShared(t *testing.T) {
	testModelPaths(t)

	first, err := engine.NewDefault()
	require.NoError(t, err)
	defer first.Close()

	second, err := engine.NewDefault()
	require.NoError(t, err)
	defer second.Close()

	require.NotSame(t, first, second)

	// Both engines are independently usable.
	_, err = first.AvailableDevices()
	require.NoError(t, err)
	_, err = second.AvailableDevices()
	require.NoError(t, err)
}

func TestPipeline(t *testing.T) {
	modelPath, weightsPath := testModelPaths(t)

	eng, err := engine.NewDefault()
	require.NoError(t, err)
	defer eng.Close()

	network, err := eng.ReadNetwork(modelPath, weightsPath)
	require.NoError(t, err)
	defer network.Close()

	inputs, err := network.InputNames()
	require.NoError(t, err)
	require.NotEmpty(t, inputs)

	outputs, err := network.OutputNames()
	require.NoError(t, err)
	require.NotEmpty(t, outputs)

	exec, err := eng.CompileNetwork(network, testDevice())
	require.NoError(t, err)
	defer exec.Close()

	// The network was consumed by compilation.
	_, err = network.InputNames()
	assert.ErrorIs(t, err, engine.ErrNetworkConsumed)

	// One executable network serves multiple independent requests.
	first, err := exec.CreateInferRequest()
	require.NoError(t, err)
	defer first.Close()

	second, err := exec.CreateInferRequest()
	require.NoError(t, err)
	defer second.Close()

	require.NotSame(t, first, second)
}

func TestReadNetworkMissingModel(t *testing.T) {
	testModelPaths(t)

	eng, err := engine.NewDefault()
	require.NoError(t, err)
	defer eng.Close()

	network, err := eng.ReadNetwork(filepath.Join(t.TempDir(), "missing.xml"), "")
	require.Error(t, err)
	assert.Nil(t, network)
}

func TestCompileNetworkUnknownDevice(t *testing.T) {
	modelPath, weightsPath := testModelPaths(t)

	eng, err := engine.NewDefault()
	require.NoError(t, err)
	defer eng.Close()

	network, err := eng.ReadNetwork(modelPath, weightsPath)
	require.NoError(t, err)
	defer network.Close()

	exec, err := eng.CompileNetwork(network, "NO_SUCH_DEVICE")
	require.Error(t, err)
	assert.Nil(t, exec)

	// A failed compilation does not consume the network.
	_, err = network.InputNames()
	require.NoError(t, err)

	exec, err = eng.CompileNetwork(network, testDevice())
	require.NoError(t, err)
	exec.Close()
}
