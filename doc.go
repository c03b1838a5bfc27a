// Package goopenvino provides Go bindings to the OpenVINO Inference Engine.
//
// This package enables loading OpenVINO IR models and running inference on
// Intel CPUs, integrated GPUs, VPUs and other devices exposed through the
// Inference Engine plugin system.
//
// # Architecture
//
// The package is organized into two layers:
//
//   - internal/bridge: Low-level cgo bindings to the Inference Engine C API
//   - engine: High-level handle types with ownership and lifecycle guarantees
//
// # Usage
//
//	import "github.com/gomlx/go-openvino/engine"
//
//	eng, err := engine.NewDefault()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer eng.Close()
//
//	network, err := eng.ReadNetwork("model.xml", "model.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// CompileNetwork consumes the network handle.
//	exec, err := eng.CompileNetwork(network, "CPU")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer exec.Close()
//
//	request, err := exec.CreateInferRequest()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer request.Close()
//
// # Requirements
//
//   - An OpenVINO installation providing the inference_engine_c_api
//     shared library and the c_api/ie_c_api.h header
//   - cgo
//
// # Devices
//
// Compilation targets are named devices understood by the Inference Engine,
// for example "CPU", "GPU" or "MYRIAD". Device names are validated by the
// library, not by these bindings; Engine.AvailableDevices lists what the
// local installation offers.
package goopenvino
