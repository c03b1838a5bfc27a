// Command openvino-info inspects the local OpenVINO installation and,
// optionally, an IR model: it lists the available devices, reads the model,
// compiles it for a device and creates an inference request, printing the
// model's input/output surface along the way.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gomlx/go-openvino/engine"
)

type options struct {
	configPath  string
	modelPath   string
	weightsPath string
	device      string
}

func main() {
	var opts options

	rootCmd := &cobra.Command{
		Use:          "openvino-info",
		Short:        "Inspect OpenVINO devices and IR models",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&opts.configPath, "config", "", "plugin configuration XML (default: library discovery)")
	flags.StringVarP(&opts.modelPath, "model", "m", "", "IR model file (.xml)")
	flags.StringVarP(&opts.weightsPath, "weights", "w", "", "weights file (.bin); empty defers to the library")
	flags.StringVarP(&opts.device, "device", "d", "CPU", "target device name")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, opts options) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "inference engine %s\n", engine.Version())

	eng, err := engine.New(opts.configPath)
	if err != nil {
		return err
	}
	defer eng.Close()

	devices, err := eng.AvailableDevices()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "available devices: %v\n", devices)

	if opts.modelPath == "" {
		return nil
	}

	network, err := eng.ReadNetwork(opts.modelPath, opts.weightsPath)
	if err != nil {
		return err
	}
	defer network.Close()

	inputs, err := network.InputNames()
	if err != nil {
		return err
	}
	outputs, err := network.OutputNames()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "inputs:  %v\n", inputs)
	fmt.Fprintf(out, "outputs: %v\n", outputs)

	exec, err := eng.CompileNetwork(network, opts.device)
	if err != nil {
		return err
	}
	defer exec.Close()
	fmt.Fprintf(out, "compiled for %s\n", opts.device)

	request, err := exec.CreateInferRequest()
	if err != nil {
		return err
	}
	defer request.Close()
	fmt.Fprintln(out, "created infer request")

	return nil
}
