package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	var (
		shape  string
		fanOut int
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Print a network toml document for a canned topology shape",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, shape, fanOut)
		},
	}

	cmd.Flags().StringVar(&shape, "shape", "chain", "topology shape: chain or fanout")
	cmd.Flags().IntVar(&fanOut, "fan-out", 10, "number of targets for the fanout shape")

	return cmd
}

func runSeed(cmd *cobra.Command, shape string, fanOut int) error {
	switch shape {
	case "chain":
		fmt.Fprint(cmd.OutOrStdout(), chainNetworkTOML())
	case "fanout":
		fmt.Fprint(cmd.OutOrStdout(), fanOutNetworkTOML(fanOut))
	default:
		return fmt.Errorf("unknown shape %q: want chain or fanout", shape)
	}
	return nil
}

// chainNetworkTOML reproduces scenario 1: three neurons, one
// hyperedge from n0 fanning out to n1 and n2, unit delay.
func chainNetworkTOML() string {
	return `[[neuron]]
threshold = 1.0

[[neuron]]
threshold = 1.0

[[neuron]]
threshold = 1.0

[[edge]]
sources = [0]
targets = [1, 2]
weight = 1.0
delay = 1
`
}

// fanOutNetworkTOML builds one source neuron with n separate unit-delay
// edges to n distinct target neurons, for exercising budget truncation.
func fanOutNetworkTOML(n int) string {
	out := "[[neuron]]\nthreshold = 1.0\n\n"
	for i := 0; i < n; i++ {
		out += "[[neuron]]\nthreshold = 1.0\n\n"
	}
	for i := 0; i < n; i++ {
		out += fmt.Sprintf("[[edge]]\nsources = [0]\ntargets = [%d]\nweight = 1.0\ndelay = 1\n\n", i+1)
	}
	return out
}
