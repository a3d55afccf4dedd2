/*
Command snnctl is the engine's driver shell: it reads a toml configuration
(internal/config), builds a runtime.Runtime, and runs it for a fixed tick
count, optionally logging each tick and serving Prometheus metrics. None of
this shell's concerns — flags, files, logging, metrics — reach into the
core engine packages; they only call the Runtime's public API.
*/
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "snnctl",
		Short: "Run and inspect spiking neural network simulations",
	}
	root.AddCommand(newRunCmd())
	root.AddCommand(newSeedCmd())
	return root
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
