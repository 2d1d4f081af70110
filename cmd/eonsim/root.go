package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/eonsim/simulator/internal/config"
	_ "github.com/eonsim/simulator/provisioning/heuristics"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:   "eonsim",
	Short: "Monte-Carlo SPP/EON spectrum-assignment simulator",
	Long: `eonsim drives a discrete-event simulation of shared-path-protection
provisioning over an elastic optical network, sweeping parameter ranges
and algorithms and reporting per-run blocking, utilization, sharability,
fragmentation, and energy metrics.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cfg = config.Default()
	rootCmd.Flags().StringVarP(&cfg.Opts, "opts", "p", "", "global parameter-range string")
	rootCmd.Flags().StringVarP(&cfg.Algs, "algs", "a", "", "algorithm-and-options string")
	rootCmd.Flags().StringVarP(&cfg.Input, "input", "i", "-", "topology file; - = stdin")
	rootCmd.Flags().StringVarP(&cfg.Output, "output", "o", "-", "output table file; - = stdout")
	rootCmd.Flags().IntVarP(&cfg.Threads, "threads", "t", runtime.NumCPU(), "worker thread count")
	rootCmd.Flags().IntVarP(&cfg.Skip, "skip", "s", 0, "leading iterations to skip (resume)")
	rootCmd.Flags().BoolVar(&cfg.Debug, "debug", false, "enable debug-level logging (does not run netstate sanity checks)")
}

func printAlgorithmHelp() {
	fmt.Println("Registered algorithms:")
	for _, name := range registeredAlgorithmNames() {
		fmt.Printf("  %s\n", name)
	}
}
