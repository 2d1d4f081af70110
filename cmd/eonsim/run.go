package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/eonsim/simulator/internal/logging"
	"github.com/eonsim/simulator/jobs"
	"github.com/eonsim/simulator/provisioning"
	"github.com/eonsim/simulator/simulation"
	"github.com/eonsim/simulator/stats"
	"github.com/eonsim/simulator/topology"
)

func registeredAlgorithmNames() []string {
	return provisioning.Names()
}

func init() {
	defaultHelp := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		defaultHelp(cmd, args)
		fmt.Println()
		printAlgorithmHelp()
	})
}

func runRoot(cmd *cobra.Command, args []string) error {
	if err := cfg.Validate(); err != nil {
		_ = cmd.Usage()
		return err
	}
	log := logging.New(os.Stderr, cfg.Debug)

	it, err := jobs.NewIterator(cfg.Opts, cfg.Algs)
	if err != nil {
		return err
	}
	if it.Total() == 0 {
		return jobs.ErrZeroTotal
	}
	if cfg.Skip > 0 {
		if err := it.Skip(cfg.Skip); err != nil {
			return err
		}
	}

	in, err := openInput(cfg.Input)
	if err != nil {
		return err
	}
	defer in.Close()
	g, err := topology.LoadMatrix(in)
	if err != nil {
		return err
	}

	out, flushClose, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer flushClose()

	total := it.Total() - cfg.Skip
	done := 0
	lastAlg := ""

	pool := jobs.NewPool(func(j jobs.Job) any {
		seed := int64(j.Index + 1)
		simJob := simulation.Job{
			Iters: j.Iters, Discard: j.Discard, Load: j.Load,
			BWMin: j.BWMin, BWMax: j.BWMax, Seed: seed,
			Algorithm: j.Algorithm, Params: j.Params,
		}
		return simulation.Run(g, simJob)
	})

	pool.Run(it, cfg.Threads, func(j jobs.Job, resultAny any) {
		result := resultAny.(simulation.Result)
		if j.Algorithm != lastAlg {
			writeHeader(out, j)
			lastAlg = j.Algorithm
		}
		writeRow(out, j, result)
		done++
		log.Debug().Int("job", j.Index).Str("algorithm", j.Algorithm).Msg("completed job")
		fmt.Fprintf(os.Stderr, "[%3d%%] %d / %d done.\n", done*100/total, done, total)
	})

	return nil
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(path string) (io.Writer, func(), error) {
	if path == "-" {
		w := bufio.NewWriter(os.Stdout)
		return w, func() { w.Flush() }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	w := bufio.NewWriter(f)
	return w, func() { w.Flush(); f.Close() }, nil
}

func sortedParamNames(params map[string]float64) []string {
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func writeHeader(w io.Writer, j jobs.Job) {
	names := sortedParamNames(j.Params)
	fmt.Fprintf(w, "#%s:", j.Algorithm)
	fmt.Fprint(w, "iters;discard;load;bwmin;bwmax")
	for _, n := range names {
		fmt.Fprintf(w, ";%s", n)
	}
	fmt.Fprintf(w, ";%s\n", stats.TableHeader)
}

func writeRow(w io.Writer, j jobs.Job, result simulation.Result) {
	names := sortedParamNames(j.Params)
	fmt.Fprintf(w, "%d;%d;%g;%d;%d", j.Iters, j.Discard, j.Load, j.BWMin, j.BWMax)
	for _, n := range names {
		fmt.Fprintf(w, ";%g", j.Params[n])
	}
	fmt.Fprintf(w, ";%s\n", result.Counter.Row(result.TotalTime))
}
