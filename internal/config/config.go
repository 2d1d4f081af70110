// Package config holds the CLI-facing configuration struct (spec.md
// §6's flag table) and the validation that turns a bad combination of
// flags into one of spec.md §7's configuration errors before any job
// runs.
package config

import (
	"errors"
	"runtime"
)

// Errors surfaced by Validate; cmd/eonsim prints these with usage and a
// non-zero exit, spec.md §7 class 2.
var (
	ErrNoThreads = errors.New("config: threads must be at least 1")
	ErrNoOutput  = errors.New("config: output path must not be empty")
	ErrNoInput   = errors.New("config: input path must not be empty")
)

// Config mirrors the CLI flag table: global parameter-range string,
// algorithm-and-options string, topology input, result output, worker
// thread count, and a leading-iteration skip for resuming a run.
type Config struct {
	Opts    string
	Algs    string
	Input   string
	Output  string
	Threads int
	Skip    int
	Debug   bool
}

// Default returns a Config with every flag at its spec.md-mandated
// default: "-" for input/output (stdin/stdout), hardware concurrency for
// threads, and no skip.
func Default() Config {
	return Config{
		Input:   "-",
		Output:  "-",
		Threads: runtime.NumCPU(),
		Skip:    0,
	}
}

// Validate checks the flag-level invariants that don't require parsing
// --opts/--algs first (that happens in cmd/eonsim once the job iterator
// is built, since "zero total iterations" and "skip >= total" are
// properties of the parsed job set, not of the flags alone).
func (c Config) Validate() error {
	if c.Threads < 1 {
		return ErrNoThreads
	}
	if c.Input == "" {
		return ErrNoInput
	}
	if c.Output == "" {
		return ErrNoOutput
	}
	return nil
}
