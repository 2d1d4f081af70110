package jobs

import "github.com/eonsim/simulator/provisioning"

// knownJobFields are the global options the simulation driver reads
// directly rather than passing through to the heuristic's Params. "k"
// is deliberately absent: it's a per-heuristic parameter
// (provisioning/heuristics.common.go reads it via Params.Int), not a
// simulation-level knob, so it must flow through to Params like any
// other scheme option.
var knownJobFields = map[string]bool{
	"iters": true, "discard": true, "load": true,
	"bwmin": true, "bwmax": true,
}

// Job is one fully-bound unit of work: a heuristic name and parameters,
// plus the simulation-level knobs every job carries.
type Job struct {
	Index     int
	Algorithm string
	Iters     int
	Discard   int
	Load      float64
	BWMin     int
	BWMax     int
	Params    provisioning.Params
}

type compiledAlg struct {
	name   string
	params []Param
	total  int
}

// Iterator enumerates the Cartesian product of every algorithm's
// effective options, algorithms in reverse parse order and, within an
// algorithm, parameters cycling odometer-style with the first parameter
// fastest (spec.md §4.8).
type Iterator struct {
	algs     []compiledAlg
	algIdx   int
	counters []int
	emitted  int
	total    int
}

// NewIterator parses optsStr against the built-in defaults and algsStr
// against the algorithm-list grammar, and builds the enumeration order.
func NewIterator(optsStr, algsStr string) (*Iterator, error) {
	defaults, err := ParseOptions(DefaultGlobals())
	if err != nil {
		return nil, err
	}
	userGlobals, err := ParseOptions(optsStr)
	if err != nil {
		return nil, err
	}
	globals := mergeParams(userGlobals, defaults)

	entries, err := ParseAlgs(algsStr)
	if err != nil {
		return nil, err
	}

	it := &Iterator{}
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		params := mergeParams(e.Params, globals)
		total := 1
		for _, p := range params {
			total *= p.Range.Count()
		}
		it.algs = append(it.algs, compiledAlg{name: e.Name, params: params, total: total})
		it.total += total
	}
	if len(it.algs) > 0 {
		it.counters = make([]int, len(it.algs[0].params))
	}
	return it, nil
}

// Total returns the total number of jobs across every algorithm.
func (it *Iterator) Total() int { return it.total }

// Next returns the next bound Job, or false once every algorithm's
// option space has been exhausted.
func (it *Iterator) Next() (Job, bool) {
	if it.algIdx >= len(it.algs) {
		return Job{}, false
	}
	alg := it.algs[it.algIdx]

	values := make(map[string]float64, len(alg.params))
	for i, p := range alg.params {
		values[p.Name] = p.Range.At(it.counters[i])
	}

	job := Job{
		Index:     it.emitted,
		Algorithm: alg.name,
		Iters:     int(values["iters"] + 0.5),
		Discard:   int(values["discard"] + 0.5),
		Load:      values["load"],
		BWMin:     int(values["bwmin"] + 0.5),
		BWMax:     int(values["bwmax"] + 0.5),
		Params:    provisioning.Params{},
	}
	for k, v := range values {
		if !knownJobFields[k] {
			job.Params[k] = v
		}
	}
	it.emitted++

	it.advance(alg)
	return job, true
}

// advance increments the current algorithm's odometer, first parameter
// fastest, carrying into later parameters and finally into the next
// algorithm when every parameter has rolled over.
func (it *Iterator) advance(alg compiledAlg) {
	for i := 0; i < len(alg.params); i++ {
		it.counters[i]++
		if it.counters[i] < alg.params[i].Range.Count() {
			return
		}
		it.counters[i] = 0
	}
	it.algIdx++
	if it.algIdx < len(it.algs) {
		it.counters = make([]int, len(it.algs[it.algIdx].params))
	}
}

// Skip advances the iterator n jobs without returning them, used for
// --skip resume support. It is an error to skip at or beyond Total().
func (it *Iterator) Skip(n int) error {
	if n >= it.total {
		return ErrSkipBeyondTotal
	}
	for i := 0; i < n; i++ {
		if _, ok := it.Next(); !ok {
			return ErrSkipBeyondTotal
		}
	}
	return nil
}
