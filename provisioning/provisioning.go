package provisioning

import (
	"fmt"
	"sort"
	"sync"

	"github.com/eonsim/simulator/netstate"
	"github.com/eonsim/simulator/pathsearch"
	"github.com/eonsim/simulator/topology"
)

// Request and Provisioning are the same wire types netstate operates
// on; they're re-exported here so callers working at the scheme level
// never need to import netstate directly just to name them.
type (
	Request      = netstate.Request
	Provisioning = netstate.Provisioning
)

// Params is a parameter map bound to a job instance, e.g. {"k": 4,
// "c_cut": 1.0}; every value is a float64 the way the original
// simulator's ParameterSet is, even for integer-valued parameters like
// k, so that the option grammar (spec.md §6) never needs to distinguish
// parameter types.
type Params map[string]float64

// Int returns params[name] rounded to the nearest int, or def if the
// key is absent.
func (params Params) Int(name string, def int) int {
	if v, ok := params[name]; ok {
		return int(v + 0.5)
	}
	return def
}

// Float returns params[name], or def if the key is absent.
func (params Params) Float(name string, def float64) float64 {
	if v, ok := params[name]; ok {
		return v
	}
	return def
}

// Scheme is a shared-path-protection heuristic: given the shared
// topology, the worker's NetworkState and Scratchpad, and a Request, it
// returns a Provisioning. A Scheme must never mutate the NetworkState,
// and must leave the Scratchpad's weights restored to the topology's
// native link lengths on return.
type Scheme interface {
	Run(g *topology.Graph, s *netstate.State, sp *pathsearch.Scratchpad, r Request) Provisioning
}

// Factory builds a fresh Scheme instance configured by params.
type Factory func(params Params) Scheme

var (
	registryMu sync.Mutex
	registry   = map[string]Factory{}
)

// Register adds name to the process-wide factory table. It is called
// from the init() function of each concrete scheme in
// provisioning/heuristics, mirroring the original simulator's
// self-registering ProvisioningSchemeFactory::Registrar<T> idiom.
// Registering the same name twice is a programming error and panics.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("provisioning: %q already registered", name))
	}
	registry[name] = f
}

// Create returns a fresh Scheme for name configured by params, or false
// if name is not registered. An unknown algorithm name is not a fatal
// error (spec.md §7 class 2): the caller is expected to fall back to an
// empty result for that job rather than crash.
func Create(name string, params Params) (Scheme, bool) {
	registryMu.Lock()
	f, ok := registry[name]
	registryMu.Unlock()
	if !ok {
		return nil, false
	}
	return f(params), true
}

// Names returns every registered scheme name in sorted order, for
// --help output.
func Names() []string {
	registryMu.Lock()
	defer registryMu.Unlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
