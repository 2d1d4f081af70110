// Package provisioning defines the contract a shared-path-protection
// heuristic must satisfy and the process-wide name-to-factory registry
// concrete schemes (package provisioning/heuristics) register
// themselves into.
package provisioning
