// Package heuristics implements the five reproducible shared-path-
// protection schemes: ShortestFFLF, FF, MFSB, PFMBL, and Ksq. Each
// self-registers into package provisioning's factory table from its
// own init(), so importing this package for its side effects (a blank
// import from cmd/eonsim) is enough to make every scheme available by
// name.
package heuristics
