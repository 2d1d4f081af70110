// Package netstate is the operational heart of the simulator: it tracks
// which spectrum slots are occupied on every link, maintains the
// shared-backup sharing matrix, and answers the availability and
// fragmentation queries the provisioning heuristics need.
package netstate
