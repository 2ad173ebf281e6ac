// Package entities provides the wire-level types of the bridge protocol:
// the request envelope and its per-kind payloads, response bodies, the
// version pair, and the run configuration handed to a guest program at
// startup. The package has no dependencies beyond the standard library so
// both sides of the protocol can share it.
package entities
