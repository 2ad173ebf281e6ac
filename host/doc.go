// Package host contains the bridge's request dispatcher and the wazero
// based guest program loader. The dispatcher is transport-agnostic: it
// consumes Requests from a channel and emits exactly one Response per
// request on another, so tests and alternative transports can drive it
// without a WASM runtime.
package host
