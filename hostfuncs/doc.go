// Package hostfuncs implements the host-side capabilities the dispatcher
// routes requests to: the path sandbox, the filesystem operations, process
// execution, the temporary-directory registry, and the version check.
//
// The Perform* functions are plain Go with no runtime dependencies, so they
// are directly testable and usable outside the WASM transport.
package hostfuncs
