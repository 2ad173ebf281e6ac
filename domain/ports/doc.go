// Package ports defines the interfaces the dispatcher depends on. Host
// implementations live in hostfuncs and host; tests substitute their own.
package ports
