// Package registry provides a generic, thread-safe registry for named items,
// plus the global action registry the CLI dispatches through.
//
// The generic Registry[T] stores items by unique name. The action registry
// built on top of it maps action names to Action funcs and exposes a Runner
// that resolves and invokes them, which is the default action runner for
// standalone use. When switchcase is embedded in a host runtime, the host
// supplies its own runner and this registry is not involved.
package registry
