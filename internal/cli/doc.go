// Package cli defines the cobra command tree of the metro binary. Commands
// parse flags and arguments and hand off to the actions package.
package cli
