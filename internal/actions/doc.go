// Package actions provides high-level business logic for CLI commands.
//
// Each action corresponds to a metro command (commit, absorb, switch, etc.)
// and orchestrates operations on the engine session.
//
// Key patterns:
//   - Actions accept runtime.Context which provides Engine, Splog, and other dependencies
//   - Actions are stateless - all state lives in the repository
//   - Actions handle user interaction through the tui package
package actions
