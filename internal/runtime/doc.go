// Package runtime provides the execution context for metro commands.
//
// It encapsulates shared dependencies and configuration needed by actions,
// such as the engine session, logger, and repository root path.
package runtime
