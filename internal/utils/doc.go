// Package utils provides shared utility functions.
//
// These utilities are used across multiple packages and include:
//   - Branch naming, sanitization and validation
//   - Reading piped input
package utils
