// Package git is the versioned store metro orchestrates.
//
// It wraps a repository and provides a Go-friendly interface for:
//   - Revision resolution and commit creation (go-git)
//   - Branch and HEAD management (go-git refs)
//   - Staging, tree writing and status (git CLI)
//   - Merge analysis (go-git ancestry) and merge execution (git CLI)
//   - Conflict extraction and reinsertion in the index (git CLI)
//   - Merge state persistence (MERGE_HEAD / MERGE_MSG in the git dir)
//
// This package should be the only place where git is touched directly.
package git
