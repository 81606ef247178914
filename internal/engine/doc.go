// Package engine is the workflow state machine metro runs on top of git.
//
// It is the core of metro, responsible for:
//   - Committing the whole working tree with explicit parents
//   - Starting, absorbing, resolving and aborting merges
//   - Stashing work in progress on "<branch>#wip" branches and restoring it,
//     conflicts and merge state included
//   - Switching branches with automatic stashing around the switch
//   - Amending history (uncommit, patch)
//
// A Session drives one repository through the git.Store interface. Sessions are
// not safe for concurrent use, and multi-step operations are not atomic: when a
// step fails its error is returned and earlier steps are not rolled back.
package engine
