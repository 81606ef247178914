package git

import (
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Commit is a read-only view of a commit object
type Commit struct {
	ID      string
	Parents []string
	Tree    string
	Message string
	Author  object.Signature
}

// ParentCount returns the number of parents
func (c *Commit) ParentCount() int {
	return len(c.Parents)
}

// Parent returns the id of the n-th parent, or "" when out of range
func (c *Commit) Parent(n int) string {
	if n < 0 || n >= len(c.Parents) {
		return ""
	}
	return c.Parents[n]
}

func newCommit(c *object.Commit) *Commit {
	parents := make([]string, 0, len(c.ParentHashes))
	for _, p := range c.ParentHashes {
		parents = append(parents, p.String())
	}
	return &Commit{
		ID:      c.Hash.String(),
		Parents: parents,
		Tree:    c.TreeHash.String(),
		Message: c.Message,
		Author:  c.Author,
	}
}

// Branch is a local branch and the commit it points at
type Branch struct {
	Name   string
	Target string
	IsHead bool
}

// IndexEntry is one stage of a conflicted path
type IndexEntry struct {
	Mode string
	ID   string
}

// Conflict is a detached copy of the conflict stages of one path.
// A nil stage means the side did not have the path.
type Conflict struct {
	Path     string
	Ancestor *IndexEntry
	Ours     *IndexEntry
	Theirs   *IndexEntry
}

// MergeAnalysis is a bit set describing how a commit could be merged into HEAD
type MergeAnalysis int

const (
	// MergeAnalysisNone means no merge is possible
	MergeAnalysisNone MergeAnalysis = 0
	// MergeAnalysisNormal means a regular merge can be performed
	MergeAnalysisNormal MergeAnalysis = 1 << iota
	// MergeAnalysisUpToDate means the commit is already reachable from HEAD
	MergeAnalysisUpToDate
	// MergeAnalysisFastForward means HEAD is an ancestor of the commit
	MergeAnalysisFastForward
	// MergeAnalysisUnborn means HEAD points at a branch with no commits
	MergeAnalysisUnborn
)

// Has reports whether every bit in flag is set
func (a MergeAnalysis) Has(flag MergeAnalysis) bool {
	return flag != 0 && a&flag == flag
}
