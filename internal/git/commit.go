package git

import (
	"fmt"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	metroerrors "metro.dev/metro/internal/errors"
)

// ResolveCommit resolves a revision (branch, ref, SHA or expression) to a commit
func (r *Repository) ResolveCommit(rev string) (*Commit, error) {
	hash, err := r.resolveRevision(rev)
	if err != nil {
		return nil, metroerrors.NewRevisionNotFoundError(rev, err)
	}

	commit, err := r.CommitObject(hash)
	if err != nil {
		return nil, metroerrors.NewRevisionNotFoundError(rev, err)
	}
	return newCommit(commit), nil
}

// resolveRevision tries references before falling back to revision parsing
func (r *Repository) resolveRevision(rev string) (plumbing.Hash, error) {
	// 1. Try as a full reference name (HEAD, refs/heads/x)
	if ref, err := r.Reference(plumbing.ReferenceName(rev), true); err == nil {
		return ref.Hash(), nil
	}

	// 2. Try as a local branch
	if ref, err := r.Reference(plumbing.NewBranchReferenceName(rev), true); err == nil {
		return ref.Hash(), nil
	}

	// 3. Try ResolveRevision (handles SHAs, short SHAs, and expressions like HEAD~1)
	hash, err := r.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return plumbing.ZeroHash, err
	}
	return *hash, nil
}

// HeadCommit returns the commit HEAD points at
func (r *Repository) HeadCommit() (*Commit, error) {
	return r.ResolveCommit(plumbing.HEAD.String())
}

// CreateCommit writes a commit object with the given tree, parents and message
// and returns its id. No reference is moved.
func (r *Repository) CreateCommit(tree string, parents []string, message string) (string, error) {
	sig, err := r.DefaultSignature()
	if err != nil {
		return "", err
	}

	parentHashes := make([]plumbing.Hash, 0, len(parents))
	for _, p := range parents {
		parentHashes = append(parentHashes, plumbing.NewHash(p))
	}

	commit := &object.Commit{
		Author:       *sig,
		Committer:    *sig,
		Message:      message,
		TreeHash:     plumbing.NewHash(tree),
		ParentHashes: parentHashes,
	}

	obj := r.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return "", fmt.Errorf("failed to encode commit: %w", err)
	}
	hash, err := r.Storer.SetEncodedObject(obj)
	if err != nil {
		return "", fmt.Errorf("failed to store commit: %w", err)
	}
	return hash.String(), nil
}

// UpdateHead moves the current head to commitID: the branch HEAD is attached to,
// or HEAD itself when detached.
func (r *Repository) UpdateHead(commitID string) error {
	head, err := r.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return fmt.Errorf("failed to read HEAD: %w", err)
	}

	name := plumbing.HEAD
	if head.Type() == plumbing.SymbolicReference {
		name = head.Target()
	}

	if err := r.Storer.SetReference(plumbing.NewHashReference(name, plumbing.NewHash(commitID))); err != nil {
		return fmt.Errorf("failed to update %s: %w", name, err)
	}
	return nil
}
