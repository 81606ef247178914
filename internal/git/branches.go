package git

import (
	"errors"
	"fmt"
	"sort"

	"github.com/go-git/go-git/v5/plumbing"

	metroerrors "metro.dev/metro/internal/errors"
)

// headTarget returns the branch reference HEAD is attached to, or "" when detached
func (r *Repository) headTarget() (plumbing.ReferenceName, error) {
	head, err := r.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w", err)
	}
	if head.Type() != plumbing.SymbolicReference {
		return "", nil
	}
	return head.Target(), nil
}

// Branches returns all local branches sorted by name
func (r *Repository) Branches() ([]Branch, error) {
	target, err := r.headTarget()
	if err != nil {
		return nil, err
	}

	refs, err := r.Repository.Branches()
	if err != nil {
		return nil, fmt.Errorf("failed to get branches: %w", err)
	}

	var branches []Branch
	err = refs.ForEach(func(ref *plumbing.Reference) error {
		if !ref.Name().IsBranch() {
			return nil
		}
		branches = append(branches, Branch{
			Name:   ref.Name().Short(),
			Target: ref.Hash().String(),
			IsHead: ref.Name() == target,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate branches: %w", err)
	}

	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// LookupBranch returns the named local branch, or nil when it does not exist
func (r *Repository) LookupBranch(name string) (*Branch, error) {
	refName := plumbing.NewBranchReferenceName(name)
	ref, err := r.Reference(refName, true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up branch %s: %w", name, err)
	}

	target, err := r.headTarget()
	if err != nil {
		return nil, err
	}
	return &Branch{Name: name, Target: ref.Hash().String(), IsHead: target == refName}, nil
}

// CreateBranch creates a branch pointing at commitID. It fails if the branch exists.
func (r *Repository) CreateBranch(name string, commitID string) error {
	existing, err := r.LookupBranch(name)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("branch %s already exists", name)
	}

	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(name), plumbing.NewHash(commitID))
	if err := r.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to create branch %s: %w", name, err)
	}
	return nil
}

// DeleteBranch deletes a local branch
func (r *Repository) DeleteBranch(name string) error {
	existing, err := r.LookupBranch(name)
	if err != nil {
		return err
	}
	if existing == nil {
		return metroerrors.NewBranchNotFoundError(name)
	}
	if err := r.Storer.RemoveReference(plumbing.NewBranchReferenceName(name)); err != nil {
		return fmt.Errorf("failed to delete branch %s: %w", name, err)
	}
	return nil
}

// SetHead attaches HEAD to the named branch without touching the index or working tree
func (r *Repository) SetHead(name string) error {
	ref := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(name))
	if err := r.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("failed to move HEAD to %s: %w", name, err)
	}
	return nil
}
