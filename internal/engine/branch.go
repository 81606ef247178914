package engine

import (
	"context"
	"fmt"
	"strings"

	metroerrors "metro.dev/metro/internal/errors"
	"metro.dev/metro/internal/utils"
)

// WipSuffix marks a branch holding stashed work for the branch named before it
const WipSuffix = "#wip"

// BranchKind distinguishes ordinary branches from WIP stash branches
type BranchKind int

const (
	// BranchKindNormal is an ordinary branch
	BranchKindNormal BranchKind = iota
	// BranchKindWip is a stash branch owned by another branch
	BranchKindWip
)

// BranchName is a parsed branch name
type BranchName struct {
	Name string
	Kind BranchKind
	// Owner is the branch a WIP branch stashes work for; it equals Name for normal branches
	Owner string
}

// ParseBranchName classifies a branch name
func ParseBranchName(name string) BranchName {
	if owner, ok := strings.CutSuffix(name, WipSuffix); ok && owner != "" {
		return BranchName{Name: name, Kind: BranchKindWip, Owner: owner}
	}
	return BranchName{Name: name, Kind: BranchKindNormal, Owner: name}
}

// WipBranchFor returns the name of the WIP branch for owner
func WipBranchFor(owner string) string {
	return owner + WipSuffix
}

// IsWip reports whether the branch is a WIP stash branch
func (b BranchName) IsWip() bool {
	return b.Kind == BranchKindWip
}

// WipBranch returns the name of the WIP branch belonging to this branch's owner
func (b BranchName) WipBranch() string {
	return WipBranchFor(b.Owner)
}

func (b BranchName) String() string {
	return b.Name
}

// rejectWip fails with UnsupportedOperation for WIP branch names
func rejectWip(name string, action string) error {
	if ParseBranchName(name).IsWip() {
		return metroerrors.NewUnsupportedOperationError(fmt.Sprintf("cannot %s WIP branch %s", action, name))
	}
	return nil
}

// CurrentBranch returns the branch HEAD is attached to.
// It scans every local branch, so it costs O(branch count); it fails with
// BranchNotFound when HEAD is detached or points at no local branch.
func (s *Session) CurrentBranch() (BranchName, error) {
	branches, err := s.store.Branches()
	if err != nil {
		return BranchName{}, err
	}
	for _, b := range branches {
		if b.IsHead {
			return ParseBranchName(b.Name), nil
		}
	}
	return BranchName{}, metroerrors.NewBranchNotFoundError("")
}

// BranchInfo describes a local branch for listings
type BranchInfo struct {
	Name      BranchName
	Target    string
	IsCurrent bool
	// HasWip reports whether a WIP branch exists for this branch
	HasWip bool
}

// Branches lists local branches. WIP branches are folded into their owner's HasWip
// flag unless the WIP branch is checked out or its owner no longer exists.
func (s *Session) Branches(_ context.Context) ([]BranchInfo, error) {
	branches, err := s.store.Branches()
	if err != nil {
		return nil, err
	}

	names := make(map[string]bool, len(branches))
	for _, b := range branches {
		names[b.Name] = true
	}

	var infos []BranchInfo
	for _, b := range branches {
		name := ParseBranchName(b.Name)
		if name.IsWip() && !b.IsHead && names[name.Owner] {
			continue
		}
		infos = append(infos, BranchInfo{
			Name:      name,
			Target:    b.Target,
			IsCurrent: b.IsHead,
			HasWip:    !name.IsWip() && names[name.WipBranch()],
		})
	}
	return infos, nil
}

// CreateBranch creates a branch at HEAD without switching to it
func (s *Session) CreateBranch(_ context.Context, name string) error {
	if err := rejectWip(name, "create"); err != nil {
		return err
	}
	if err := utils.ValidateBranchName(name); err != nil {
		return err
	}

	head, err := s.store.HeadCommit()
	if err != nil {
		return err
	}

	s.log.Debug("creating branch", "branch", name, "commit", head.ID)
	return s.store.CreateBranch(name, head.ID)
}
