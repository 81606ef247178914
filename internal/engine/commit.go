package engine

import (
	"context"
	"fmt"

	"metro.dev/metro/internal/git"
)

// Commit records the whole working tree, untracked files included, as a commit
// with the given parents and moves the current head to it. HEAD's branch is
// moved when attached, HEAD itself when detached. It returns the new commit id.
func (s *Session) Commit(ctx context.Context, message string, parents []*git.Commit) (string, error) {
	if err := s.store.StageAll(ctx); err != nil {
		return "", err
	}

	tree, err := s.store.WriteTree(ctx)
	if err != nil {
		return "", err
	}

	parentIDs := make([]string, 0, len(parents))
	for _, p := range parents {
		parentIDs = append(parentIDs, p.ID)
	}

	id, err := s.store.CreateCommit(tree, parentIDs, message)
	if err != nil {
		return "", err
	}
	if err := s.store.UpdateHead(id); err != nil {
		return "", err
	}

	s.log.Debug("committed", "commit", id, "tree", tree, "parents", parentIDs)
	return id, nil
}

// CommitRevisions resolves every revision and commits with them as parents.
// It fails with RevisionNotFound before touching anything if one does not resolve.
func (s *Session) CommitRevisions(ctx context.Context, message string, revs ...string) (string, error) {
	parents, err := s.resolveAll(revs)
	if err != nil {
		return "", err
	}
	return s.Commit(ctx, message, parents)
}

func (s *Session) resolveAll(revs []string) ([]*git.Commit, error) {
	commits := make([]*git.Commit, 0, len(revs))
	for _, rev := range revs {
		c, err := s.store.ResolveCommit(rev)
		if err != nil {
			return nil, err
		}
		commits = append(commits, c)
	}
	return commits, nil
}

// CommitOnHead commits with HEAD's commit as the only parent
func (s *Session) CommitOnHead(ctx context.Context, message string) (string, error) {
	head, err := s.store.HeadCommit()
	if err != nil {
		return "", fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	return s.Commit(ctx, message, []*git.Commit{head})
}
