package gitlog

import (
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
)

// GitLogAdapter implements domain.GitLog using go-git.
type GitLogAdapter struct{}

func New() *GitLogAdapter {
	return &GitLogAdapter{}
}

func (g *GitLogAdapter) IsRepo(root string) bool {
	_, err := git.PlainOpen(root)
	return err == nil
}

func (g *GitLogAdapter) HeadHash(root string) (string, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return "", fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("getting HEAD: %w", err)
	}

	return head.Hash().String(), nil
}

// RecentSubjects returns the first line of up to limit commit messages,
// newest first, starting at HEAD.
func (g *GitLogAdapter) RecentSubjects(root string, limit int) ([]string, error) {
	repo, err := git.PlainOpen(root)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}

	iter, err := repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, fmt.Errorf("reading log: %w", err)
	}
	defer iter.Close()

	var subjects []string
	err = iter.ForEach(func(c *object.Commit) error {
		subject, _, _ := strings.Cut(c.Message, "\n")
		subjects = append(subjects, strings.TrimSpace(subject))
		if len(subjects) >= limit {
			return storer.ErrStop
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterating log: %w", err)
	}

	return subjects, nil
}
