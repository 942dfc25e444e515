// Package deploy updates the locally deployed checkout of the application.
package deploy

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// GitPuller pulls a remote into an existing working tree.
type GitPuller struct {
	path   string
	remote string
	log    *zap.Logger
}

func NewGitPuller(path, remote string, log *zap.Logger) *GitPuller {
	if remote == "" {
		remote = git.DefaultRemoteName
	}
	return &GitPuller{
		path:   path,
		remote: remote,
		log:    log.With(zap.String("component", "git_puller")),
	}
}

// Pull fast-forwards the checkout. A checkout that is already current is not an error.
func (p *GitPuller) Pull(ctx context.Context) error {
	repo, err := git.PlainOpen(p.path)
	if err != nil {
		return fmt.Errorf("open repository %s: %w", p.path, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("open worktree %s: %w", p.path, err)
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: p.remote})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		p.log.Info("Repository already up to date", zap.String("path", p.path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("pull %s into %s: %w", p.remote, p.path, err)
	}

	head, err := repo.Head()
	if err == nil {
		p.log.Info("Repository updated",
			zap.String("path", p.path),
			zap.String("head", head.Hash().String()))
	}
	return nil
}
