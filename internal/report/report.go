// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package report builds the two report models: the release-to-repository
// comparison and the open pull request listing.
package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/relctl/relctl/internal/github"
	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/registry"
)

// npmMarker routes package names to the npm registry. Everything else is
// looked up on PyPI.
const npmMarker = "react-"

// CommitLine pairs a commit with the headline shown in the report.
type CommitLine struct {
	SHA      string
	Headline string
}

// Comparison pairs a package's published release version with the commits in
// its repository that are not yet included in that release. Constructed once
// per package per invocation; immutable.
type Comparison struct {
	Name    string
	Version string
	Commits []CommitLine
}

// PullRequestSet wraps the open pull requests for a package's repository.
type PullRequestSet struct {
	Name  string
	Items []github.PullRequest
}

// Builder composes the registry clients and the repository gateway into the
// report models. One builder serves all packages of an invocation.
type Builder struct {
	PyPI  registry.Client
	NPM   registry.Client
	Repos *github.Gateway
	Org   string
}

// registryFor picks the registry variant for a package name.
func (b *Builder) registryFor(name string) registry.Client {
	if strings.HasPrefix(name, npmMarker) {
		return b.NPM
	}
	return b.PyPI
}

// Comparison builds the unreleased-commits model for one package: latest
// registry version, then the commits on the repository's default branch not
// reachable from tag v<version>. Lookup and gateway failures propagate to the
// caller, which guards per package.
func (b *Builder) Comparison(ctx context.Context, name string) (*Comparison, error) {
	version, err := b.registryFor(name).LatestVersion(ctx, name)
	if err != nil {
		return nil, err
	}

	log.Debugf("latest release: package=%s version=%s", name, version)

	repo, err := b.Repos.Resolve(ctx, b.Org, name)
	if err != nil {
		return nil, err
	}

	commits, err := repo.CommitsSince(ctx, "v"+version, repo.DefaultBranch())
	if err != nil {
		return nil, err
	}

	lines := make([]CommitLine, 0, len(commits))
	for _, c := range commits {
		lines = append(lines, CommitLine{SHA: c.SHA, Headline: Headline(c.Message)})
	}

	return &Comparison{Name: name, Version: version, Commits: lines}, nil
}

// PullRequests builds the open pull request listing for one package.
func (b *Builder) PullRequests(ctx context.Context, name string) (*PullRequestSet, error) {
	repo, err := b.Repos.Resolve(ctx, b.Org, name)
	if err != nil {
		return nil, err
	}

	pulls, err := repo.OpenPullRequests(ctx)
	if err != nil {
		return nil, err
	}

	return &PullRequestSet{Name: name, Items: pulls}, nil
}

// Headline returns the first line of a commit message.
func Headline(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

// String summarizes a comparison for diagnostics.
func (c *Comparison) String() string {
	return fmt.Sprintf("%s v%s (%d unreleased)", c.Name, c.Version, len(c.Commits))
}
