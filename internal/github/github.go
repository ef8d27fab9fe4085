// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package github is the gateway to the source-hosting API. It resolves
// repositories and exposes the two range queries the reports need: commits
// ahead of a release tag and open pull requests.
package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v72/github"

	"github.com/relctl/relctl/internal/log"
)

// Gateway is an authenticated handle on the GitHub API. It is safe for
// sequential reuse across packages; it is not designed for concurrent use.
type Gateway struct {
	client *gh.Client
}

// NewGateway returns a gateway authenticated with the given bearer token.
func NewGateway(token string) *Gateway {
	return &Gateway{client: gh.NewClient(nil).WithAuthToken(token)}
}

// NewGatewayFromClient wraps an already-configured API client. Tests use this
// to point the gateway at a local server.
func NewGatewayFromClient(client *gh.Client) *Gateway {
	return &Gateway{client: client}
}

// Repo is a resolved repository handle.
type Repo struct {
	client *gh.Client
	owner  string
	name   string

	defaultBranch string
}

// Commit is one commit from a compare range.
type Commit struct {
	SHA     string
	Message string
}

// PullRequest is an open pull request summary.
type PullRequest struct {
	Number    int
	Title     string
	Assignees []string
}

// Resolve looks up org/name and returns a repository handle carrying the
// repository's default branch.
func (g *Gateway) Resolve(ctx context.Context, org, name string) (*Repo, error) {
	repo, _, err := g.client.Repositories.Get(ctx, org, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s/%s: %w", org, name, err)
	}

	return &Repo{
		client:        g.client,
		owner:         org,
		name:          name,
		defaultBranch: repo.GetDefaultBranch(),
	}, nil
}

// DefaultBranch returns the repository's default branch name.
func (r *Repo) DefaultBranch() string {
	return r.defaultBranch
}

// CommitsSince returns the commits reachable from branch but not from tag, in
// the order the compare API reports them (chronological).
func (r *Repo) CommitsSince(ctx context.Context, tag, branch string) ([]Commit, error) {
	raw, err := paginate(func(page int) ([]*gh.RepositoryCommit, *gh.Response, error) {
		opts := &gh.ListOptions{Page: page, PerPage: 100}
		cmp, resp, err := r.client.Repositories.CompareCommits(ctx, r.owner, r.name, tag, branch, opts)
		if err != nil {
			return nil, resp, err
		}
		return cmp.Commits, resp, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to compare %s...%s for %s/%s: %w", tag, branch, r.owner, r.name, err)
	}

	log.Debugf("compare: repo=%s/%s tag=%s branch=%s commits=%d", r.owner, r.name, tag, branch, len(raw))

	commits := make([]Commit, 0, len(raw))
	for _, c := range raw {
		commits = append(commits, Commit{
			SHA:     c.GetSHA(),
			Message: c.GetCommit().GetMessage(),
		})
	}
	return commits, nil
}

// OpenPullRequests returns the repository's open pull requests sorted by last
// update, most recent first.
func (r *Repo) OpenPullRequests(ctx context.Context) ([]PullRequest, error) {
	raw, err := paginate(func(page int) ([]*gh.PullRequest, *gh.Response, error) {
		opts := &gh.PullRequestListOptions{
			State:       "open",
			Sort:        "updated",
			Direction:   "desc",
			ListOptions: gh.ListOptions{Page: page, PerPage: 100},
		}
		return r.client.PullRequests.List(ctx, r.owner, r.name, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list pull requests for %s/%s: %w", r.owner, r.name, err)
	}

	pulls := make([]PullRequest, 0, len(raw))
	for _, p := range raw {
		assignees := make([]string, 0, len(p.Assignees))
		for _, a := range p.Assignees {
			assignees = append(assignees, a.GetLogin())
		}
		pulls = append(pulls, PullRequest{
			Number:    p.GetNumber(),
			Title:     p.GetTitle(),
			Assignees: assignees,
		})
	}
	return pulls, nil
}

// paginate walks a paged list call to exhaustion, collecting every page.
func paginate[T any](fetch func(page int) ([]T, *gh.Response, error)) ([]T, error) {
	var results []T

	page := 1
	for {
		items, resp, err := fetch(page)
		if err != nil {
			return nil, err
		}

		results = append(results, items...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	return results, nil
}
