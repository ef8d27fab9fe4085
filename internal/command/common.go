// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/relctl/relctl/internal/config"
	"github.com/relctl/relctl/internal/format"
	"github.com/relctl/relctl/internal/github"
	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/meta"
	"github.com/relctl/relctl/internal/registry"
	"github.com/relctl/relctl/internal/report"
)

// defaultPackages is the fixed set reported on when no packages are given on
// the command line and none are configured. Process-wide constant
// configuration; never mutated.
var defaultPackages = []string{
	"invenio-app-rdm",
	"invenio-cli",
	"invenio-drafts-resources",
	"invenio-rdm-records",
	"invenio-records-resources",
	"react-invenio-deposit",
	"react-invenio-forms",
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// ResolvePackages returns the packages to report on in lexicographic order.
// Precedence: command-line args > "packages" config entry > built-in default
// set.
func ResolvePackages(cmd *cli.Command) []string {
	return resolvePackageList(cmd.Args().Slice())
}

// resolvePackageList applies package precedence and ordering to the raw
// positional args.
func resolvePackageList(args []string) []string {
	pkgs := args
	if len(pkgs) == 0 {
		pkgs, _ = config.GetStringSlice("packages", defaultPackages)
	}

	sorted := slices.Clone(pkgs)
	slices.Sort(sorted)
	return sorted
}

// NewBuilder constructs the report builder from command flags. The single
// gateway and registry clients are reused sequentially for every package.
func NewBuilder(cmd *cli.Command) *report.Builder {
	return &report.Builder{
		PyPI:  registry.NewPyPI(),
		NPM:   registry.NewNPM(),
		Repos: github.NewGateway(cmd.String("token")),
		Org:   cmd.String("org"),
	}
}

// RenderCommitReport drives header, per-package bodies, and footer for the
// unreleased-commits report. A failing package renders an error entry and
// processing continues with its siblings. Returns the number of failures.
func RenderCommitReport(ctx context.Context, f format.Formatter, b *report.Builder, packages []string) int {
	failed := 0

	f.CommitHeader()
	for _, pkg := range packages {
		res, err := b.Comparison(ctx, pkg)
		if err != nil {
			log.WithError(err).Debug("comparison failed")
			f.Error(pkg, err)
			failed++
			continue
		}
		f.CommitBody(res)
	}
	f.CommitFooter()

	return failed
}

// RenderPRReport drives header, per-package bodies, and footer for the open
// pull request report, with the same per-package failure isolation.
func RenderPRReport(ctx context.Context, f format.Formatter, b *report.Builder, packages []string) int {
	failed := 0

	f.PRHeader()
	for _, pkg := range packages {
		res, err := b.PullRequests(ctx, pkg)
		if err != nil {
			log.WithError(err).Debug("pull request listing failed")
			f.Error(pkg, err)
			failed++
			continue
		}
		f.PRBody(res)
	}
	f.PRFooter()

	return failed
}

// FailureError maps the per-package failure count to the command's returned
// error so that any failure yields a non-zero exit.
func FailureError(failed, total int) error {
	if failed == 0 {
		return nil
	}
	return fmt.Errorf("%d of %d packages failed", failed, total)
}
