// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/relctl/relctl/internal/format"
	"github.com/relctl/relctl/internal/log"
	"github.com/relctl/relctl/internal/meta"
)

// unreleasedCommandAction is the action handler for the "unreleased"
// subcommand. It reports the commits on each package's default branch that
// are not reachable from its latest release tag.
func unreleasedCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	f, err := format.New(cmd.String("format"), nil)
	if err != nil {
		return err
	}

	packages := ResolvePackages(cmd)
	log.Debugf("packages: %v", packages)

	failed := RenderCommitReport(ctx, f, NewBuilder(cmd), packages)

	return FailureError(failed, len(packages))
}

// unreleasedCommandBuilder constructs the cli.Command for "unreleased",
// wiring metadata, flags, and the action handler.
func unreleasedCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ReportCommandBuilder{
		Name:      "unreleased",
		Usage:     "show unreleased commits",
		UsageText: "relctl unreleased [PACKAGES...] [options]",
		Action:    unreleasedCommandAction,
		Meta:      meta,
	}).Build()
}
