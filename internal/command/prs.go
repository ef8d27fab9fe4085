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

// prsCommandAction is the action handler for the "prs" subcommand. It lists
// the open pull requests for each package's repository, most recently updated
// first.
func prsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	f, err := format.New(cmd.String("format"), nil)
	if err != nil {
		return err
	}

	packages := ResolvePackages(cmd)
	log.Debugf("packages: %v", packages)

	failed := RenderPRReport(ctx, f, NewBuilder(cmd), packages)

	return FailureError(failed, len(packages))
}

// prsCommandBuilder constructs the cli.Command for "prs", wiring metadata,
// flags, and the action handler.
func prsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ReportCommandBuilder{
		Name:      "prs",
		Usage:     "show open pull requests",
		UsageText: "relctl prs [PACKAGES...] [options]",
		Action:    prsCommandAction,
		Meta:      meta,
	}).Build()
}
