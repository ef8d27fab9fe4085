// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/relctl/relctl/internal/meta"
)

// ReportCommandBuilder constructs a cli.Command for the report subcommands
// (unreleased, prs) using a consistent pattern. It accepts the command name,
// usage text, optional UsageText, the action handler, and meta. The builder
// automatically wires metadata and the shared format/org/token flags, with
// format and org sourced from the config file under the command's namespace.
type ReportCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (rcb *ReportCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      rcb.Name,
		Usage:     rcb.Usage,
		UsageText: rcb.UsageText,
		ArgsUsage: "[PACKAGES...]",
		Metadata: map[string]any{
			"meta": rcb.Meta,
		},
		Flags: append(rcb.Flags,
			NewFormatFlag(rcb.Name, rcb.Meta.Config.Source),
			NewOrgFlag(rcb.Name, rcb.Meta.Config.Source),
			NewTokenFlag(),
		),
		Action: rcb.Action,
	}
}
