// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewFormatFlag constructs the "format" flag, optionally namespaced to a
// command and config file. params[1] is the config file.
func NewFormatFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "output format (md or txt)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCTL_FORMAT"),
		),
		Value: "md",
		Validator: func(value string) error {
			return FlagValidators(value, FormatValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewOrgFlag constructs the "org" flag, optionally namespaced to a command
// and config file. params[1] is the config file. The default is the
// organization all default packages live under.
func NewOrgFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "org",
		Usage: "GitHub organization owning the package repositories",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCTL_ORG"),
		),
		Value: "inveniosoftware",
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewTokenFlag constructs the required "token" flag. The token is never
// sourced from the config file so that credentials stay out of it.
func NewTokenFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "token",
		Aliases:  []string{"t"},
		Usage:    "GitHub access token",
		Required: true,
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("RELCTL_TOKEN"),
			cli.EnvVar("GITHUB_TOKEN"),
		),
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config
// file sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if path == "" {
		return flag
	}

	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
