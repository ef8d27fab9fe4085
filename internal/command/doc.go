// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command wires the relctl CLI: the root app, the unreleased and prs
// subcommands, and their shared flags and helpers.
package command
