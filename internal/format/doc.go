// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package format renders the commit-comparison and pull-request reports in
// Markdown table or plain text form.
package format
