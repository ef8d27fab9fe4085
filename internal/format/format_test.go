// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package format

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relctl/relctl/internal/github"
	"github.com/relctl/relctl/internal/report"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		kind    string
		wantErr bool
	}{
		{name: "markdown", kind: "md"},
		{name: "text", kind: "txt"},
		{name: "unknown", kind: "json", wantErr: true},
		{name: "empty", kind: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.kind, &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, f)
		})
	}
}

func TestMarkdownCommitReport(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("md", &buf)
	require.NoError(t, err)

	f.CommitHeader()
	f.CommitBody(&report.Comparison{
		Name:    "pkg",
		Version: "1.2.0",
		Commits: []report.CommitLine{
			{SHA: "a1", Headline: "Fix bug"},
			{SHA: "b2", Headline: "Add feature"},
		},
	})
	f.CommitFooter()

	expected := "| Package name | Version | Unreleased commits |\n" +
		"|----|----|----|\n" +
		"| pkg | 1.2.0 | |\n" +
		"| | | Fix bug |\n" +
		"| | | Add feature |\n"
	assert.Equal(t, expected, buf.String())
}

func TestMarkdownCommitBodyZeroCommits(t *testing.T) {
	// A package with nothing unreleased still gets its summary row, with no
	// headline rows under it.
	var buf bytes.Buffer
	f, err := New("md", &buf)
	require.NoError(t, err)

	f.CommitBody(&report.Comparison{Name: "quiet-pkg", Version: "3.0.1"})

	assert.Equal(t, "| quiet-pkg | 3.0.1 | |\n", buf.String())
}

func TestMarkdownPRReport(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("md", &buf)
	require.NoError(t, err)

	f.PRHeader()
	f.PRBody(&report.PullRequestSet{
		Name: "pkg",
		Items: []github.PullRequest{
			{Number: 12, Title: "Add thing", Assignees: []string{"alice", "bob"}},
			{Number: 7, Title: "Fix other thing"},
		},
	})
	f.PRFooter()

	expected := "| Package name | Assignee | Pull Request |\n" +
		"|----|----|----|\n" +
		"| pkg | | |\n" +
		"| | alice, bob | #12: Add thing |\n" +
		"| |  | #7: Fix other thing |\n"
	assert.Equal(t, expected, buf.String())
}

func TestTextCommitReport(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("txt", &buf)
	require.NoError(t, err)

	f.CommitHeader()
	f.CommitBody(&report.Comparison{
		Name:    "pkg",
		Version: "1.2.0",
		Commits: []report.CommitLine{{SHA: "a1", Headline: "Fix bug"}},
	})
	f.CommitFooter()

	assert.Equal(t, "- pkg (v1.2.0)\n  - Fix bug\n", buf.String())
}

func TestTextPRReport(t *testing.T) {
	var buf bytes.Buffer
	f, err := New("txt", &buf)
	require.NoError(t, err)

	f.PRHeader()
	f.PRBody(&report.PullRequestSet{
		Name: "pkg",
		Items: []github.PullRequest{
			{Number: 12, Title: "Add thing", Assignees: []string{"alice"}},
			{Number: 7, Title: "Fix other thing"},
		},
	})
	f.PRFooter()

	expected := "- pkg\n" +
		"  - #12: Add thing (alice)\n" +
		"  - #7: Fix other thing (UNASSIGNED)\n"
	assert.Equal(t, expected, buf.String())
}

func TestErrorEntries(t *testing.T) {
	tests := []struct {
		name     string
		kind     string
		expected string
	}{
		{
			name:     "markdown",
			kind:     "md",
			expected: "| broken-pkg | | ERROR: boom |\n",
		},
		{
			name:     "text",
			kind:     "txt",
			expected: "- broken-pkg: ERROR: boom\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			f, err := New(tt.kind, &buf)
			require.NoError(t, err)

			f.Error("broken-pkg", errors.New("boom"))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestRenderingIsDeterministic(t *testing.T) {
	comparison := &report.Comparison{
		Name:    "pkg",
		Version: "1.2.0",
		Commits: []report.CommitLine{
			{SHA: "a1", Headline: "Fix bug"},
			{SHA: "b2", Headline: "Add feature"},
		},
	}
	pulls := &report.PullRequestSet{
		Name:  "pkg",
		Items: []github.PullRequest{{Number: 1, Title: "One"}},
	}

	for _, kind := range []string{"md", "txt"} {
		render := func() string {
			var buf bytes.Buffer
			f, err := New(kind, &buf)
			require.NoError(t, err)
			f.CommitHeader()
			f.CommitBody(comparison)
			f.CommitFooter()
			f.PRHeader()
			f.PRBody(pulls)
			f.PRFooter()
			return buf.String()
		}

		assert.Equal(t, render(), render(), "format %s", kind)
	}
}
