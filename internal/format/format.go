// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/relctl/relctl/internal/report"
)

// Formatter renders report headers, per-package bodies, and footers. Error
// renders the entry for a package whose lookup failed, so one bad package
// doesn't abort its siblings.
type Formatter interface {
	CommitHeader()
	CommitBody(c *report.Comparison)
	CommitFooter()
	PRHeader()
	PRBody(s *report.PullRequestSet)
	PRFooter()
	Error(name string, err error)
}

// New returns the formatter for the given format name ("md" or "txt"),
// writing to w. If w is nil, os.Stdout is used.
func New(kind string, w io.Writer) (Formatter, error) {
	if w == nil {
		w = os.Stdout
	}

	switch kind {
	case "md":
		return &Markdown{w: w}, nil
	case "txt":
		return &Text{w: w}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s", kind)
	}
}

// Markdown renders pipe-delimited tables. Commit headlines and pull requests
// are emitted as rows with blank leading columns so they visually nest under
// their package's summary row.
type Markdown struct {
	w io.Writer
}

func (f *Markdown) CommitHeader() {
	fmt.Fprintln(f.w, "| Package name | Version | Unreleased commits |")
	fmt.Fprintln(f.w, "|----|----|----|")
}

func (f *Markdown) CommitBody(c *report.Comparison) {
	fmt.Fprintf(f.w, "| %s | %s | |\n", c.Name, c.Version)
	for _, line := range c.Commits {
		fmt.Fprintf(f.w, "| | | %s |\n", line.Headline)
	}
}

// CommitFooter is reserved for closing markup.
func (f *Markdown) CommitFooter() {}

func (f *Markdown) PRHeader() {
	fmt.Fprintln(f.w, "| Package name | Assignee | Pull Request |")
	fmt.Fprintln(f.w, "|----|----|----|")
}

func (f *Markdown) PRBody(s *report.PullRequestSet) {
	fmt.Fprintf(f.w, "| %s | | |\n", s.Name)
	for _, p := range s.Items {
		fmt.Fprintf(f.w, "| | %s | #%d: %s |\n", strings.Join(p.Assignees, ", "), p.Number, p.Title)
	}
}

// PRFooter is reserved for closing markup.
func (f *Markdown) PRFooter() {}

func (f *Markdown) Error(name string, err error) {
	fmt.Fprintf(f.w, "| %s | | ERROR: %v |\n", name, err)
}

// Text renders an indented plain-text listing with no header.
type Text struct {
	w io.Writer
}

func (f *Text) CommitHeader() {}

func (f *Text) CommitBody(c *report.Comparison) {
	fmt.Fprintf(f.w, "- %s (v%s)\n", c.Name, c.Version)
	for _, line := range c.Commits {
		fmt.Fprintf(f.w, "  - %s\n", line.Headline)
	}
}

func (f *Text) CommitFooter() {}

func (f *Text) PRHeader() {}

func (f *Text) PRBody(s *report.PullRequestSet) {
	fmt.Fprintf(f.w, "- %s\n", s.Name)
	for _, p := range s.Items {
		assignees := strings.Join(p.Assignees, ", ")
		if assignees == "" {
			assignees = "UNASSIGNED"
		}
		fmt.Fprintf(f.w, "  - #%d: %s (%s)\n", p.Number, p.Title, assignees)
	}
}

func (f *Text) PRFooter() {}

func (f *Text) Error(name string, err error) {
	fmt.Fprintf(f.w, "- %s: ERROR: %v\n", name, err)
}
