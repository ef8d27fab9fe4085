// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		handled bool
	}{
		{
			name:    "no version flag",
			args:    []string{"relctl", "unreleased"},
			handled: false,
		},
		{
			name:    "long flag",
			args:    []string{"relctl", "--version"},
			handled: true,
		},
		{
			name:    "short flag",
			args:    []string{"relctl", "-v"},
			handled: true,
		},
		{
			name:    "flag after subcommand",
			args:    []string{"relctl", "prs", "--version"},
			handled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.handled {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.handled)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no subcommand gets help",
			args:     []string{"relctl"},
			expected: []string{"relctl", "--help"},
		},
		{
			name:     "subcommand untouched",
			args:     []string{"relctl", "unreleased"},
			expected: []string{"relctl", "unreleased"},
		},
		{
			name:     "subcommand with args untouched",
			args:     []string{"relctl", "prs", "invenio-cli"},
			expected: []string{"relctl", "prs", "invenio-cli"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("handleNakedCommand = %v, want %v", result, tt.expected)
			}
		})
	}
}
