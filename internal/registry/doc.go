// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package registry fetches latest-release metadata from the public package
// catalogs (PyPI and npm).
package registry
