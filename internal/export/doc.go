// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export writes chat transcripts to files in portable formats.
//
// Three exporters are available: Markdown (with YAML frontmatter and a
// session information section), JSON (a complete, stable record), and plain
// text (one message per line). Files are written atomically.
//
// # Usage
//
//	exp, err := export.ForFormat("md", nil)
//	if err != nil {
//	    return err
//	}
//	path, err := export.ExportToFile(conv, exp, nil)
package export
