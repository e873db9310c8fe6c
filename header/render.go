// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// DefaultHolder is the copyright holder written into new headers.
	DefaultHolder = "Intel Corporation"
	// DefaultLicense is the SPDX license identifier written into new headers.
	DefaultLicense = "MIT"
)

const blockTemplate = `/*
 * Copyright (C) %[1]s %[2]s
 *
 * SPDX-License-Identifier: %[3]s
 *
 */
`

const scriptTemplate = `#
# Copyright (C) %[1]s %[2]s
#
# SPDX-License-Identifier: %[3]s
#
`

// YearField returns the year field of a header. start is the start year
// found in an existing header, or an empty string.
func YearField(start string, current int) string {
	if start == "" {
		return strconv.Itoa(current)
	}
	n, err := strconv.Atoi(start)
	if err != nil || n >= current {
		return start
	}
	return fmt.Sprintf("%s-%d", start, current)
}

// Render returns the header of style s for the given year field, holder and
// SPDX license identifier. The result ends with a newline.
func Render(s Style, year, holder, license string) string {
	tmpl := blockTemplate
	if s == StyleScript {
		tmpl = scriptTemplate
	}
	return fmt.Sprintf(tmpl, year, holder, license)
}

// Assemble builds the content of a normalized file: the interpreter line if
// present, the rendered header, a single blank line if there is a body, and the
// body. Each line is terminated by "\n".
//
// Blank lines at the start of body are dropped so that exactly one blank
// line separates header and body.
func Assemble(f *File, rendered string, body []string) []byte {
	for len(body) > 0 && isBlank(body[0]) {
		body = body[1:]
	}

	var sb strings.Builder
	if f.HasInterpreter {
		sb.WriteString(f.Interpreter)
		sb.WriteByte('\n')
	}
	sb.WriteString(rendered)
	if len(body) > 0 {
		sb.WriteByte('\n')
		for _, line := range body {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return []byte(sb.String())
}

// headerMismatch reports whether the original header differs from the
// rendered one. The blank line terminating a script header is not part of
// the comparison.
func headerMismatch(sc Scan, rendered string) bool {
	lines := sc.Header
	if sc.Style == StyleScript && len(lines) > 0 && isBlank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	var got strings.Builder
	for _, line := range lines {
		got.WriteString(line)
		got.WriteByte('\n')
	}
	return got.String() != rendered
}
