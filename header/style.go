// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"regexp"
	"strings"
)

// Style is a comment style of a copyright header.
type Style int

const (
	// StyleBlock is a header delimited by "/*" and "*/".
	StyleBlock Style = iota
	// StyleScript is a header made of "#"-prefixed lines ended by a blank line.
	StyleScript
)

func (s Style) String() string {
	switch s {
	case StyleBlock:
		return "block"
	case StyleScript:
		return "script"
	default:
		return "unknown"
	}
}

// interpreterPrefix starts an interpreter line, which is kept verbatim above
// the header.
const interpreterPrefix = "#!"

// directives are "#"-prefixed lines that start C preprocessor code rather
// than a script comment.
var directives = []string{
	"#include",
	"#pragma",
	"#define",
	"#undef",
	"#ifdef",
	"#ifndef",
	"#if",
	"#error",
}

var (
	blockCopyright  = regexp.MustCompile(`^\s*\*\s*Copyright \([Cc]\) (\d+)(-\d+)?`)
	scriptCopyright = regexp.MustCompile(`^\s*#\s*Copyright \([Cc]\) (\d+)(-\d+)?`)
)

// Start returns the token that opens a header of style s.
func (s Style) Start() string {
	if s == StyleScript {
		return "#"
	}
	return "/*"
}

// IsEnd reports whether line terminates a header of style s.
func (s Style) IsEnd(line string) bool {
	trimmed := strings.TrimSpace(line)
	if s == StyleScript {
		return trimmed == ""
	}
	return strings.HasSuffix(trimmed, "*/")
}

// isCode reports whether line can't be part of a header of style s. Only
// script headers have such lines: anything that is neither blank nor a
// comment.
func (s Style) isCode(line string) bool {
	if s != StyleScript {
		return false
	}
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, "#")
}

// copyrightYear returns the start year of a copyright line. ok is false if
// line is not a copyright line of style s.
func (s Style) copyrightYear(line string) (year string, ok bool) {
	re := blockCopyright
	if s == StyleScript {
		re = scriptCopyright
	}
	m := re.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Detect classifies the first content line of a file. hasInterpreter reports
// whether the file started with an interpreter line, which always selects
// [StyleScript]. hasHeader reports whether first opens a header of the
// returned style; if not, the file has no header at all.
func Detect(first string, hasInterpreter bool) (style Style, hasHeader bool) {
	switch {
	case hasInterpreter:
		style = StyleScript
	case strings.HasPrefix(first, "#") && !isDirective(first):
		style = StyleScript
	default:
		style = StyleBlock
	}
	return style, strings.HasPrefix(first, style.Start())
}

func isDirective(line string) bool {
	for _, d := range directives {
		if strings.HasPrefix(line, d) {
			return true
		}
	}
	return false
}
