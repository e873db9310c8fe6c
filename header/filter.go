// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Default eligibility rules.
var (
	// DefaultBannedDirs are directory prefixes whose files are never touched.
	DefaultBannedDirs = []string{
		".git/",
		"build/",
		"third_party/",
		"scripts/tests/copyright/",
	}
	// DefaultBannedFiles are exact paths that are never touched.
	DefaultBannedFiles = []string{
		"scripts/lint/copyright.sh",
	}
	// DefaultAllowedFiles are base names accepted regardless of extension.
	DefaultAllowedFiles = []string{
		"CMakeLists.txt",
	}
	// DefaultExtensions are accepted file extensions, without the dot.
	DefaultExtensions = []string{
		"c", "cc", "cl", "cmake", "cpp", "cxx", "h", "hpp", "inl", "m", "mm", "py", "sh",
	}
	// DefaultCompoundExtensions are accepted pairs of final suffixes.
	DefaultCompoundExtensions = []string{
		"cpp.in", "h.in", "options.txt", "rc.in",
	}
)

// Decision is the outcome of an eligibility check.
type Decision int

const (
	// Eligible files get a normalized header.
	Eligible Decision = iota
	// Self is the running tool itself; it is skipped silently.
	Self
	// Missing paths don't exist or aren't regular files.
	Missing
	// Ignored files are banned or have a disallowed name.
	Ignored
)

func (d Decision) String() string {
	switch d {
	case Eligible:
		return "eligible"
	case Self:
		return "self"
	case Missing:
		return "missing"
	case Ignored:
		return "ignored"
	default:
		return "unknown"
	}
}

// Filter decides which files are processed. The zero value accepts
// nothing; use [DefaultFilter] as a starting point.
type Filter struct {
	// Self is the absolute path of the running tool, if known.
	Self string

	BannedDirs         []string
	BannedFiles        []string
	AllowedFiles       []string
	Extensions         []string
	CompoundExtensions []string
	// Exclusions are doublestar patterns matched against slash-separated
	// paths.
	Exclusions []string
}

// DefaultFilter returns a Filter with the default rules.
func DefaultFilter() *Filter {
	return &Filter{
		BannedDirs:         slices.Clone(DefaultBannedDirs),
		BannedFiles:        slices.Clone(DefaultBannedFiles),
		AllowedFiles:       slices.Clone(DefaultAllowedFiles),
		Extensions:         slices.Clone(DefaultExtensions),
		CompoundExtensions: slices.Clone(DefaultCompoundExtensions),
	}
}

// Validate checks the exclusion patterns.
func (f *Filter) Validate() error {
	for _, p := range f.Exclusions {
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("invalid exclusion pattern %q", p)
		}
	}
	return nil
}

// Check decides whether the file at path should be processed. reason
// explains a negative decision. Check has no side effects.
func (f *Filter) Check(path string) (d Decision, reason string) {
	if f.isSelf(path) {
		return Self, ""
	}

	info, err := os.Stat(path)
	if err != nil {
		return Missing, "cannot stat file"
	}
	if !info.Mode().IsRegular() {
		return Missing, "not a regular file"
	}

	slashed := filepath.ToSlash(filepath.Clean(path))
	dir := filepath.ToSlash(filepath.Dir(filepath.Clean(path))) + "/"
	for _, banned := range f.BannedDirs {
		if strings.HasPrefix(dir, banned) {
			return Ignored, "banned directory " + banned
		}
	}
	if slices.Contains(f.BannedFiles, slashed) {
		return Ignored, "banned file"
	}
	for _, p := range f.Exclusions {
		if ok, _ := doublestar.Match(p, slashed); ok {
			return Ignored, "excluded by pattern " + p
		}
	}

	base := filepath.Base(slashed)
	if slices.Contains(f.AllowedFiles, base) {
		return Eligible, ""
	}
	parts := strings.Split(base, ".")
	if len(parts) < 2 {
		return Ignored, "no extension"
	}
	ext := strings.ToLower(parts[len(parts)-1])
	if slices.Contains(f.Extensions, ext) {
		return Eligible, ""
	}
	compound := parts[len(parts)-2] + "." + parts[len(parts)-1]
	if slices.Contains(f.CompoundExtensions, compound) {
		return Eligible, ""
	}
	return Ignored, "extension not allowed"
}

func (f *Filter) isSelf(path string) bool {
	if f.Self == "" {
		return false
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	if abs == f.Self {
		return true
	}
	resolved, err := filepath.EvalSymlinks(abs)
	return err == nil && resolved == f.Self
}
