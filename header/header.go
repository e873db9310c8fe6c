// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package header normalizes copyright headers of source files.
//
// A normalized file starts, after an optional "#!" interpreter line, with a
// canonical copyright and license comment. The comment style depends on the
// first line of the file: "#"-prefixed lines ended by a blank line for
// scripts, a "/* ... */" block otherwise. The start year of an existing
// copyright line is preserved and extended to the current year.
package header

import (
	"context"
	"log/slog"
	"time"

	"go.astrophena.name/copyright/logger"
)

// Result describes what [Normalizer.Process] did with a file.
type Result struct {
	Path     string
	Decision Decision
	// Reason explains why a file was not processed.
	Reason string
	// Mismatch reports whether the header that was written differs from the
	// header the file had before.
	Mismatch bool
}

// Normalizer rewrites copyright headers.
type Normalizer struct {
	// Filter selects files to process. If nil, DefaultFilter is used.
	Filter *Filter
	// Holder is the copyright holder. It defaults to DefaultHolder.
	Holder string
	// License is the SPDX license identifier. It defaults to DefaultLicense.
	License string
	// Now returns the current time. It defaults to time.Now.
	Now func() time.Time
}

// Process normalizes the header of the file at path. Files that are not
// eligible are logged and skipped; the returned error is non-nil only if
// reading or writing an eligible file failed.
func (n *Normalizer) Process(ctx context.Context, path string) (Result, error) {
	res := Result{Path: path}

	filter := n.Filter
	if filter == nil {
		filter = DefaultFilter()
	}
	res.Decision, res.Reason = filter.Check(path)
	switch res.Decision {
	case Self:
		logger.Debug(ctx, "skipping self", slog.String("path", path))
		return res, nil
	case Missing:
		logger.Info(ctx, "skipping missing file", slog.String("path", path), slog.String("reason", res.Reason))
		return res, nil
	case Ignored:
		logger.Info(ctx, "ignoring file", slog.String("path", path), slog.String("reason", res.Reason))
		return res, nil
	}

	f, err := ReadFile(path)
	if err != nil {
		return res, err
	}
	content, mismatch := n.Normalize(f)
	res.Mismatch = mismatch
	if err := WriteFile(path, content, f.Perm); err != nil {
		return res, err
	}

	if mismatch {
		logger.Info(ctx, "updated header", slog.String("path", path))
	} else {
		logger.Debug(ctx, "header up to date", slog.String("path", path))
	}
	return res, nil
}

// Normalize returns the normalized content of f and whether its header
// differs from the original one.
func (n *Normalizer) Normalize(f *File) (content []byte, mismatch bool) {
	sc := ScanLines(f.Lines, f.HasInterpreter)
	year := YearField(sc.StartYear, n.now().Year())
	rendered := Render(sc.Style, year, n.holder(), n.license())
	return Assemble(f, rendered, sc.Body), headerMismatch(sc, rendered)
}

func (n *Normalizer) now() time.Time {
	if n.Now == nil {
		return time.Now()
	}
	return n.Now()
}

func (n *Normalizer) holder() string {
	if n.Holder == "" {
		return DefaultHolder
	}
	return n.Holder
}

func (n *Normalizer) license() string {
	if n.License == "" {
		return DefaultLicense
	}
	return n.License
}
