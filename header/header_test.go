// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"context"
	"flag"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.astrophena.name/copyright/testutil"
)

var update = flag.Bool("update", false, "update golden files in testdata")

func fixedClock(year int) func() time.Time {
	return func() time.Time { return time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC) }
}

func TestNormalizeGolden(t *testing.T) {
	n := &Normalizer{Now: fixedClock(2020)}
	testutil.RunGolden(t, "testdata/*.in", func(t *testing.T, match string) []byte {
		content, _ := n.Normalize(Parse([]byte(testutil.ReadFile(t, match))))
		return content
	}, *update)
}

func TestNormalizeIdempotent(t *testing.T) {
	n := &Normalizer{Now: fixedClock(2020)}
	testutil.Run(t, "testdata/*.golden", func(t *testing.T, match string) {
		want := testutil.ReadFile(t, match)
		got, mismatch := n.Normalize(Parse([]byte(want)))
		testutil.AssertEqual(t, string(got), want)
		testutil.AssertEqual(t, mismatch, false)
	})
}

func writeTemp(t *testing.T, name, content string, perm fs.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatal(err)
	}
	// WriteFile is subject to umask.
	if err := os.Chmod(path, perm); err != nil {
		t.Fatal(err)
	}
	return path
}

const staleHeader = `/*
 * Copyright (C) 2018 Intel Corporation
 *
 * SPDX-License-Identifier: MIT
 *
 */

int main() {}
`

func TestProcessYearPreservation(t *testing.T) {
	ctx := context.Background()
	path := writeTemp(t, "main.cpp", staleHeader, 0o644)
	n := &Normalizer{Now: fixedClock(2020)}

	res, err := n.Process(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.Decision, Eligible)
	testutil.AssertEqual(t, res.Mismatch, true)

	want := `/*
 * Copyright (C) 2018-2020 Intel Corporation
 *
 * SPDX-License-Identifier: MIT
 *
 */

int main() {}
`
	testutil.AssertEqual(t, testutil.ReadFile(t, path), want)

	res, err = n.Process(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.Mismatch, false)
	testutil.AssertEqual(t, testutil.ReadFile(t, path), want)
}

func TestProcessYearAbsence(t *testing.T) {
	const body = "int a;\n\nint b;\n"
	path := writeTemp(t, "a.c", body, 0o644)
	n := &Normalizer{Now: fixedClock(2024)}

	res, err := n.Process(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.Mismatch, true)

	want := Render(StyleBlock, "2024", DefaultHolder, DefaultLicense) + "\n" + body
	testutil.AssertEqual(t, testutil.ReadFile(t, path), want)
}

func TestProcessPermissions(t *testing.T) {
	for name, perm := range map[string]fs.FileMode{
		"executable script": 0o755,
		"read only":         0o444,
		"private":           0o600,
	} {
		t.Run(name, func(t *testing.T) {
			path := writeTemp(t, "run.sh", "#!/bin/sh\necho hi\n", perm)
			n := &Normalizer{Now: fixedClock(2024)}

			if _, err := n.Process(context.Background(), path); err != nil {
				t.Fatal(err)
			}

			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			testutil.AssertEqual(t, info.Mode().Perm(), perm)
		})
	}
}

func TestProcessSkipped(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	t.Chdir(dir)

	const notes = "just notes\n"
	if err := os.WriteFile("notes.txt", []byte(notes), 0o644); err != nil {
		t.Fatal(err)
	}

	n := &Normalizer{Now: fixedClock(2024)}

	res, err := n.Process(ctx, "notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.Decision, Ignored)
	testutil.AssertEqual(t, testutil.ReadFile(t, "notes.txt"), notes)

	res, err = n.Process(ctx, "missing.cpp")
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.Decision, Missing)
}

func TestProcessSelf(t *testing.T) {
	path := writeTemp(t, "normalizer.sh", "echo self\n", 0o755)
	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatal(err)
	}
	n := &Normalizer{
		Filter: &Filter{Self: abs, Extensions: []string{"sh"}},
		Now:    fixedClock(2024),
	}

	res, err := n.Process(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, res.Decision, Self)
	testutil.AssertEqual(t, testutil.ReadFile(t, path), "echo self\n")
}

func TestNormalizeHolderAndLicense(t *testing.T) {
	n := &Normalizer{Holder: "Example Org", License: "Apache-2.0", Now: fixedClock(2021)}
	got, _ := n.Normalize(Parse([]byte("x = 1\n")))
	want := `/*
 * Copyright (C) 2021 Example Org
 *
 * SPDX-License-Identifier: Apache-2.0
 *
 */

x = 1
`
	testutil.AssertEqual(t, string(got), want)
}

func TestNormalizeEmptyFile(t *testing.T) {
	n := &Normalizer{Now: fixedClock(2021)}
	got, mismatch := n.Normalize(Parse(nil))
	testutil.AssertEqual(t, string(got), Render(StyleBlock, "2021", DefaultHolder, DefaultLicense))
	testutil.AssertEqual(t, mismatch, true)
}

func TestCheckMismatch(t *testing.T) {
	cases := map[string]struct {
		in   string
		year int
		want bool
	}{
		"up to date block": {
			in:   Render(StyleBlock, "2019-2024", DefaultHolder, DefaultLicense) + "\nint x;\n",
			year: 2024,
			want: false,
		},
		"up to date script": {
			in:   "#!/bin/sh\n" + Render(StyleScript, "2024", DefaultHolder, DefaultLicense) + "\necho\n",
			year: 2024,
			want: false,
		},
		"stale start year": {
			in:   Render(StyleBlock, "2019", DefaultHolder, DefaultLicense) + "\nint x;\n",
			year: 2024,
			want: true,
		},
		"stale range": {
			in:   Render(StyleBlock, "2019-2023", DefaultHolder, DefaultLicense) + "\nint x;\n",
			year: 2024,
			want: true,
		},
		"different license": {
			in:   Render(StyleBlock, "2024", DefaultHolder, "BSD-3-Clause") + "\nint x;\n",
			year: 2024,
			want: true,
		},
		"header only": {
			in:   Render(StyleScript, "2024", DefaultHolder, DefaultLicense),
			year: 2024,
			want: false,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			n := &Normalizer{Now: fixedClock(tc.year)}
			_, got := n.Normalize(Parse([]byte(tc.in)))
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}
