// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Normalizer makes source files start with the canonical copyright header.

Usage:

	normalizer [-check] [-config file] [-v] <path>...

Each path is processed in order. Files that don't exist, live in a banned
directory or have an unknown extension are reported and skipped. For every
other file the existing copyright header is replaced with the canonical one,
keeping its start year: a header from 2018 processed in 2020 reads
"Copyright (C) 2018-2020". Files without a header get one with the current
year. An interpreter line ("#!") stays on top, and file permissions are kept.

With -check, the tool exits with status 1 if any header had to change. Files
are rewritten in this mode too.

The tool is configured through an optional .devtools/config.txtar file in the
current directory. This file is a txtar archive and can contain the following
files:

  - copyright/exclusions.json: A JSON array of doublestar patterns (for
    example, "opencl/extensions/**") of paths to skip.
  - copyright/holder.txt: The copyright holder written into headers.
  - copyright/license.txt: The SPDX license identifier written into headers.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/copyright/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
