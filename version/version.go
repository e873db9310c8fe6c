// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running binary.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
)

// Info describes the running binary.
type Info struct {
	// Name is the command name.
	Name string
	// Module is the main module version, "(devel)" for local builds.
	Module string
	// Commit is the VCS revision, if recorded.
	Commit string
	// Modified reports whether the working tree was dirty at build time.
	Modified bool
	// Go is the toolchain version.
	Go string
}

// String returns a multi-line, human-readable form of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", i.Name, i.Module)
	if i.Commit != "" {
		commit := i.Commit
		if i.Modified {
			commit += "-dirty"
		}
		fmt.Fprintf(&sb, "commit: %s\n", commit)
	}
	fmt.Fprintf(&sb, "go: %s\n", i.Go)
	return sb.String()
}

// Version returns build information of the running binary.
func Version() Info {
	info := Info{
		Name:   CmdName(),
		Module: "(devel)",
		Go:     runtime.Version(),
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	if v := bi.Main.Version; v != "" {
		info.Module = v
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

// CmdName returns the base name of the running command, without the
// extension on Windows.
func CmdName() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Path != "" {
		if name := filepath.Base(bi.Path); name != "." && name != "/" {
			return name
		}
	}
	if len(os.Args) == 0 {
		return "unknown"
	}
	return strings.TrimSuffix(filepath.Base(os.Args[0]), ".exe")
}
