// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package header

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// File is a source file read into memory.
type File struct {
	Path string
	// Perm holds the permission bits of the file.
	Perm fs.FileMode
	// Interpreter is the "#!" line, valid if HasInterpreter is true.
	Interpreter    string
	HasInterpreter bool
	// Lines holds the content after the interpreter line, split on "\n".
	Lines []string
}

// ReadFile reads the file at path.
func ReadFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f := Parse(content)
	f.Path = path
	f.Perm = info.Mode().Perm()
	return f, nil
}

// Parse splits content into an interpreter line and content lines. A
// trailing newline does not produce an empty last line.
func Parse(content []byte) *File {
	f := new(File)
	if len(content) == 0 {
		return f
	}
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	if strings.HasPrefix(lines[0], interpreterPrefix) {
		f.Interpreter = lines[0]
		f.HasInterpreter = true
		lines = lines[1:]
	}
	f.Lines = lines
	return f
}

// WriteFile replaces the file at path with content and restores perm.
//
// The content is written to a temporary file in the same directory, which
// is then renamed over path, so path always refers to either the old or the
// new content.
func WriteFile(path string, content []byte, perm fs.FileMode) error {
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(path, perm); err != nil {
		return fmt.Errorf("restoring permissions of %s: %w", path, err)
	}
	return nil
}
