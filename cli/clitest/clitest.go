// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides a table-driven harness for testing [cli.App]
// implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/copyright/cli"
)

// Case describes a single invocation of an application and the
// expectations about its result.
type Case[T cli.App] struct {
	// Args are the command-line arguments, without the program name.
	Args []string
	// Stdin is the standard input. It defaults to an empty reader.
	Stdin io.Reader
	// Env holds environment variables visible to the application.
	Env map[string]string

	// WantErr, if set, must match the returned error with errors.Is.
	WantErr error
	// WantErrType, if set, must match the returned error with errors.As.
	WantErrType error
	// WantInStdout must be a substring of standard output.
	WantInStdout string
	// WantInStderr must be a substring of standard error.
	WantInStderr string
	// WantNothingPrinted requires both standard output and standard error
	// to stay empty.
	WantNothingPrinted bool
	// CheckFunc is called with the application after it ran.
	CheckFunc func(*testing.T, T)
}

// Run runs every case as a subtest. A fresh application is created for each
// case with setup.
func Run[T cli.App](t *testing.T, setup func(*testing.T) T, cases map[string]Case[T]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			app := setup(t)

			var stdout, stderr bytes.Buffer
			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			env := &cli.Env{
				Args:   tc.Args,
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
				Getenv: func(key string) string { return tc.Env[key] },
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)
			check(t, tc, err)

			if tc.WantNothingPrinted && (stdout.Len() > 0 || stderr.Len() > 0) {
				t.Errorf("want nothing printed, got stdout %q and stderr %q", stdout.String(), stderr.String())
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got: %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got: %q", tc.WantInStderr, stderr.String())
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func check[T cli.App](t *testing.T, tc Case[T], err error) {
	t.Helper()
	switch {
	case tc.WantErr != nil:
		if !errors.Is(err, tc.WantErr) {
			t.Fatalf("want error %v, got %v", tc.WantErr, err)
		}
	case tc.WantErrType != nil:
		target := reflect.New(reflect.TypeOf(tc.WantErrType))
		if !errors.As(err, target.Interface()) {
			t.Fatalf("want error of type %T, got %v", tc.WantErrType, err)
		}
	case err != nil:
		t.Fatalf("unexpected error: %v", err)
	}
}
