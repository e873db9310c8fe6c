// © 2024 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"go.astrophena.name/copyright/testutil"
)

func TestGetDefault(t *testing.T) {
	l := Get(context.Background())
	testutil.AssertEqual(t, IsDefault(l), true)
	// Must not panic.
	Info(context.Background(), "discarded")
}

func TestPutGet(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{})
	ctx := Put(context.Background(), l)

	testutil.AssertEqual(t, IsDefault(Get(ctx)), false)

	Info(ctx, "skipping file", slog.String("path", "notes.txt"))
	Debug(ctx, "hidden")

	got := buf.String()
	if !strings.Contains(got, "skipping file") || !strings.Contains(got, "path=notes.txt") {
		t.Fatalf("unexpected output: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug message logged at info level: %q", got)
	}
}

func TestLevelVar(t *testing.T) {
	var buf bytes.Buffer
	ctx := Put(context.Background(), New(&buf, Options{}))

	LevelVar(ctx).Set(slog.LevelDebug)
	Debug(ctx, "now visible")

	if !strings.Contains(buf.String(), "now visible") {
		t.Fatalf("debug message not logged after level change: %q", buf.String())
	}
}

func TestNoColorNoTime(t *testing.T) {
	var buf bytes.Buffer
	ctx := Put(context.Background(), New(&buf, Options{}))
	Warn(ctx, "plain")

	got := buf.String()
	testutil.AssertEqual(t, strings.Contains(got, "\x1b["), false)
	testutil.AssertEqual(t, strings.HasPrefix(got, "WRN plain"), true)
}
