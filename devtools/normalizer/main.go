// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/tools/txtar"

	"go.astrophena.name/copyright/cli"
	"go.astrophena.name/copyright/header"
	"go.astrophena.name/copyright/logger"
)

const defaultConfigPath = ".devtools/config.txtar"

var errHeadersOutOfDate = errors.New("copyright headers were out of date")

type config struct {
	exclusions []string
	holder     string
	license    string
}

// parseConfig reads the txtar config at path. A missing file yields an
// empty config.
func parseConfig(path string) (*config, error) {
	cfg := new(config)

	ar, err := txtar.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	for _, f := range ar.Files {
		switch f.Name {
		case "copyright/exclusions.json":
			if err := json.Unmarshal(f.Data, &cfg.exclusions); err != nil {
				return nil, fmt.Errorf("%s: %s: %w", path, f.Name, err)
			}
		case "copyright/holder.txt":
			cfg.holder = strings.TrimSpace(string(f.Data))
		case "copyright/license.txt":
			cfg.license = strings.TrimSpace(string(f.Data))
		}
	}

	return cfg, nil
}

func main() { cli.Main(new(app)) }

type app struct {
	check   bool
	config  string
	verbose bool

	// for tests
	now  func() time.Time
	self string
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.BoolVar(&a.check, "check", false, "Exit with status 1 if any header had to be changed.")
	fs.StringVar(&a.config, "config", defaultConfigPath, "Read configuration from `file`.")
	fs.BoolVar(&a.verbose, "v", false, "Log every processed file.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)
	if a.verbose {
		logger.LevelVar(ctx).Set(slog.LevelDebug)
	}

	cfg, err := parseConfig(a.config)
	if err != nil {
		return err
	}

	filter := header.DefaultFilter()
	filter.Self = a.selfPath()
	filter.Exclusions = cfg.exclusions
	if err := filter.Validate(); err != nil {
		return fmt.Errorf("%w: %v", cli.ErrInvalidArgs, err)
	}

	n := &header.Normalizer{
		Filter:  filter,
		Holder:  cfg.holder,
		License: cfg.license,
		Now:     a.now,
	}

	var mismatched []string
	for _, path := range env.Args {
		res, err := n.Process(ctx, path)
		if err != nil {
			return err
		}
		if res.Mismatch {
			mismatched = append(mismatched, path)
		}
	}

	if a.check && len(mismatched) > 0 {
		for _, path := range mismatched {
			fmt.Fprintf(env.Stdout, "%s\n", path)
		}
		return errHeadersOutOfDate
	}
	return nil
}

func (a *app) selfPath() string {
	if a.self != "" {
		return a.self
	}
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		return resolved
	}
	return exe
}
