// Package batch rewrites many dependency listings in one invocation.
//
// Each listing is an independent single-pass pipeline; concurrency exists
// only across files. The target is taken from the listing's own rule head,
// and the fragment is written next to the listing as "<name>.cmd", the file
// the build tool includes.
package batch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/fixdep/internal/core/domain"
	"go.trai.ch/fixdep/internal/core/ports"
	"go.trai.ch/fixdep/internal/depfile"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// DepSuffix is the extension compilers give dependency listings.
const DepSuffix = ".d"

// FragmentSuffix is the extension of the emitted fragment files.
const FragmentSuffix = ".cmd"

// Runner processes dependency listings concurrently through a Fixer.
type Runner struct {
	fixer  ports.Fixer
	reader ports.FileReader
	logger ports.Logger
}

// NewRunner creates a Runner.
func NewRunner(fixer ports.Fixer, reader ports.FileReader, logger ports.Logger) *Runner {
	return &Runner{fixer: fixer, reader: reader, logger: logger}
}

// Run rewrites every listing in paths with at most workers in flight.
// The first failure cancels the remaining work and is returned. A fragment
// file only appears once its content is complete; an interrupted run never
// leaves a truncated fragment behind.
func (r *Runner) Run(ctx context.Context, paths []string, workers int) error {
	if workers < 1 {
		workers = 1
	}

	g, groupCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for _, path := range paths {
		g.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			return r.fixOne(groupCtx, path)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	r.logger.Info(fmt.Sprintf("rewrote %d dependency listings", len(paths)))
	return nil
}

// fixOne rewrites a single listing. The fragment is staged in a temp file in
// the destination directory and renamed into place so the build tool never
// includes a half-written fragment.
func (r *Runner) fixOne(ctx context.Context, path string) error {
	if !strings.HasSuffix(path, DepSuffix) {
		return zerr.With(zerr.Wrap(domain.ErrNotDepFile, "rejected batch input"), "path", path)
	}

	buf, err := r.reader.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, "failed to read dependency listing")
	}

	target := depfile.Target(buf)
	if target == "" {
		return zerr.With(zerr.Wrap(domain.ErrNoTarget, "cannot derive target"), "path", path)
	}

	out := strings.TrimSuffix(path, DepSuffix) + FragmentSuffix
	tmp, err := os.CreateTemp(filepath.Dir(out), filepath.Base(out)+".tmp*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create fragment file"), "path", out)
	}
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}()

	if err := r.fixer.Fix(ctx, path, target, "", tmp); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to flush fragment file"), "path", out)
	}
	if err := os.Rename(tmp.Name(), out); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to move fragment into place"), "path", out)
	}
	return nil
}
