package ports

import (
	"context"
	"io"
)

// Fixer rewrites one dependency listing into a build-tool fragment.
//
//go:generate mockgen -source=fixer.go -destination=mocks/mock_fixer.go -package=mocks
type Fixer interface {
	// Fix reads the listing at depfile and streams the fragment for target
	// to out. cmdline is the compile command recorded for the target; it is
	// accepted for invocation compatibility.
	Fix(ctx context.Context, depfile, target, cmdline string, out io.Writer) error
}
