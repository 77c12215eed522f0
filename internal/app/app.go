// Package app implements the application layer for fixdep.
package app

import (
	"context"
	"fmt"
	"io"

	"go.trai.ch/fixdep/internal/configsym"
	"go.trai.ch/fixdep/internal/core/domain"
	"go.trai.ch/fixdep/internal/core/ports"
	"go.trai.ch/fixdep/internal/depfile"
	"go.trai.ch/fixdep/internal/fragment"
	"go.trai.ch/zerr"
)

// ConfigMarkerDir is where the build records one marker file per
// configuration option.
const ConfigMarkerDir = "include/config"

var _ ports.Fixer = (*App)(nil)

// App owns the rewrite pipeline: read the dependency listing, tokenize,
// filter, deduplicate, emit the fragment.
type App struct {
	reader ports.FileReader
	rules  ports.RulesLoader
	logger ports.Logger

	rulesPath     string
	expandConfigs bool
}

// New creates a new App instance.
func New(reader ports.FileReader, rules ports.RulesLoader, logger ports.Logger) *App {
	return &App{
		reader: reader,
		rules:  rules,
		logger: logger,
	}
}

// SetRulesPath points the App at an optional exclusion-rules file.
func (a *App) SetRulesPath(path string) {
	a.rulesPath = path
}

// SetExpandConfigs enables the configuration-symbol expansion pass: kept
// prerequisites are scanned for configuration-symbol mentions and each
// first-seen symbol adds a marker-file wildcard dependency to the block.
func (a *App) SetExpandConfigs(on bool) {
	a.expandConfigs = on
}

// Fix reads the listing at path and streams the rewritten fragment for
// target to out. Any read failure is fatal; the fragment is either emitted in
// full or the error is surfaced before lines stop flowing.
//
// cmdline is accepted for invocation compatibility with the build tool's
// calling convention; the emitted binding references $(cmd_<target>) so the
// fragment stays valid when the recorded command itself changes.
func (a *App) Fix(ctx context.Context, path, target, cmdline string, out io.Writer) error {
	if target == "" {
		return domain.ErrEmptyTargetName
	}

	rules, err := a.rules.Load(a.rulesPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load exclusion rules")
	}

	buf, err := a.reader.ReadFile(path)
	if err != nil {
		return zerr.Wrap(err, "failed to read dependency listing")
	}

	emitter := fragment.NewEmitter(out, rules)
	if err := emitter.Header(target); err != nil {
		return err
	}

	var expander *configsym.Expander
	if a.expandConfigs {
		w, err := emitter.Raw()
		if err != nil {
			return err
		}
		expander = configsym.NewExpander(w, ConfigMarkerDir)
	}

	s := depfile.NewScanner(buf)
	for s.Scan() {
		kept, err := emitter.Keep(s.Token())
		if err != nil {
			return err
		}
		if kept && expander != nil {
			if err := a.expand(expander, string(s.Token())); err != nil {
				return err
			}
		}
	}

	return emitter.Close(target)
}

// expand scans one kept prerequisite for configuration symbols. A
// prerequisite that cannot be read is only warned about: a file the compiler
// saw but we cannot open now will rebuild through its own staleness anyway,
// and it cannot reference a symbol we would otherwise miss.
func (a *App) expand(expander *configsym.Expander, prereq string) error {
	src, err := a.reader.ReadFile(prereq)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("skipping unreadable prerequisite %s", prereq))
		return nil
	}
	return expander.Expand(src)
}
