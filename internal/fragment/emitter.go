// Package fragment emits the rewritten dependency fragment consumed by make.
package fragment

import (
	"fmt"
	"io"

	"go.trai.ch/fixdep/internal/core/domain"
	"go.trai.ch/fixdep/internal/depfile"
	"go.trai.ch/zerr"
)

// State tracks the emitter's position in the fragment. Transitions are
// strictly forward; there are no retries and no reachable failure states once
// the input has been read.
type State int

const (
	// StateStart is the initial state, before any output.
	StateStart State = iota
	// StateHeaderWritten means the saved-command binding and the opening of
	// the prerequisite variable have been emitted.
	StateHeaderWritten
	// StatePrereqBlockOpen means prerequisite continuation lines are being
	// emitted.
	StatePrereqBlockOpen
	// StatePrereqBlockClosed means the rule footer has been emitted.
	StatePrereqBlockClosed
	// StateDone is the terminal state.
	StateDone
)

// ErrOutOfOrder is returned when emitter operations run outside the state
// machine's forward order.
var ErrOutOfOrder = zerr.New("emitter used out of order")

func (e *Emitter) stateError(op string) error {
	return zerr.With(zerr.Wrap(ErrOutOfOrder, op), "state", int(e.state))
}

// Emitter writes one dependency fragment for one target. It streams lines as
// they are produced; on a write error the fragment is left truncated and the
// error is returned to the caller.
//
// The exact whitespace (two-space indent, trailing backslash continuations,
// blank separator lines) is part of the contract with the consuming build
// tool and must not change.
type Emitter struct {
	w     io.Writer
	rules domain.Rules
	seen  *domain.SeenSet
	state State
}

// NewEmitter creates an Emitter writing to w under the given exclusion rules.
// Each Emitter owns a fresh deduplication set and serves a single target.
func NewEmitter(w io.Writer, rules domain.Rules) *Emitter {
	return &Emitter{
		w:     w,
		rules: rules,
		seen:  domain.NewSeenSet(),
	}
}

// State returns the emitter's current state.
func (e *Emitter) State() State {
	return e.state
}

// Emit runs the whole fragment for target from the dependency listing in
// buf: header, deduplicated prerequisite block, rule footer.
func (e *Emitter) Emit(buf []byte, target string) error {
	if target == "" {
		return domain.ErrEmptyTargetName
	}
	if err := e.Header(target); err != nil {
		return err
	}
	s := depfile.NewScanner(buf)
	for s.Scan() {
		if err := e.Prereq(s.Token()); err != nil {
			return err
		}
	}
	return e.Close(target)
}

// Header emits the saved-command binding and opens the prerequisite variable,
// moving Start to HeaderWritten.
func (e *Emitter) Header(target string) error {
	if e.state != StateStart {
		return e.stateError("cannot write header")
	}
	if _, err := fmt.Fprintf(e.w, "savedcmd_%s := $(cmd_%s)\n\n", target, target); err != nil {
		return zerr.Wrap(err, "failed to write saved-command binding")
	}
	if _, err := fmt.Fprintf(e.w, "deps_%s := \\\n", target); err != nil {
		return zerr.Wrap(err, "failed to open prerequisite block")
	}
	e.state = StateHeaderWritten
	return nil
}

// Prereq offers one token to the prerequisite block. Suppressed and
// already-seen tokens are skipped; the first occurrence of every other token
// gets a continuation line. Kept reports whether the line was written.
func (e *Emitter) Prereq(tok []byte) error {
	_, err := e.Keep(tok)
	return err
}

// Keep is Prereq with the keep decision exposed, for callers that chain
// further work (such as symbol expansion) off kept prerequisites.
func (e *Emitter) Keep(tok []byte) (bool, error) {
	if e.state != StateHeaderWritten && e.state != StatePrereqBlockOpen {
		return false, e.stateError("cannot write prerequisite")
	}
	e.state = StatePrereqBlockOpen
	if len(tok) == 0 || e.rules.Ignore(tok) || e.seen.Seen(tok) {
		return false, nil
	}
	if _, err := fmt.Fprintf(e.w, "  %s \\\n", tok); err != nil {
		return false, zerr.Wrap(err, "failed to write prerequisite line")
	}
	return true, nil
}

// Raw writes a pre-formatted continuation line into the open prerequisite
// block. Used by the configuration-symbol expansion pass.
func (e *Emitter) Raw() (io.Writer, error) {
	if e.state != StateHeaderWritten && e.state != StatePrereqBlockOpen {
		return nil, e.stateError("cannot write into prerequisite block")
	}
	e.state = StatePrereqBlockOpen
	return e.w, nil
}

// Close ends the prerequisite block and emits the rule footer: the target
// depends on the variable, and every prerequisite gets an empty recipe so a
// deleted or renamed file does not break the build. The emitter lands in
// Done.
func (e *Emitter) Close(target string) error {
	if e.state != StateHeaderWritten && e.state != StatePrereqBlockOpen {
		return e.stateError("cannot close fragment")
	}
	if _, err := fmt.Fprintf(e.w, "\n%s: $(deps_%s)\n\n", target, target); err != nil {
		return zerr.Wrap(err, "failed to write rule line")
	}
	e.state = StatePrereqBlockClosed
	if _, err := fmt.Fprintf(e.w, "$(deps_%s):\n", target); err != nil {
		return zerr.Wrap(err, "failed to write empty-recipe rule")
	}
	e.state = StateDone
	return nil
}
