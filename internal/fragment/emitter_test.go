package fragment_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"go.trai.ch/fixdep/internal/core/domain"
	"go.trai.ch/fixdep/internal/fragment"
)

func emit(t *testing.T, listing, target string) string {
	t.Helper()
	var buf bytes.Buffer
	e := fragment.NewEmitter(&buf, domain.DefaultRules())
	if err := e.Emit([]byte(listing), target); err != nil {
		t.Fatalf("Emit failed: %v", err)
	}
	if e.State() != fragment.StateDone {
		t.Fatalf("emitter finished in state %d, want Done", e.State())
	}
	return buf.String()
}

func TestEmitter_Golden(t *testing.T) {
	tests := []struct {
		name    string
		listing string
		target  string
	}{
		{
			name:    "basic",
			listing: "main.o: include/generated/autoconf.h foo.h foo.h bar.c",
			target:  "main.o",
		},
		{
			name:    "no_prerequisites",
			listing: "main.o:",
			target:  "main.o",
		},
		{
			name: "continuations",
			listing: "drivers/usb/core/hub.o: drivers/usb/core/hub.c \\\n" +
				"  include/linux/usb.h \\\n" +
				"  include/generated/autoconf.h \\\n" +
				"  include/linux/kernel.h\n",
			target: "drivers/usb/core/hub.o",
		},
		{
			name:    "generated_artifacts",
			listing: "foo.o: foo.c libbar.rlib libbar.rmeta libbaz.so foo.h",
			target:  "foo.o",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := emit(t, tt.listing, tt.target)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(out))
		})
	}
}

func TestEmitter_DeduplicatesAtFirstOccurrence(t *testing.T) {
	out := emit(t, "main.o: b.h a.h b.h c.h a.h", "main.o")

	want := "deps_main.o := \\\n  b.h \\\n  a.h \\\n  c.h \\\n"
	if !strings.Contains(out, want) {
		t.Errorf("prerequisite block not deduplicated in first-occurrence order:\n%s", out)
	}
}

func TestEmitter_OverInclusionSafety(t *testing.T) {
	out := emit(t, "main.o: a.h b.h c.h d.h", "main.o")

	for _, p := range []string{"a.h", "b.h", "c.h", "d.h"} {
		if strings.Count(out, "  "+p+" \\\n") != 1 {
			t.Errorf("prerequisite %s not emitted exactly once:\n%s", p, out)
		}
	}
}

func TestEmitter_StructuralCorrectness(t *testing.T) {
	out := emit(t, "main.o: foo.h", "main.o")

	markers := []string{
		"savedcmd_main.o := $(cmd_main.o)\n",
		"deps_main.o := \\\n",
		"main.o: $(deps_main.o)\n",
		"$(deps_main.o):\n",
	}
	pos := 0
	for _, m := range markers {
		i := strings.Index(out[pos:], m)
		if i < 0 {
			t.Fatalf("marker %q missing or out of order in:\n%s", m, out)
		}
		pos += i + len(m)
	}
}

func TestEmitter_ExclusionRegardlessOfPosition(t *testing.T) {
	listing := "main.o: include/generated/autoconf.h foo.h " +
		"include/generated/autoconf.h bar.so include/generated/autoconf.h"
	out := emit(t, listing, "main.o")

	if strings.Contains(out, "autoconf.h") {
		t.Errorf("configuration header leaked into output:\n%s", out)
	}
	if strings.Contains(out, "bar.so") {
		t.Errorf("shared object leaked into output:\n%s", out)
	}
	if !strings.Contains(out, "  foo.h \\\n") {
		t.Errorf("genuine prerequisite dropped:\n%s", out)
	}
}

func TestEmitter_WhitespaceRobustness(t *testing.T) {
	single := emit(t, "main.o: foo.h bar.c", "main.o")
	mixed := emit(t, "main.o:\tfoo.h \\\n\t \\\r\n  bar.c\n", "main.o")

	if single != mixed {
		t.Errorf("separator mix changed output:\nsingle:\n%s\nmixed:\n%s", single, mixed)
	}
}

func TestEmitter_EmptyTarget(t *testing.T) {
	var buf bytes.Buffer
	e := fragment.NewEmitter(&buf, domain.DefaultRules())

	if err := e.Emit([]byte("main.o: foo.h"), ""); err == nil {
		t.Fatal("expected error for empty target")
	}
	if buf.Len() != 0 {
		t.Errorf("output written despite empty target: %q", buf.String())
	}
}

func TestEmitter_OutOfOrderUse(t *testing.T) {
	var buf bytes.Buffer
	e := fragment.NewEmitter(&buf, domain.DefaultRules())

	if err := e.Prereq([]byte("foo.h")); !errors.Is(err, fragment.ErrOutOfOrder) {
		t.Errorf("Prereq before Header: got %v, want ErrOutOfOrder", err)
	}
	if err := e.Close("main.o"); !errors.Is(err, fragment.ErrOutOfOrder) {
		t.Errorf("Close before Header: got %v, want ErrOutOfOrder", err)
	}
	if err := e.Header("main.o"); err != nil {
		t.Fatalf("Header failed: %v", err)
	}
	if err := e.Header("main.o"); !errors.Is(err, fragment.ErrOutOfOrder) {
		t.Errorf("second Header: got %v, want ErrOutOfOrder", err)
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, errShort
	}
	w.n--
	return len(p), nil
}

var errShort = bytes.ErrTooLarge

func TestEmitter_WriteFailureSurfaces(t *testing.T) {
	e := fragment.NewEmitter(&failWriter{n: 1}, domain.DefaultRules())

	if err := e.Emit([]byte("main.o: foo.h"), "main.o"); err == nil {
		t.Fatal("expected write error to surface")
	}
}
