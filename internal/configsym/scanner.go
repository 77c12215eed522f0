// Package configsym extracts configuration-symbol references from text.
//
// The build records each configuration option as an empty marker file under
// include/config/, touched when the option changes. Depending on those
// markers instead of the monolithic configuration header means a
// configuration edit only rebuilds the units that mention the changed
// options.
//
// Extraction is a plain byte grep for the symbol prefix, not a language
// parse: a symbol mentioned in a comment is picked up too. That can only add
// dependencies, never lose one.
package configsym

import (
	"fmt"
	"io"

	"go.trai.ch/fixdep/internal/core/domain"
)

// Prefix marks a configuration-symbol reference in source text.
const Prefix = "CONFIG_"

// Scanner finds configuration-symbol names in blocks of text, reporting each
// distinct name once across all Find calls. The zero value is not usable;
// construct with NewScanner.
type Scanner struct {
	seen *domain.SeenSet
}

// NewScanner creates a Scanner with an empty symbol set.
func NewScanner() *Scanner {
	return &Scanner{seen: domain.NewSeenSet()}
}

// Find scans text and calls fn for each configuration symbol not reported
// before, in order of first occurrence. The symbol name excludes the prefix
// and is valid only for the duration of the call.
func (s *Scanner) Find(text []byte, fn func(sym []byte)) {
	for i := 0; i+len(Prefix) < len(text); i++ {
		if text[i] != 'C' || string(text[i:i+len(Prefix)]) != Prefix {
			continue
		}
		start := i + len(Prefix)
		end := start
		for end < len(text) && isSymByte(text[end]) {
			end++
		}
		if end > start && !s.seen.Seen(text[start:end]) {
			fn(text[start:end])
		}
		i = end - 1
	}
}

func isSymByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' ||
		c >= '0' && c <= '9' || c == '_'
}

// Expander writes a wildcard dependency line for every configuration symbol
// first seen in the text it is fed, in the continuation-line format of the
// dependency fragment's prerequisite block.
type Expander struct {
	w       io.Writer
	dir     string
	scanner *Scanner
}

// NewExpander creates an Expander writing marker dependencies under dir
// (conventionally "include/config").
func NewExpander(w io.Writer, dir string) *Expander {
	return &Expander{w: w, dir: dir, scanner: NewScanner()}
}

// Expand scans text and emits one wildcard line per newly seen symbol.
// The wildcard keeps the consuming build tool happy when a marker file does
// not exist yet.
func (e *Expander) Expand(text []byte) error {
	var werr error
	e.scanner.Find(text, func(sym []byte) {
		if werr != nil {
			return
		}
		_, werr = fmt.Fprintf(e.w, "    $(wildcard %s/%s) \\\n", e.dir, sym)
	})
	return werr
}
