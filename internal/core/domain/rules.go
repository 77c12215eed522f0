// Package domain holds the core value objects of the dependency rewriter.
package domain

import "bytes"

// Rules decides which prerequisite paths are suppressed from the emitted
// dependency fragment. A path is suppressed when its trailing bytes equal the
// configuration header path or one of the ignored suffixes. The comparison is
// a literal tail match, not path-structure aware.
type Rules struct {
	// ConfigHeader is the generated configuration header that nearly every
	// compiled unit includes. Dropping it is the whole point of the tool.
	ConfigHeader string

	// IgnoredSuffixes lists trailing byte sequences of generated build
	// artifacts that are not meaningful source dependencies.
	IgnoredSuffixes []string
}

// DefaultRules returns the rule set used by the kernel build.
func DefaultRules() Rules {
	return Rules{
		ConfigHeader:    "include/generated/autoconf.h",
		IgnoredSuffixes: []string{".rlib", ".rmeta", ".so"},
	}
}

// Ignore reports whether the token must be suppressed from output.
func (r Rules) Ignore(tok []byte) bool {
	if hasSuffix(tok, r.ConfigHeader) {
		return true
	}
	for _, s := range r.IgnoredSuffixes {
		if hasSuffix(tok, s) {
			return true
		}
	}
	return false
}

func hasSuffix(b []byte, s string) bool {
	return len(s) > 0 && bytes.HasSuffix(b, []byte(s))
}
