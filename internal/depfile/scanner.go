// Package depfile tokenizes compiler-emitted dependency listings.
//
// A listing is "<target>: <prereq> <prereq> ..." where prerequisites are
// separated by spaces, tabs, newlines or backslash-newline continuations.
// No other syntax is recognized; tokens are opaque path strings.
package depfile

// Scanner yields the prerequisite path tokens of a dependency listing in file
// order. It is a lazy single pass over the buffer: tokens are subslices of
// the input and remain valid only as long as the buffer is not mutated.
//
// The leading target name up to and including the first ':' is skipped.
// Later ':' bytes act as separators too, so secondary "<path>:" rules appended
// by the compiler surface their paths as ordinary tokens.
type Scanner struct {
	buf     []byte
	pos     int
	started bool
	tok     []byte
}

// NewScanner creates a Scanner over buf. The buffer is read, never written.
func NewScanner(buf []byte) *Scanner {
	return &Scanner{buf: buf}
}

// Scan advances to the next token. It returns false when the buffer is
// exhausted, or immediately when the listing contains no ':' at all.
func (s *Scanner) Scan() bool {
	if !s.started {
		s.started = true
		if !s.skipTarget() {
			s.pos = len(s.buf)
			return false
		}
	}

	if !s.skipSeparators() {
		return false
	}
	start := s.pos
	end := s.tokenEnd()
	s.tok = s.buf[start:end]
	s.pos = end
	return true
}

// Token returns the token found by the last successful Scan.
func (s *Scanner) Token() []byte {
	return s.tok
}

// skipTarget advances past the first ':'. It reports false when there is
// none, in which case the listing has no prerequisite list to scan.
func (s *Scanner) skipTarget() bool {
	for i := s.pos; i < len(s.buf); i++ {
		if s.buf[i] == ':' {
			s.pos = i + 1
			return true
		}
	}
	return false
}

// skipSeparators consumes whitespace, ':' and backslash-newline sequences.
// It reports false at end of buffer.
func (s *Scanner) skipSeparators() bool {
	for s.pos < len(s.buf) {
		c := s.buf[s.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ':':
			s.pos++
		case c == '\\' && s.continuationLen() > 0:
			s.pos += s.continuationLen()
		default:
			return true
		}
	}
	return false
}

// tokenEnd returns the offset one past the last byte of the token starting at
// s.pos. A backslash only ends the token when it begins a line continuation;
// otherwise it is an ordinary path byte.
func (s *Scanner) tokenEnd() int {
	i := s.pos
	for i < len(s.buf) {
		c := s.buf[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ':' {
			return i
		}
		if c == '\\' {
			if n := continuationLenAt(s.buf, i); n > 0 {
				return i
			}
		}
		i++
	}
	return i
}

func (s *Scanner) continuationLen() int {
	return continuationLenAt(s.buf, s.pos)
}

// continuationLenAt returns the length of a line continuation starting at i:
// 2 for backslash-LF, 3 for backslash-CR-LF, 0 when i does not start one.
func continuationLenAt(buf []byte, i int) int {
	if i >= len(buf) || buf[i] != '\\' {
		return 0
	}
	if i+1 < len(buf) && buf[i+1] == '\n' {
		return 2
	}
	if i+2 < len(buf) && buf[i+1] == '\r' && buf[i+2] == '\n' {
		return 3
	}
	return 0
}

// Target returns the target name of the listing: the first token preceding
// the first ':', with surrounding whitespace trimmed. It returns "" when the
// listing has no target rule. Target does not disturb a Scanner; it is a
// standalone read of the buffer head.
func Target(buf []byte) string {
	for i := range buf {
		if buf[i] != ':' {
			continue
		}
		head := buf[:i]
		start := 0
		for start < len(head) && isSpace(head[start]) {
			start++
		}
		end := len(head)
		for end > start && isSpace(head[end-1]) {
			end--
		}
		return string(head[start:end])
	}
	return ""
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
