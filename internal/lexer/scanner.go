package lexer

import (
	"errors"
	"io"
)

// bufferHalf is the size of each of the two buffer halves.
const bufferHalf = 500

// Scanner is a double-buffered character source with backtracking.
//
// Characters between the confirmed mark and the cursor form the pending
// lexeme. Reset rewinds to the mark, Confirm moves the mark to the cursor
// and Decrement un-reads one character. Backtracking is bounded by the size
// of one buffer half.
type Scanner struct {
	r   io.Reader
	err error

	buf         [2 * bufferHalf]byte
	pos         int
	currentHalf int
	mark        int

	// sentinel is the buffer index of the NUL written after a short read,
	// -1 until the input is exhausted. Reads at the sentinel do not move the
	// cursor, they are counted in pastEnd instead.
	sentinel int
	pastEnd  int

	lexeme []byte
}

func NewScanner(r io.Reader) *Scanner {
	s := &Scanner{
		r:           r,
		currentHalf: 1,
		sentinel:    -1,
		lexeme:      make([]byte, 0, 64),
	}
	s.load(0)

	return s
}

// load refills a buffer half from the reader unless that half is already
// the current one.
func (s *Scanner) load(half int) {
	if s.currentHalf == half {
		return
	}
	s.currentHalf = half

	start := half * bufferHalf
	n, err := io.ReadFull(s.r, s.buf[start:start+bufferHalf])
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		s.err = err
	}

	if n < bufferHalf {
		s.buf[start+n] = 0
		s.sentinel = start + n
	}
}

func (s *Scanner) increment() {
	s.pos++
	if s.pos == bufferHalf {
		s.load(1)
	} else if s.pos == 2*bufferHalf {
		s.load(0)
		s.pos = 0
	}
}

// Next returns the next character and appends it to the pending lexeme.
// Past the end of input it keeps returning NUL.
func (s *Scanner) Next() byte {
	if s.pos == s.sentinel {
		s.pastEnd++
		s.lexeme = append(s.lexeme, 0)
		return 0
	}

	c := s.buf[s.pos]
	s.increment()
	s.lexeme = append(s.lexeme, c)

	return c
}

// Decrement un-reads exactly one character.
func (s *Scanner) Decrement() {
	if len(s.lexeme) == 0 {
		return
	}
	s.lexeme = s.lexeme[:len(s.lexeme)-1]

	if s.pastEnd > 0 {
		s.pastEnd--
		return
	}

	if s.pos > 0 {
		s.pos--
	} else {
		s.pos = 2*bufferHalf - 1
	}
}

// Reset rewinds to the last confirmed mark and discards the pending lexeme.
func (s *Scanner) Reset() {
	s.pos = s.mark
	s.pastEnd = 0
	s.lexeme = s.lexeme[:0]
}

// Confirm moves the mark to the cursor and clears the pending lexeme.
func (s *Scanner) Confirm() {
	s.mark = s.pos
	s.pastEnd = 0
	s.lexeme = s.lexeme[:0]
}

func (s *Scanner) Lexeme() string {
	return string(s.lexeme)
}

// Err returns the first non-EOF read error. The scanner treats it as end of
// input.
func (s *Scanner) Err() error {
	return s.err
}
