package jot

import "fmt"

type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Scanner is a cursor over an in memory buffer. It only moves forward;
// lookahead is done by peeking, never by rewinding.
type Scanner struct {
	input []byte

	Position
}

func NewScanner(input []byte) *Scanner {
	scan := Scanner{
		input: input,
	}
	scan.Line = 1
	scan.Column = 1
	return &scan
}

// Curr returns the byte under the cursor, or 0 once the input is
// exhausted. Callers check Done before relying on the result.
func (s *Scanner) Curr() byte {
	if s.Done() {
		return 0
	}
	return s.input[s.Offset]
}

// Read returns the byte under the cursor and advances past it, updating
// line and column counters.
func (s *Scanner) Read() byte {
	if s.Done() {
		return 0
	}
	char := s.input[s.Offset]
	s.Offset++
	if char == '\n' {
		s.Line++
		s.Column = 1
	} else {
		s.Column++
	}
	return char
}

func (s *Scanner) Peek() byte {
	return s.PeekAt(1)
}

// PeekAt returns the byte n positions after the cursor without consuming
// anything. Positions past the end give 0.
func (s *Scanner) PeekAt(n int) byte {
	if s.Offset+n >= len(s.input) {
		return 0
	}
	return s.input[s.Offset+n]
}

func (s *Scanner) Done() bool {
	return s.Offset >= len(s.input)
}

func (s *Scanner) skipBlank() {
	for !s.Done() && isBlank(s.Curr()) {
		s.Read()
	}
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isNumber(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHex(c byte) bool {
	return isNumber(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func isQuote(c byte) bool {
	return c == '"'
}

func isControl(c byte) bool {
	return c < 0x20
}
