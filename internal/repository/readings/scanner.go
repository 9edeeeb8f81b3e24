package readings

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/oshokin/vitals-sim/internal/domain/vitals"
)

// ErrMalformed is returned when the next record does not match "%d,%d".
var ErrMalformed = errors.New("malformed record")

// Source yields readings one at a time.
type Source interface {
	// Next returns the next reading, io.EOF at a clean end of input,
	// or an error wrapping ErrMalformed where the valid stream stops.
	Next() (vitals.Reading, error)
}

// Scanner decodes readings from any io.Reader.
type Scanner struct {
	// r buffers the underlying stream for byte-wise matching.
	r *bufio.Reader
	// line is the 1-based line of the last byte consumed.
	line int
	// digits is scratch space reused between integers.
	digits []byte
}

// NewScanner wraps r in a reading Scanner.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		r:      bufio.NewReader(r),
		line:   1,
		digits: make([]byte, 0, 16),
	}
}

// Line returns the current line number, useful when reporting where the stream stopped.
func (s *Scanner) Line() int {
	return s.line
}

// Next implements Source.
func (s *Scanner) Next() (vitals.Reading, error) {
	var reading vitals.Reading

	hr, err := s.scanInt()
	if err != nil {
		// Input exhausted between records is the normal end.
		if errors.Is(err, io.EOF) {
			return reading, io.EOF
		}

		return reading, err
	}

	if err = s.expect(','); err != nil {
		return reading, err
	}

	spo2, err := s.scanInt()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return reading, s.malformed("missing spo2")
		}

		return reading, err
	}

	reading.HeartRate = hr
	reading.SpO2 = spo2

	return reading, nil
}

// scanInt skips leading whitespace and reads an optionally signed decimal integer.
// It returns io.EOF only when the input ends before any non-space byte.
func (s *Scanner) scanInt() (int, error) {
	if err := s.skipSpace(); err != nil {
		return 0, err
	}

	s.digits = s.digits[:0]

	b, err := s.r.ReadByte()
	if err != nil {
		return 0, s.readErr(err)
	}

	if b == '+' || b == '-' {
		s.digits = append(s.digits, b)
	} else if err = s.r.UnreadByte(); err != nil {
		return 0, fmt.Errorf("unread byte: %w", err)
	}

	for {
		b, err = s.r.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return 0, s.readErr(err)
		}

		if b < '0' || b > '9' {
			if err = s.r.UnreadByte(); err != nil {
				return 0, fmt.Errorf("unread byte: %w", err)
			}

			break
		}

		s.digits = append(s.digits, b)
	}

	n, err := strconv.Atoi(string(s.digits))
	if err != nil {
		// Covers a missing digit run as well as values that overflow int.
		return 0, s.malformed(fmt.Sprintf("bad integer %q", s.digits))
	}

	return n, nil
}

// expect consumes c or reports a mismatch.
func (s *Scanner) expect(c byte) error {
	b, err := s.r.ReadByte()
	if errors.Is(err, io.EOF) {
		return s.malformed(fmt.Sprintf("expected %q, got end of input", c))
	}

	if err != nil {
		return s.readErr(err)
	}

	if b != c {
		return s.malformed(fmt.Sprintf("expected %q, got %q", c, b))
	}

	return nil
}

// skipSpace consumes the bytes C's isspace accepts.
func (s *Scanner) skipSpace() error {
	for {
		b, err := s.r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return io.EOF
			}

			return s.readErr(err)
		}

		switch b {
		case '\n':
			s.line++
		case ' ', '\t', '\r', '\v', '\f':
		default:
			return s.r.UnreadByte()
		}
	}
}

// malformed builds an ErrMalformed carrying the current line.
func (s *Scanner) malformed(reason string) error {
	return fmt.Errorf("%w at line %d: %s", ErrMalformed, s.line, reason)
}

// readErr wraps a failure of the underlying reader.
func (s *Scanner) readErr(err error) error {
	if errors.Is(err, io.EOF) {
		return s.malformed("unexpected end of input")
	}

	return fmt.Errorf("read record at line %d: %w", s.line, err)
}
