package parser

import (
	"errors"
	"fmt"
)

// Per-kind sentinels; use errors.Is to classify a parse failure.
var (
	ErrUnexpectedCharacter  = errors.New("unexpected character")
	ErrUnexpectedEOF        = errors.New("unexpected end of input")
	ErrUnknownSymbol        = errors.New("unknown symbol")
	ErrMalformedRingClosure = errors.New("malformed ring closure")
	ErrInvalidChirality     = errors.New("invalid chirality syntax")
)

// errNoMatch is the soft failure that lets ordered alternatives
// backtrack. It never escapes Parse.
var errNoMatch = errors.New("no match")

// Error describes the first point of failure of a parse. Offset is a
// byte offset into the original input string, also for failures inside
// a recursive $(...) sub-pattern.
type Error struct {
	Offset    int
	Expecting string

	err error
}

func (e *Error) Error() string {
	if e.Expecting != "" {
		return fmt.Sprintf("offset %d: %v, expecting %s", e.Offset, e.err, e.Expecting)
	}
	return fmt.Sprintf("offset %d: %v", e.Offset, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

func (p *Parser) errorAt(offset int, kind error, expecting string) error {
	return &Error{Offset: offset, Expecting: expecting, err: kind}
}

// unexpected builds the error for input that matches no alternative at
// the current position.
func (p *Parser) unexpected(expecting string) error {
	if p.eof() {
		return p.errorAt(p.pos, ErrUnexpectedEOF, expecting)
	}
	return p.errorAt(p.pos, ErrUnexpectedCharacter, expecting)
}
