// Package lexer implements the longest-match, priority-tie-break
// scanner that drives a compiled DFA over an input byte stream.
package lexer

import "fmt"

// Token is a single lexical token produced by Scan: the winning token
// type's name, the matched lexeme, and its 1-based line/column plus
// 0-based byte offset in the input.
type Token struct {
	Type   string
	Lexeme string
	Line   int
	Column int
	Offset int
}

// LexicalError reports a byte Scan could not extend any token match
// from. It is a plain value, not wrapped with pkg/errors: it is an
// expected outcome of scanning untrusted input, not an exceptional
// failure of the generator itself.
type LexicalError struct {
	Line   int
	Column int
	Offset int
	Byte   byte
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at line %d, column %d: unexpected byte %q", e.Line, e.Column, e.Byte)
}
