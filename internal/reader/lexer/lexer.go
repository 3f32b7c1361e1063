// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the mel language.
//
// The lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mel-lang/mel/internal/common/struct/loc"
	"github.com/mel-lang/mel/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes  string   // Buffer being scanned.
	first  int      // Index of the current token's first byte.
	index  int      // Index of the current byte.
	queue  []string // Buffers waiting to be scanned.
	runes  int      // Runes scanned on the current line.
	state  action   // Current action.
	tokens []*token.T

	source loc.T
}

type lexer = T

type action func(*lexer) action

const eof = -1

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *lexer {
	l := &lexer{
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipSpace

	return l
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *lexer) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text returns the text corresponding to the current token.
func (l *lexer) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
// A nil token means the lexer needs more input, not that scanning failed:
// a symbol interrupted by the end of a buffer resumes when the rest of it
// is scanned.
func (l *lexer) Token() *token.T {
	for {
		if len(l.tokens) > 0 {
			t := l.tokens[0]
			l.tokens = l.tokens[1:]

			return t
		}

		l.gather()

		state := l.state(l)
		if state != nil {
			l.state = state

			continue
		}

		// Out of input. Queued tokens, if any, drain first.
		if len(l.tokens) == 0 {
			return nil
		}
	}
}

func (l *lexer) accept(r rune, w int) {
	if r == '\n' {
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *lexer) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *lexer) gather() {
	if len(l.queue) == 0 {
		return
	}

	length := len(l.bytes)
	bytes := strings.Join(l.queue, "")

	if length > 0 && l.first < length {
		// Prepend leftover to new bytes.
		bytes = l.bytes[l.first:] + bytes
	} else {
		l.source.Char = 1
		l.runes = 1
	}

	l.queue = nil
	l.bytes = bytes
	l.index -= l.first
	l.first = 0
}

func (l *lexer) next() rune {
	r, w := l.peek()
	l.accept(r, w)

	return r
}

func (l *lexer) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *lexer) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// Lexer states.

// delimiter returns true for runes that end a symbol or number.
// Everything else, multi-byte scripts and emoji included, is an
// ordinary atom rune.
func delimiter(r rune) bool {
	switch r {
	case '(', ')', '"', ';':
		return true
	}

	return unicode.IsSpace(r)
}

func scanAtom(l *lexer) action {
	for {
		r, _ := l.peek()

		switch {
		case r == eof:
			// An atom can span buffers. Wait for the rest.
			return nil
		case delimiter(r):
			l.emit(token.Atom, l.Text())

			return skipSpace
		}

		l.next()
	}
}

func scanComment(l *lexer) action {
	for {
		r, _ := l.peek()

		switch r {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			return skipSpace
		}

		l.next()
	}
}

// scanEscape consumes the character after a backslash. It is a state of
// its own so that an escape sequence interrupted by the end of a buffer
// resumes without mistaking the escaped character for a delimiter.
func scanEscape(l *lexer) action {
	r, _ := l.peek()
	if r == eof {
		return nil
	}

	l.next()

	return scanString
}

func scanString(l *lexer) action {
	for {
		r, _ := l.peek()

		switch r {
		case eof:
			// A string can span buffers. Wait for the rest.
			return nil
		case '\\':
			l.next()

			return scanEscape
		case '"':
			l.next()

			text := l.Text()
			l.emit(token.String, text[1:len(text)-1])

			return skipSpace
		default:
			l.next()
		}
	}
}

func skipSpace(l *lexer) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			l.skip()

			return nil
		case r == '(', r == ')':
			l.accept(r, w)
			l.emit(token.Class(r), l.Text())
		case r == '"':
			l.accept(r, w)

			return scanString
		case r == ';':
			l.accept(r, w)

			return scanComment
		case unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()
		default:
			return scanAtom
		}
	}
}
