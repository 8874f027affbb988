package bencode

import (
	"bytes"
	"fmt"
	"strconv"
)

// TokenType represents the type of a lexer token.
type TokenType uint8

const (
	TokenEOF TokenType = iota

	TokenIntOpen  // i
	TokenDigits   // digit run of an integer literal
	TokenStrOpen  // length prefix of a byte string
	TokenPayload  // raw byte-string payload
	TokenListOpen // l
	TokenDictOpen // d
	TokenEnd      // e
)

// String returns the token type name.
func (t TokenType) String() string {
	switch t {
	case TokenEOF:
		return "EOF"
	case TokenIntOpen:
		return "INT"
	case TokenDigits:
		return "DIGITS"
	case TokenStrOpen:
		return "STR"
	case TokenPayload:
		return "PAYLOAD"
	case TokenListOpen:
		return "LIST"
	case TokenDictOpen:
		return "DICT"
	case TokenEnd:
		return "END"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexer token. Raw is a subslice of the source
// buffer for TokenDigits, TokenStrOpen and TokenPayload, nil for the
// structural tokens.
type Token struct {
	Type TokenType
	Raw  []byte
	Off  int // byte offset in the source buffer
}

// String returns a debug representation of the token.
func (t Token) String() string {
	if t.Raw == nil {
		return t.Type.String()
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Raw)
}

// Lexer tokenizes a bencode buffer in a single forward pass. It is a
// pure view over the input: payload bytes are referenced, never
// copied. A Lexer is single-use; create one per buffer.
type Lexer struct {
	input  []byte
	pos    int
	tokens []Token
}

// NewLexer creates a new lexer for the given buffer.
func NewLexer(input []byte) *Lexer {
	return &Lexer{input: input}
}

// Tokenize returns all tokens from the input, ending with TokenEOF.
func (l *Lexer) Tokenize() ([]Token, error) {
	for l.pos < len(l.input) {
		if err := l.scan(); err != nil {
			return nil, err
		}
	}
	l.emit(TokenEOF, nil, l.pos)
	return l.tokens, nil
}

func (l *Lexer) scan() error {
	off := l.pos
	switch ch := l.input[l.pos]; {
	case ch == 'i':
		return l.scanInteger()
	case ch == 'l':
		l.emit(TokenListOpen, nil, off)
		l.pos++
	case ch == 'd':
		l.emit(TokenDictOpen, nil, off)
		l.pos++
	case ch == 'e':
		l.emit(TokenEnd, nil, off)
		l.pos++
	case isDigit(ch):
		return l.scanString()
	default:
		return &SyntaxError{Msg: fmt.Sprintf("unexpected byte %q", ch), Offset: off}
	}
	return nil
}

// scanInteger scans i<digits>e into three tokens.
func (l *Lexer) scanInteger() error {
	off := l.pos
	end := bytes.IndexByte(l.input[l.pos+1:], 'e')
	if end < 0 {
		return &SyntaxError{Msg: "unterminated integer literal", Offset: off}
	}
	end += l.pos + 1

	digits := l.input[l.pos+1 : end]
	if !validIntLiteral(digits) {
		return &SyntaxError{Msg: fmt.Sprintf("invalid integer literal %q", digits), Offset: off + 1}
	}

	l.emit(TokenIntOpen, nil, off)
	l.emit(TokenDigits, digits, off+1)
	l.emit(TokenEnd, nil, end)
	l.pos = end + 1
	return nil
}

// scanString scans <digits>:<payload> into two tokens.
func (l *Lexer) scanString() error {
	off := l.pos

	i := l.pos
	for i < len(l.input) && isDigit(l.input[i]) {
		i++
	}
	prefix := l.input[l.pos:i]
	if i >= len(l.input) || l.input[i] != ':' {
		return &SyntaxError{Msg: fmt.Sprintf("invalid string length prefix %q", prefix), Offset: off}
	}

	length, err := strconv.Atoi(string(prefix))
	if err != nil {
		return &SyntaxError{Msg: fmt.Sprintf("invalid string length prefix %q", prefix), Offset: off}
	}

	start := i + 1
	end := start + length
	if end > len(l.input) {
		return &SyntaxError{Msg: "truncated string payload", Offset: off}
	}

	l.emit(TokenStrOpen, prefix, off)
	l.emit(TokenPayload, l.input[start:end], start)
	l.pos = end
	return nil
}

func (l *Lexer) emit(typ TokenType, raw []byte, off int) {
	l.tokens = append(l.tokens, Token{Type: typ, Raw: raw, Off: off})
}

// validIntLiteral checks a digit run between i and e: non-empty, an
// optional leading minus followed by digits only, no leading zeros
// unless the run is exactly "0", and no negative zero.
func validIntLiteral(d []byte) bool {
	s := d
	if len(s) > 0 && s[0] == '-' {
		s = s[1:]
	}
	if len(s) == 0 {
		return false
	}
	for _, ch := range s {
		if !isDigit(ch) {
			return false
		}
	}
	if s[0] == '0' && (len(s) > 1 || len(s) != len(d)) {
		return false
	}
	return true
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// TokenStream provides a forward-only cursor over tokens. End of
// stream is an ordinary TokenEOF value, not an error; errors are
// reserved for genuinely malformed input.
type TokenStream struct {
	tokens []Token
	pos    int
}

// NewTokenStream creates a token stream from tokens.
func NewTokenStream(tokens []Token) *TokenStream {
	return &TokenStream{tokens: tokens}
}

// Peek returns the current token without advancing.
func (ts *TokenStream) Peek() Token {
	if ts.pos >= len(ts.tokens) {
		return Token{Type: TokenEOF}
	}
	return ts.tokens[ts.pos]
}

// Advance moves to the next token and returns the current one.
func (ts *TokenStream) Advance() Token {
	tok := ts.Peek()
	if ts.pos < len(ts.tokens) {
		ts.pos++
	}
	return tok
}

// Expect advances if the current token matches, otherwise returns a
// StructuralError.
func (ts *TokenStream) Expect(typ TokenType) (Token, error) {
	tok := ts.Peek()
	if tok.Type != typ {
		return tok, &StructuralError{
			Msg:    fmt.Sprintf("expected %s, got %s", typ, tok.Type),
			Offset: tok.Off,
		}
	}
	ts.Advance()
	return tok, nil
}

// Match returns true and advances if the current token matches.
func (ts *TokenStream) Match(typ TokenType) bool {
	if ts.Peek().Type == typ {
		ts.Advance()
		return true
	}
	return false
}

// AtEnd returns true if at end of stream.
func (ts *TokenStream) AtEnd() bool {
	return ts.Peek().Type == TokenEOF
}
