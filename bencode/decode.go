package bencode

import (
	"fmt"
	"strconv"
)

// DecodeOptions configures the decoder behavior.
type DecodeOptions struct {
	// Strict rejects dictionaries whose keys are not byte strings.
	// Duplicate keys are rejected in both modes.
	Strict bool
}

// DefaultDecodeOptions returns the default (strict) options.
func DefaultDecodeOptions() DecodeOptions {
	return DecodeOptions{Strict: true}
}

// Decode parses exactly one bencode value from data in strict mode and
// verifies that no input remains after it.
func Decode(data []byte) (*Value, error) {
	return DecodeWithOptions(data, DefaultDecodeOptions())
}

// DecodeWithOptions parses exactly one bencode value with options.
// On failure no partial tree is returned.
func DecodeWithOptions(data []byte, opts DecodeOptions) (*Value, error) {
	lexer := NewLexer(data)
	tokens, err := lexer.Tokenize()
	if err != nil {
		return nil, err
	}

	d := &decoder{stream: NewTokenStream(tokens), strict: opts.Strict}

	value, err := d.decodeValue()
	if err != nil {
		return nil, err
	}

	if tok := d.stream.Peek(); tok.Type != TokenEOF {
		return nil, &SyntaxError{Msg: "trailing data after complete value", Offset: tok.Off}
	}
	return value, nil
}

// decoder consumes a token stream by recursive descent. It is a
// single forward pass: no token is buffered beyond the current
// recursion frame and there is no backtracking.
type decoder struct {
	stream *TokenStream
	strict bool
}

// decodeValue decodes the next complete value from the stream.
func (d *decoder) decodeValue() (*Value, error) {
	tok := d.stream.Peek()

	switch tok.Type {
	case TokenIntOpen:
		return d.decodeInt()
	case TokenStrOpen:
		return d.decodeString()
	case TokenListOpen:
		return d.decodeList()
	case TokenDictOpen:
		return d.decodeDict()
	case TokenEOF:
		return nil, &StructuralError{Msg: "unexpected end of input", Offset: tok.Off}
	default:
		return nil, &StructuralError{Msg: fmt.Sprintf("unexpected token %s", tok.Type), Offset: tok.Off}
	}
}

func (d *decoder) decodeInt() (*Value, error) {
	open := d.stream.Advance()

	digits, err := d.stream.Expect(TokenDigits)
	if err != nil {
		return nil, err
	}
	n, err := strconv.ParseInt(string(digits.Raw), 10, 64)
	if err != nil {
		return nil, &SyntaxError{
			Msg:    fmt.Sprintf("integer literal %q out of range", digits.Raw),
			Offset: digits.Off,
		}
	}
	if _, err := d.stream.Expect(TokenEnd); err != nil {
		return nil, &StructuralError{Msg: "unterminated integer", Offset: open.Off}
	}

	v := Int(n)
	v.off = open.Off
	return v, nil
}

func (d *decoder) decodeString() (*Value, error) {
	open := d.stream.Advance()

	payload, err := d.stream.Expect(TokenPayload)
	if err != nil {
		return nil, err
	}

	// Copy out of the source buffer so the returned tree does not
	// alias caller memory.
	v := Bytes(append([]byte(nil), payload.Raw...))
	v.off = open.Off
	return v, nil
}

func (d *decoder) decodeList() (*Value, error) {
	open := d.stream.Advance()

	var elems []*Value
	for {
		tok := d.stream.Peek()
		if tok.Type == TokenEnd {
			d.stream.Advance()
			break
		}
		if tok.Type == TokenEOF {
			return nil, &StructuralError{Msg: "unterminated list", Offset: open.Off}
		}

		elem, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	v := List(elems...)
	v.off = open.Off
	return v, nil
}

func (d *decoder) decodeDict() (*Value, error) {
	open := d.stream.Advance()

	var entries []DictEntry
	seen := make(map[string]struct{})
	for {
		tok := d.stream.Peek()
		if tok.Type == TokenEnd {
			d.stream.Advance()
			break
		}
		if tok.Type == TokenEOF {
			return nil, &StructuralError{Msg: "unterminated dictionary", Offset: open.Off}
		}

		keyOff := tok.Off
		key, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		raw, err := key.AsBytes()
		if err != nil {
			if d.strict {
				return nil, &KeyTypeError{Kind: key.Kind(), Offset: keyOff}
			}
			// Tolerant mode: the canonical encoding of the key
			// stands in for its raw bytes.
			raw = Encode(key)
		}
		if _, dup := seen[string(raw)]; dup {
			return nil, &DuplicateKeyError{Key: raw, Offset: keyOff}
		}
		seen[string(raw)] = struct{}{}

		value, err := d.decodeValue()
		if err != nil {
			return nil, err
		}
		entries = append(entries, DictEntry{Key: raw, Value: value})
	}

	v := Dict(entries...)
	v.off = open.Off
	return v, nil
}
