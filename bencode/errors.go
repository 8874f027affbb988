package bencode

import "fmt"

// SyntaxError reports a malformed byte stream: a bad integer literal,
// a truncated string payload, an unexpected byte, or trailing data
// after the top-level value.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bencode: %s at byte %d", e.Msg, e.Offset)
}

// StructuralError reports a well-formed token in a position the
// grammar does not allow, such as an unterminated integer or a stray
// end marker.
type StructuralError struct {
	Msg    string
	Offset int
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("bencode: %s at byte %d", e.Msg, e.Offset)
}

// DuplicateKeyError reports a dictionary key that appeared more than
// once within the same dictionary.
type DuplicateKeyError struct {
	Key    []byte
	Offset int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("bencode: duplicate key %q at byte %d", e.Key, e.Offset)
}

// KeyTypeError reports a dictionary key that is not a byte string.
// Only raised in strict mode.
type KeyTypeError struct {
	Kind   Kind
	Offset int
}

func (e *KeyTypeError) Error() string {
	return fmt.Sprintf("bencode: dictionary key must be a byte string, got %s at byte %d", e.Kind, e.Offset)
}

// MissingInfoError reports a torrent whose top-level dictionary has no
// info dictionary. The byte stream itself is well formed; the torrent
// is semantically invalid.
type MissingInfoError struct{}

func (e *MissingInfoError) Error() string {
	return "bencode: no info dictionary found"
}
