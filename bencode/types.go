package bencode

import (
	"bytes"
	"fmt"
)

// Kind represents the variant of a Value.
type Kind uint8

const (
	KindInt Kind = iota
	KindBytes
	KindList
	KindDict
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindBytes:
		return "bytes"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Value represents a bencode value: a tagged union over the four
// variants of the format. A decoded tree is an immutable snapshot
// owned by the caller; nested values are owned by their parent
// container, and the tree has no cycles.
type Value struct {
	kind Kind

	// Only the field matching kind is valid.
	intVal   int64
	bytesVal []byte
	listVal  []*Value
	dictVal  []DictEntry

	// Source offset for error reporting, set by the decoder.
	off int
}

// DictEntry represents a key-value pair in a dictionary. Keys are raw
// byte sequences, never decoded text; decoded order is preserved.
type DictEntry struct {
	Key   []byte
	Value *Value
}

// ============================================================
// Constructors
// ============================================================

// Int creates an integer value.
func Int(v int64) *Value {
	return &Value{kind: KindInt, intVal: v}
}

// Bytes creates a byte-string value.
func Bytes(b []byte) *Value {
	return &Value{kind: KindBytes, bytesVal: b}
}

// Str creates a byte-string value from text.
func Str(s string) *Value {
	return &Value{kind: KindBytes, bytesVal: []byte(s)}
}

// List creates a list value.
func List(elems ...*Value) *Value {
	return &Value{kind: KindList, listVal: elems}
}

// Dict creates a dictionary value from entries in the given order.
func Dict(entries ...DictEntry) *Value {
	return &Value{kind: KindDict, dictVal: entries}
}

// Entry creates a DictEntry for use in Dict construction.
func Entry(key string, value *Value) DictEntry {
	return DictEntry{Key: []byte(key), Value: value}
}

// ============================================================
// Accessors
// ============================================================

// Kind returns the value variant.
func (v *Value) Kind() Kind {
	return v.kind
}

// AsInt returns the integer value.
func (v *Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, fmt.Errorf("bencode: expected int, got %s", v.kind)
	}
	return v.intVal, nil
}

// AsBytes returns the byte-string value.
func (v *Value) AsBytes() ([]byte, error) {
	if v.kind != KindBytes {
		return nil, fmt.Errorf("bencode: expected bytes, got %s", v.kind)
	}
	return v.bytesVal, nil
}

// AsList returns the list elements in order.
func (v *Value) AsList() ([]*Value, error) {
	if v.kind != KindList {
		return nil, fmt.Errorf("bencode: expected list, got %s", v.kind)
	}
	return v.listVal, nil
}

// AsDict returns the dictionary entries in decoded order.
func (v *Value) AsDict() ([]DictEntry, error) {
	if v.kind != KindDict {
		return nil, fmt.Errorf("bencode: expected dict, got %s", v.kind)
	}
	return v.dictVal, nil
}

// Len returns the length of a list or dictionary, 0 otherwise.
func (v *Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindDict:
		return len(v.dictVal)
	default:
		return 0
	}
}

// Get returns the value for a dictionary key, compared as raw bytes.
// Returns nil if v is not a dictionary or the key is absent.
func (v *Value) Get(key []byte) *Value {
	if v == nil || v.kind != KindDict {
		return nil
	}
	for _, e := range v.dictVal {
		if bytes.Equal(e.Key, key) {
			return e.Value
		}
	}
	return nil
}

// GetStr returns the value for a text dictionary key.
func (v *Value) GetStr(key string) *Value {
	return v.Get([]byte(key))
}

// Index returns the i-th element of a list.
func (v *Value) Index(i int) (*Value, error) {
	if v == nil || v.kind != KindList {
		return nil, fmt.Errorf("bencode: not a list")
	}
	if i < 0 || i >= len(v.listVal) {
		return nil, fmt.Errorf("bencode: index %d out of bounds (len=%d)", i, len(v.listVal))
	}
	return v.listVal[i], nil
}

// Off returns the byte offset of this value in the source buffer.
// Zero for values built with the constructors.
func (v *Value) Off() int {
	return v.off
}

// Equal reports structural equality. Lists compare element by element
// in order. Dictionary entries compare as unordered key-value sets:
// keys are unique within a dictionary, so logical equality is
// independent of decoded order.
func (v *Value) Equal(o *Value) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindInt:
		return v.intVal == o.intVal
	case KindBytes:
		return bytes.Equal(v.bytesVal, o.bytesVal)
	case KindList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case KindDict:
		if len(v.dictVal) != len(o.dictVal) {
			return false
		}
		for _, e := range v.dictVal {
			ov := o.Get(e.Key)
			if ov == nil || !e.Value.Equal(ov) {
				return false
			}
		}
		return true
	}
	return false
}
