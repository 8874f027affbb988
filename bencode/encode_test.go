package bencode

import (
	"testing"
)

// ============================================================
// Canonical Encoder Tests
// ============================================================

func TestEncode_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		value    *Value
		expected string
	}{
		{"zero", Int(0), "i0e"},
		{"positive", Int(42), "i42e"},
		{"negative", Int(-42), "i-42e"},
		{"max int64", Int(9223372036854775807), "i9223372036854775807e"},
		{"min int64", Int(-9223372036854775808), "i-9223372036854775808e"},
		{"string", Str("spam"), "4:spam"},
		{"empty string", Str(""), "0:"},
		{"binary", Bytes([]byte{0x00, 0x01}), "2:\x00\x01"},
		{"empty list", List(), "le"},
		{"empty dict", Dict(), "de"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Encode(tt.value)
			if string(got) != tt.expected {
				t.Errorf("Encode = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestEncode_ListKeepsOrder(t *testing.T) {
	v := List(Str("b"), Str("a"), Int(3))
	if got := Encode(v); string(got) != "l1:b1:ai3ee" {
		t.Errorf("Encode = %q", got)
	}
}

func TestEncode_CanonicalKeyOrder(t *testing.T) {
	// Inserted b, a, aa; canonical output orders them a, aa, b by raw
	// byte comparison, not insertion order and not length.
	v := Dict(
		Entry("b", Int(1)),
		Entry("a", Int(2)),
		Entry("aa", Int(3)),
	)

	expected := "d1:ai2e2:aai3e1:bi1ee"
	if got := Encode(v); string(got) != expected {
		t.Errorf("Encode = %q, expected %q", got, expected)
	}

	// The tree itself keeps insertion order.
	entries, _ := v.AsDict()
	if string(entries[0].Key) != "b" {
		t.Error("Encode must not reorder the tree in place")
	}
}

func TestEncode_RawByteKeyOrder(t *testing.T) {
	// Keys compare as raw bytes: 0xff sorts after any ASCII key even
	// though it is not valid text.
	v := Dict(
		DictEntry{Key: []byte{0xff}, Value: Int(1)},
		DictEntry{Key: []byte("z"), Value: Int(2)},
	)

	expected := "d1:zi2e1:\xffi1ee"
	if got := Encode(v); string(got) != expected {
		t.Errorf("Encode = %q, expected %q", got, expected)
	}
}

func TestEncode_NormalizesDecodedOrder(t *testing.T) {
	// Decoding preserves wire order; encoding restores canonical order.
	v, err := Decode([]byte("d1:bi1e1:ai2ee"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	if got := Encode(v); string(got) != "d1:ai2e1:bi1ee" {
		t.Errorf("Encode = %q", got)
	}
}

func TestEncode_Nested(t *testing.T) {
	v := Dict(
		Entry("info", Dict(
			Entry("name", Str("x")),
			Entry("length", Int(0)),
		)),
		Entry("announce", Str("http://t.example/announce")),
	)

	expected := "d8:announce25:http://t.example/announce4:infod6:lengthi0e4:name1:xee"
	if got := Encode(v); string(got) != expected {
		t.Errorf("Encode = %q, expected %q", got, expected)
	}
}
