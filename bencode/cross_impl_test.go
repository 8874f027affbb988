package bencode

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	bencodego "github.com/jackpal/bencode-go"
	zbencode "github.com/zeebo/bencode"
)

// ============================================================
// Cross-Implementation Tests
// ============================================================
//
// These tests verify that the canonical encoder and the decoder agree
// with two independent bencode implementations. Canonical byte
// identity across implementations is what makes the info-hash a
// stable identifier; any divergence here is a correctness bug, not a
// style difference.

// crossCases pairs a Value tree with its native Go equivalent as
// understood by the reference libraries.
var crossCases = []struct {
	name   string
	tree   *Value
	native interface{}
}{
	{"int", Int(42), int64(42)},
	{"negative int", Int(-7), int64(-7)},
	{"string", Str("spam"), "spam"},
	{"list", List(Int(1), Str("two"), Int(3)), []interface{}{int64(1), "two", int64(3)}},
	{
		"dict out of order",
		Dict(
			Entry("zebra", Int(1)),
			Entry("apple", Str("x")),
			Entry("mango", List(Int(2))),
		),
		map[string]interface{}{
			"zebra": int64(1),
			"apple": "x",
			"mango": []interface{}{int64(2)},
		},
	},
	{
		"torrent shaped",
		Dict(
			Entry("announce", Str("http://tracker.example/announce")),
			Entry("info", Dict(
				Entry("length", Int(0)),
				Entry("name", Str("x")),
				Entry("piece length", Int(16384)),
				Entry("pieces", Str("")),
			)),
		),
		map[string]interface{}{
			"announce": "http://tracker.example/announce",
			"info": map[string]interface{}{
				"length":       int64(0),
				"name":         "x",
				"piece length": int64(16384),
				"pieces":       "",
			},
		},
	},
}

func TestCrossImpl_EncodeMatchesJackpal(t *testing.T) {
	for _, tt := range crossCases {
		t.Run(tt.name, func(t *testing.T) {
			var ref bytes.Buffer
			if err := bencodego.Marshal(&ref, tt.native); err != nil {
				t.Fatalf("reference Marshal failed: %v", err)
			}

			got := Encode(tt.tree)
			if !bytes.Equal(got, ref.Bytes()) {
				t.Errorf("Encode = %q, reference = %q", got, ref.Bytes())
			}
		})
	}
}

func TestCrossImpl_EncodeMatchesZeebo(t *testing.T) {
	for _, tt := range crossCases {
		t.Run(tt.name, func(t *testing.T) {
			ref, err := zbencode.EncodeBytes(tt.native)
			if err != nil {
				t.Fatalf("reference EncodeBytes failed: %v", err)
			}

			got := Encode(tt.tree)
			if !bytes.Equal(got, ref) {
				t.Errorf("Encode = %q, reference = %q", got, ref)
			}
		})
	}
}

func TestCrossImpl_DecodeMatchesZeebo(t *testing.T) {
	inputs := []string{
		"i42e",
		"4:spam",
		"l4:spami42ee",
		"d3:cow3:moo4:spam4:eggse",
		"d1:bi1e1:ai2ee",
		"d4:infod6:lengthi0e4:name1:x12:piece lengthi16384e6:pieces0:ee",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			v, err := Decode([]byte(input))
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}

			var ref interface{}
			if err := zbencode.DecodeBytes([]byte(input), &ref); err != nil {
				t.Fatalf("reference DecodeBytes failed: %v", err)
			}

			if diff := cmp.Diff(ref, nativeTree(v)); diff != "" {
				t.Errorf("decode disagreement (-reference +ours):\n%s", diff)
			}
		})
	}
}

// nativeTree converts a Value to the interface{} shape the reference
// decoders produce: int64, string, []interface{}, map[string]interface{}.
func nativeTree(v *Value) interface{} {
	switch v.Kind() {
	case KindInt:
		n, _ := v.AsInt()
		return n
	case KindBytes:
		b, _ := v.AsBytes()
		return string(b)
	case KindList:
		elems, _ := v.AsList()
		out := make([]interface{}, len(elems))
		for i, elem := range elems {
			out[i] = nativeTree(elem)
		}
		return out
	case KindDict:
		entries, _ := v.AsDict()
		out := make(map[string]interface{}, len(entries))
		for _, e := range entries {
			out[string(e.Key)] = nativeTree(e.Value)
		}
		return out
	}
	return nil
}
