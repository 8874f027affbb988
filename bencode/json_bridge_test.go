package bencode

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// ============================================================
// JSON Bridge Tests
// ============================================================

func TestToJSON_SortedKeys(t *testing.T) {
	v := Dict(
		Entry("name", Str("x")),
		Entry("created by", Str("test")),
		Entry("length", Int(7)),
	)

	out, err := ToJSON(v)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	expected := `{"created by":"test","length":7,"name":"x"}`
	if string(out) != expected {
		t.Errorf("ToJSON = %s, expected %s", out, expected)
	}
}

func TestToJSON_Nested(t *testing.T) {
	v, err := Decode([]byte("d4:listli1ei2ee3:numi-5ee"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}

	out, err := ToJSON(v)
	if err != nil {
		t.Fatalf("ToJSON failed: %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	want := map[string]interface{}{
		"list": []interface{}{float64(1), float64(2)},
		"num":  float64(-5),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToJSON mismatch (-want +got):\n%s", diff)
	}
}

func TestToJSONValue_InvalidUTF8(t *testing.T) {
	v := Dict(DictEntry{
		Key:   []byte{'k', 0xff},
		Value: Bytes([]byte{0xff, 'a', 0xfe}),
	})

	m, ok := ToJSONValue(v).(map[string]interface{})
	if !ok {
		t.Fatal("Expected a map")
	}

	val, ok := m["k�"]
	if !ok {
		t.Fatalf("Key not replaced: %v", m)
	}
	if val != "�a�" {
		t.Errorf("Value not replaced: %q", val)
	}
}

func TestDisplayString(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected string
	}{
		{"plain ascii", []byte("ubuntu.iso"), "ubuntu.iso"},
		{"valid utf8", []byte("caf\xc3\xa9"), "café"},
		{"invalid byte", []byte{'a', 0xff, 'b'}, "a�b"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DisplayString(tt.input); got != tt.expected {
				t.Errorf("DisplayString = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestToJSONIndent(t *testing.T) {
	v := Dict(Entry("a", Int(1)))

	out, err := ToJSONIndent(v, "", "    ")
	if err != nil {
		t.Fatalf("ToJSONIndent failed: %v", err)
	}

	expected := "{\n    \"a\": 1\n}"
	if string(out) != expected {
		t.Errorf("ToJSONIndent = %q, expected %q", out, expected)
	}
}
