package bencode

import (
	"encoding/json"
	"strings"
)

// ============================================================
// JSON Bridge
// ============================================================
//
// Converts a decoded value tree to JSON for export. Byte strings are
// not guaranteed to be valid text, so both values and dictionary keys
// are converted to UTF-8 with invalid sequences replaced by U+FFFD.
// The conversion is for display and interchange only; it is lossy and
// never fed back into the encoder.

// DisplayString converts raw bytes to display text, replacing invalid
// UTF-8 sequences with the replacement character.
func DisplayString(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}

// ToJSONValue converts a value tree to the shape used by
// encoding/json: int64, string, []interface{}, map[string]interface{}.
func ToJSONValue(v *Value) interface{} {
	if v == nil {
		return nil
	}
	switch v.kind {
	case KindInt:
		return v.intVal
	case KindBytes:
		return DisplayString(v.bytesVal)
	case KindList:
		items := make([]interface{}, len(v.listVal))
		for i, elem := range v.listVal {
			items[i] = ToJSONValue(elem)
		}
		return items
	case KindDict:
		m := make(map[string]interface{}, len(v.dictVal))
		for _, entry := range v.dictVal {
			m[DisplayString(entry.Key)] = ToJSONValue(entry.Value)
		}
		return m
	}
	return nil
}

// ToJSON converts a value tree to compact JSON. Object keys are
// emitted in sorted order.
func ToJSON(v *Value) ([]byte, error) {
	return json.Marshal(ToJSONValue(v))
}

// ToJSONIndent converts a value tree to indented JSON.
func ToJSONIndent(v *Value, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(ToJSONValue(v), prefix, indent)
}
