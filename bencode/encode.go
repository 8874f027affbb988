package bencode

import (
	"bytes"
	"strconv"
)

// Encode returns the canonical bencode encoding of v. Encoding is a
// total function over valid value trees: integers and byte strings
// have exactly one representation, lists keep their element order, and
// dictionary entries are written sorted ascending by raw key bytes
// regardless of the order they were decoded or inserted. Two encoders
// therefore produce byte-identical output for the same logical value,
// which is what keeps the info-hash stable.
func Encode(v *Value) []byte {
	e := &encoder{}
	e.emit(v)
	return e.buf.Bytes()
}

type encoder struct {
	buf bytes.Buffer
}

func (e *encoder) emit(v *Value) {
	switch v.kind {
	case KindInt:
		e.buf.WriteByte('i')
		e.buf.WriteString(strconv.FormatInt(v.intVal, 10))
		e.buf.WriteByte('e')

	case KindBytes:
		e.emitBytes(v.bytesVal)

	case KindList:
		e.buf.WriteByte('l')
		for _, elem := range v.listVal {
			e.emit(elem)
		}
		e.buf.WriteByte('e')

	case KindDict:
		e.buf.WriteByte('d')
		for _, entry := range sortDictEntries(v.dictVal) {
			e.emitBytes(entry.Key)
			e.emit(entry.Value)
		}
		e.buf.WriteByte('e')
	}
}

func (e *encoder) emitBytes(b []byte) {
	e.buf.WriteString(strconv.Itoa(len(b)))
	e.buf.WriteByte(':')
	e.buf.Write(b)
}

// sortDictEntries returns a copy of entries sorted ascending by raw
// key bytes. The decoded order in the tree is left untouched.
func sortDictEntries(entries []DictEntry) []DictEntry {
	if len(entries) <= 1 {
		return entries
	}

	sorted := make([]DictEntry, len(entries))
	copy(sorted, entries)

	// Insertion sort (dictionaries are small)
	for i := 1; i < len(sorted); i++ {
		j := i
		for j > 0 && bytes.Compare(sorted[j].Key, sorted[j-1].Key) < 0 {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			j--
		}
	}

	return sorted
}
