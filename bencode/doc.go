// Package bencode implements the bencode serialization format used by
// BitTorrent metadata files.
//
// Bencode has four value shapes:
//
//	integer:    i42e          (no leading zeros, no -0)
//	string:     4:spam        (length-prefixed raw bytes, not guaranteed valid text)
//	list:       l4:spami42ee
//	dictionary: d3:cow3:mooe  (byte-string keys, unique)
//
// # Pipeline
//
// Data flows strictly one direction: bytes -> tokens -> value tree ->
// canonical bytes -> digest.
//
//	Lexer     scans a buffer into a flat token sequence
//	Decode    builds a Value tree by recursive descent
//	Encode    serializes a tree to its single canonical byte form
//	InfoHash  hashes the canonically encoded info dictionary
//
// All operations are pure computations over an immutable input buffer;
// each Decode call owns its own lexer and stream, so concurrent
// decodes of different buffers need no locking.
//
// # Canonical Encoding
//
// Dictionary entries are encoded sorted ascending by raw key bytes,
// independent of the order keys appeared in the input. Two encoders
// therefore produce byte-identical output for the same logical
// dictionary, which keeps the info-hash stable across implementations.
//
// # Strict Mode
//
// Decoding is strict by default: dictionary keys must be byte strings,
// and duplicate keys are always rejected. DecodeWithOptions with
// Strict false tolerates non-string keys when inspecting malformed
// files in the wild.
package bencode
