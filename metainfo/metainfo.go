// Package metainfo provides a typed view over decoded torrent
// metadata: announce URL, content name, piece layout and file list,
// plus the computed info-hash.
package metainfo

import (
	"encoding/hex"
	"fmt"

	"github.com/torrentkit/bencode/bencode"
)

// PieceSize is the length of one SHA-1 piece digest in the pieces blob.
const PieceSize = 20

// File describes one file of a multi-file torrent. Path segments are
// display text (UTF-8 with replacement).
type File struct {
	Length int64
	Path   []string
}

// MetaInfo is the typed view of a torrent's metadata. Optional fields
// are zero when absent from the source dictionary.
type MetaInfo struct {
	Announce     string
	Name         string
	PieceLength  int64
	Length       int64 // single-file torrents only
	Pieces       [][PieceSize]byte
	Files        []File // multi-file torrents only
	Comment      string
	CreatedBy    string
	CreationDate int64
	Encoding     string

	InfoHash    [20]byte
	InfoHashHex string
}

// Parse decodes a .torrent buffer and builds its typed view.
func Parse(data []byte) (*MetaInfo, error) {
	v, err := bencode.Decode(data)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}

// FromValue builds the typed view from an already decoded tree. The
// tree must be a dictionary with an info dictionary, otherwise
// bencode.MissingInfoError is returned.
func FromValue(v *bencode.Value) (*MetaInfo, error) {
	sum, err := bencode.InfoHashSum(v)
	if err != nil {
		return nil, err
	}
	info := v.GetStr("info")

	m := &MetaInfo{
		Announce:     optStr(v, "announce"),
		Comment:      optStr(v, "comment"),
		CreatedBy:    optStr(v, "created by"),
		CreationDate: optInt(v, "creation date"),
		Encoding:     optStr(v, "encoding"),

		Name:        utf8Str(info, "name"),
		PieceLength: optInt(info, "piece length"),
		Length:      optInt(info, "length"),

		InfoHash:    sum,
		InfoHashHex: hex.EncodeToString(sum[:]),
	}

	if pieces := info.GetStr("pieces"); pieces != nil {
		blob, err := pieces.AsBytes()
		if err != nil {
			return nil, fmt.Errorf("metainfo: pieces is not a byte string: %w", err)
		}
		m.Pieces, err = splitPieces(blob)
		if err != nil {
			return nil, err
		}
	}

	m.Files, err = parseFiles(info)
	if err != nil {
		return nil, err
	}

	return m, nil
}

// TotalLength returns the content size: the single-file length, or
// the sum of the file lengths for multi-file torrents.
func (m *MetaInfo) TotalLength() int64 {
	if len(m.Files) == 0 {
		return m.Length
	}
	var total int64
	for _, f := range m.Files {
		total += f.Length
	}
	return total
}

func splitPieces(blob []byte) ([][PieceSize]byte, error) {
	if len(blob)%PieceSize != 0 {
		return nil, fmt.Errorf("metainfo: pieces blob of %d bytes is not a multiple of %d", len(blob), PieceSize)
	}
	pieces := make([][PieceSize]byte, len(blob)/PieceSize)
	for i := range pieces {
		copy(pieces[i][:], blob[i*PieceSize:(i+1)*PieceSize])
	}
	return pieces, nil
}

func parseFiles(info *bencode.Value) ([]File, error) {
	list := info.GetStr("files")
	if list == nil {
		return nil, nil
	}
	elems, err := list.AsList()
	if err != nil {
		return nil, fmt.Errorf("metainfo: files is not a list: %w", err)
	}

	files := make([]File, 0, len(elems))
	for i, elem := range elems {
		if elem.Kind() != bencode.KindDict {
			return nil, fmt.Errorf("metainfo: files[%d] is not a dictionary", i)
		}
		f := File{Length: optInt(elem, "length")}

		pathVal := elem.GetStr("path.utf-8")
		if pathVal == nil {
			pathVal = elem.GetStr("path")
		}
		if pathVal != nil {
			segs, err := pathVal.AsList()
			if err != nil {
				return nil, fmt.Errorf("metainfo: files[%d] path is not a list: %w", i, err)
			}
			for _, seg := range segs {
				b, err := seg.AsBytes()
				if err != nil {
					return nil, fmt.Errorf("metainfo: files[%d] path segment: %w", i, err)
				}
				f.Path = append(f.Path, bencode.DisplayString(b))
			}
		}
		files = append(files, f)
	}
	return files, nil
}

func optStr(d *bencode.Value, key string) string {
	if f := d.GetStr(key); f != nil {
		if b, err := f.AsBytes(); err == nil {
			return bencode.DisplayString(b)
		}
	}
	return ""
}

func optInt(d *bencode.Value, key string) int64 {
	if f := d.GetStr(key); f != nil {
		if n, err := f.AsInt(); err == nil {
			return n
		}
	}
	return 0
}

// utf8Str prefers the "<key>.utf-8" variant over "<key>", matching the
// convention of clients that ship both spellings.
func utf8Str(d *bencode.Value, key string) string {
	if s := optStr(d, key+".utf-8"); s != "" {
		return s
	}
	return optStr(d, key)
}
