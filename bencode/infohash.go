package bencode

import (
	"crypto/sha1"
	"encoding/hex"
)

var infoKey = []byte("info")

// InfoHashSum canonically encodes the info dictionary of torrent and
// returns its SHA-1 digest. This digest is the torrent's
// protocol-level identity: any deviation in canonical encoding would
// silently change it, so Encode is the single source of the hashed
// bytes.
//
// torrent must be a dictionary containing an "info" key whose value is
// itself a dictionary; otherwise MissingInfoError is returned.
func InfoHashSum(torrent *Value) ([20]byte, error) {
	var sum [20]byte
	if torrent == nil || torrent.Kind() != KindDict {
		return sum, &MissingInfoError{}
	}
	info := torrent.Get(infoKey)
	if info == nil || info.Kind() != KindDict {
		return sum, &MissingInfoError{}
	}
	return sha1.Sum(Encode(info)), nil
}

// InfoHash returns the info-hash as a lowercase hex string.
func InfoHash(torrent *Value) (string, error) {
	sum, err := InfoHashSum(torrent)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum[:]), nil
}
