// bendec - inspect BitTorrent metadata files
//
// Usage:
//
//	bendec [-j] path...
//
// Paths must end in .torrent or .added and be regular files; anything
// else is skipped with a notice. The default mode prints a
// human-readable report of the decoded metadata (the pieces blob is
// elided). With -j the torrent is dumped as indented JSON with the
// computed info_hash added.
//
// An error on one file is logged and processing continues with the
// remaining files; the process exits nonzero if any file failed.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/torrentkit/bencode/bencode"
	"github.com/torrentkit/bencode/metainfo"
)

func main() {
	jsonMode := false
	var paths []string

	for _, arg := range os.Args[1:] {
		switch arg {
		case "-j", "--json":
			jsonMode = true
		case "-h", "--help":
			printUsage()
			return
		default:
			if strings.HasPrefix(arg, "-") {
				fmt.Fprintf(os.Stderr, "unknown flag: %s\n", arg)
				printUsage()
				os.Exit(1)
			}
			paths = append(paths, arg)
		}
	}

	if len(paths) == 0 {
		printUsage()
		os.Exit(1)
	}

	failed := 0
	for _, path := range paths {
		if !isTorrentPath(path) {
			fmt.Printf("Skipping invalid file: %s\n", path)
			continue
		}
		if err := inspect(path, jsonMode); err != nil {
			log.WithField("file", filepath.Base(path)).Error(err)
			failed++
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `bendec - inspect BitTorrent metadata files

Usage:
  bendec [-j] path...

Options:
  -j, --json    Print the decoded torrent as JSON (info_hash included)

Only regular files ending in .torrent or .added are processed.

Examples:
  bendec ubuntu-24.04-live-server-amd64.iso.torrent
  bendec -j downloads/*.torrent
`)
}

// isTorrentPath filters by suffix and regular-file check before any
// bytes are read.
func isTorrentPath(path string) bool {
	switch filepath.Ext(path) {
	case ".torrent", ".added":
	default:
		return false
	}
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

func inspect(path string, jsonMode bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	torrent, err := bencode.Decode(data)
	if err != nil {
		return err
	}
	meta, err := metainfo.FromValue(torrent)
	if err != nil {
		return err
	}

	if jsonMode {
		return printJSON(torrent, meta)
	}
	printReport(path, torrent, meta)
	return nil
}

// printJSON mirrors the whole decoded tree plus the info_hash member,
// keys sorted.
func printJSON(torrent *bencode.Value, meta *metainfo.MetaInfo) error {
	obj, ok := bencode.ToJSONValue(torrent).(map[string]interface{})
	if !ok {
		return fmt.Errorf("top-level value is not a dictionary")
	}
	obj["info_hash"] = meta.InfoHashHex

	out, err := json.MarshalIndent(obj, "", "    ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// printReport renders the right-aligned table report.
func printReport(path string, torrent *bencode.Value, meta *metainfo.MetaInfo) {
	fmt.Printf("%15s : %s\n", "torrent file", path)

	entries, _ := torrent.AsDict()
	for _, e := range entries {
		key := bencode.DisplayString(e.Key)
		if e.Value.Kind() == bencode.KindDict {
			fmt.Printf("%15s : \n", key)
			printInnerDict(e.Value, meta)
			continue
		}
		fmt.Printf("%15s : %s\n", key, displayValue(e.Value))
	}

	fmt.Printf("%15s : %s\n", "info_hash", meta.InfoHashHex)
}

func printInnerDict(d *bencode.Value, meta *metainfo.MetaInfo) {
	entries, _ := d.AsDict()
	for _, e := range entries {
		key := bencode.DisplayString(e.Key)
		switch {
		case key == "pieces" && e.Value.Kind() == bencode.KindBytes:
			b, _ := e.Value.AsBytes()
			fmt.Printf("%25s : SKIPPING (%d bytes of piece digests)\n", key, len(b))
		case key == "files" && e.Value.Kind() == bencode.KindList:
			fmt.Printf("%25s : \n", key)
			printFiles(meta.Files)
		default:
			fmt.Printf("%25s : %s\n", key, displayValue(e.Value))
		}
	}
}

func printFiles(files []metainfo.File) {
	for _, f := range files {
		fmt.Printf("%35d   %s\n", f.Length, strings.Join(f.Path, "/"))
	}
}

// displayValue renders a value for the table: byte strings as display
// text, containers inline.
func displayValue(v *bencode.Value) string {
	switch v.Kind() {
	case bencode.KindInt:
		n, _ := v.AsInt()
		return strconv.FormatInt(n, 10)
	case bencode.KindBytes:
		b, _ := v.AsBytes()
		return bencode.DisplayString(b)
	case bencode.KindList:
		elems, _ := v.AsList()
		parts := make([]string, len(elems))
		for i, elem := range elems {
			parts[i] = displayValue(elem)
		}
		return "[" + strings.Join(parts, " ") + "]"
	case bencode.KindDict:
		entries, _ := v.AsDict()
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = bencode.DisplayString(e.Key) + "=" + displayValue(e.Value)
		}
		return "{" + strings.Join(parts, " ") + "}"
	}
	return ""
}
