// Package format provides input format detection for the pyne library.
package format

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/hearic/pyne/core"
)

// Format represents a recognized input format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// Tape indicates an ENDF tape, a deck of 80-column card images.
	Tape
	// JSON indicates a JSON document, typically an exported evaluation.
	JSON
	// Msgpack indicates a MessagePack document, typically an exported
	// evaluation.
	Msgpack
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case Tape:
		return "ENDF"
	case JSON:
		return "JSON"
	case Msgpack:
		return "MSGPACK"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case Tape:
		return ".endf"
	case JSON:
		return ".json"
	case Msgpack:
		return ".msgpack"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".endf", ".endf6", ".pendf":
		return Tape
	case ".json":
		return JSON
	case ".msgpack":
		return Msgpack
	default:
		return Unknown
	}
}

// Sniff inspects leading content bytes to determine format. This is more
// reliable than extension-based detection; tapes in the wild carry .txt and
// .dat extensions. Returns Unknown if the content matches nothing.
func Sniff(data []byte) Format {
	if sniffTape(data) {
		return Tape
	}

	// JSON: first non-whitespace byte opens an object or array.
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return JSON
	}

	// MessagePack: exported evaluations encode as a map, so the stream
	// leads with a map header.
	if len(data) > 0 && (data[0]&0xf0 == 0x80 || data[0] == 0xde || data[0] == 0xdf) {
		return Msgpack
	}

	return Unknown
}

// SniffReader reads leading bytes from r and detects their format. The
// bytes are consumed; callers that parse afterwards should reopen or buffer
// the input.
func SniffReader(r io.Reader) (Format, error) {
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return Unknown, err
	}
	return Sniff(head[:n]), nil
}

// sniffTape checks whether the leading lines look like card images: fixed
// width with integer material, file, and reaction columns. The first two
// lines are enough; a TPID line alone would match almost anything padded to
// width.
func sniffTape(data []byte) bool {
	rest := data
	checked := 0
	for checked < 2 && len(rest) > 0 {
		var line []byte
		if i := bytes.IndexByte(rest, '\n'); i >= 0 {
			line, rest = rest[:i], rest[i+1:]
		} else {
			line, rest = rest, nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if !cardLike(line) {
			return false
		}
		checked++
	}
	return checked > 0
}

// cardLike reports whether one physical line could be an 80-column card
// image. Trailing blanks are commonly stripped in transit, so anything that
// preserves the identification columns passes the width check.
func cardLike(line []byte) bool {
	if len(line) < 70 || len(line) > core.LineWidth {
		return false
	}
	tail, err := core.NewLine(line, 0).Tail()
	if err != nil {
		return false
	}
	return tail.MAT >= -1 && tail.MAT <= 9999 &&
		tail.MF >= 0 && tail.MF <= 99 &&
		tail.MT >= 0 && tail.MT <= 999
}
