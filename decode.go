package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// encodings maps the accepted -encoding names to decoders. "utf-16" sniffs
// a byte order mark and falls back to little-endian, matching what Windows
// tools redirecting console output produce.
var encodings = map[string]encoding.Encoding{
	"utf-16":   bomSniffing{unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)},
	"utf-16le": unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
	"utf-16be": unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
	"utf-8":    unicode.UTF8BOM,
}

// bomSniffing decodes according to a leading byte order mark (UTF-16 LE,
// UTF-16 BE or UTF-8) and strips it; input without one is decoded as
// little-endian UTF-16. Encoding writes a little-endian BOM.
//
// unicode.UseBOM on its own rejects inputs shorter than a BOM.
type bomSniffing struct {
	encoding.Encoding
}

func (bomSniffing) NewDecoder() *encoding.Decoder {
	fallback := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	return &encoding.Decoder{Transformer: unicode.BOMOverride(fallback)}
}

func lookupEncoding(name string) (encoding.Encoding, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if enc, ok := encodings[norm]; ok {
		return enc, nil
	}
	names := make([]string, 0, len(encodings))
	for n := range encodings {
		names = append(names, n)
	}
	sort.Strings(names)
	return nil, fmt.Errorf("unknown encoding %q (want one of %s)", name, strings.Join(names, ", "))
}

// decodeOutput reads all of r and converts it to UTF-8. Malformed input is
// replaced with U+FFFD rather than reported.
func decodeOutput(r io.Reader, encodingName string) (string, error) {
	enc, err := lookupEncoding(encodingName)
	if err != nil {
		return "", err
	}
	data, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", encodingName, err)
	}
	return string(data), nil
}
