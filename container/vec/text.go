package vec

import (
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/allockit/adapt"
)

// FromBytes builds a byte vector over a holding a copy of data.
func FromBytes(a adapt.Adapter[byte], data []byte) (*Vector[byte], error) {
	v := New(a)
	if err := v.AppendSlice(data); err != nil {
		return nil, err
	}
	return v, nil
}

// FromString builds a byte vector over a holding the bytes of s.
func FromString(a adapt.Adapter[byte], s string) (*Vector[byte], error) {
	return FromBytes(a, []byte(s))
}

// String returns the contents of a byte vector as a Go string.
func String(v *Vector[byte]) string {
	return string(v.Slice())
}

// FromUTF16LE decodes UTF-16LE data into an adapter-backed byte vector
// of UTF-8.
func FromUTF16LE(a adapt.Adapter[byte], data []byte) (*Vector[byte], error) {
	dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := dec.Bytes(data)
	if err != nil {
		return nil, err
	}
	return FromBytes(a, out)
}

// FromLatin1 decodes ISO 8859-1 data into an adapter-backed byte vector
// of UTF-8.
func FromLatin1(a adapt.Adapter[byte], data []byte) (*Vector[byte], error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, err
	}
	return FromBytes(a, out)
}
