package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math/big"
	"reflect"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ib-77/tabutils/pkg/tab"
)

func lookup(name string) (encoding.Encoding, error) {
	if name == "" {
		name = tab.Encoding
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", tab.ErrUnknownEncoding, name)
	}
	return enc, nil
}

func isUTF8(enc encoding.Encoding) bool {
	return enc == unicode.UTF8 || enc == encoding.Nop
}

// Decode converts content from the named encoding into a string. Content
// that is not valid in the encoding is returned as-is.
func Decode(content []byte, name string) (string, error) {
	enc, err := lookup(name)
	if err != nil {
		return "", err
	}

	if isUTF8(enc) {
		return string(content), nil
	}

	decoded, err := io.ReadAll(transform.NewReader(bytes.NewReader(content), enc.NewDecoder()))
	if err != nil {
		return string(content), nil
	}
	return string(decoded), nil
}

// Encode converts content into bytes of the named encoding. Strings are
// transcoded and byte slices pass through. With parseInts, non-negative
// integers become big-endian bytes, one byte longer than their bit length
// strictly needs.
func Encode(content any, name string, parseInts bool) ([]byte, error) {
	switch c := content.(type) {
	case string:
		return encodeString(c, name)
	case []byte:
		return c, nil
	}

	rv := reflect.ValueOf(content)
	if rv.Kind() == reflect.String {
		return encodeString(rv.String(), name)
	}
	if !parseInts {
		return nil, fmt.Errorf("%w: %T", tab.ErrNotEncodable, content)
	}

	n, ok := bigInt(rv)
	if !ok {
		return nil, fmt.Errorf("%w: %T", tab.ErrNotEncodable, content)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative integer %s", tab.ErrNotEncodable, n)
	}
	return n.FillBytes(make([]byte, n.BitLen()/8+1)), nil
}

func encodeString(s, name string) ([]byte, error) {
	enc, err := lookup(name)
	if err != nil {
		return nil, err
	}
	if isUTF8(enc) {
		return []byte(s), nil
	}

	out, _, err := transform.Bytes(enc.NewEncoder(), []byte(s))
	if err != nil {
		return nil, errors.Join(tab.ErrNotEncodable, err)
	}
	return out, nil
}

func bigInt(rv reflect.Value) (*big.Int, bool) {
	if !rv.IsValid() {
		return nil, false
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return new(big.Int).SetUint64(rv.Uint()), true
	}
	if n, ok := rv.Interface().(*big.Int); ok && n != nil {
		return n, true
	}
	return nil, false
}

// Byte builds a byte slice from a string or a sequence of characters. Text
// elements are utf-8 encoded, byte slices are appended and integers are
// converted to big-endian bytes.
func Byte(content any) ([]byte, error) {
	switch c := content.(type) {
	case string:
		return []byte(c), nil
	case []byte:
		return bytes.Clone(c), nil
	case []rune:
		return []byte(string(c)), nil
	case []string:
		return []byte(strings.Join(c, "")), nil
	}

	elems, ok := tab.Elems(content)
	if !ok {
		if seq, isSeq := collect(reflect.ValueOf(content)); isSeq {
			elems = seq
		} else {
			return nil, fmt.Errorf("%w: %T", tab.ErrNotEncodable, content)
		}
	}

	var buf bytes.Buffer
	for _, e := range elems {
		b, err := Encode(e, tab.Encoding, false)
		if errors.Is(err, tab.ErrNotEncodable) {
			b, err = Encode(e, tab.Encoding, true)
		}
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	return buf.Bytes(), nil
}

// Valid reports whether content is valid text in the named encoding.
func Valid(content []byte, name string) bool {
	enc, err := lookup(name)
	if err != nil {
		return false
	}
	if isUTF8(enc) {
		return utf8.Valid(content)
	}
	_, _, err = transform.Bytes(enc.NewDecoder(), content)
	return err == nil
}
