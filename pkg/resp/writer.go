package resp

import (
	"bufio"
	"strconv"
)

var crlf = []byte("\r\n")

// Append appends the wire form of v to dst and returns the extended slice.
func Append(dst []byte, v Value) []byte {
	switch v.Kind {
	case Simple:
		dst = append(dst, '+')
		dst = append(dst, v.Str...)
		return append(dst, crlf...)
	case Error:
		dst = append(dst, '-')
		dst = append(dst, v.Str...)
		return append(dst, crlf...)
	case Integer:
		dst = append(dst, ':')
		dst = strconv.AppendInt(dst, v.Int, 10)
		return append(dst, crlf...)
	case Bulk:
		dst = append(dst, '$')
		dst = strconv.AppendInt(dst, int64(len(v.Str)), 10)
		dst = append(dst, crlf...)
		dst = append(dst, v.Str...)
		return append(dst, crlf...)
	case Array:
		dst = append(dst, '*')
		dst = strconv.AppendInt(dst, int64(len(v.Elems)), 10)
		dst = append(dst, crlf...)
		for _, e := range v.Elems {
			dst = Append(dst, e)
		}
		return dst
	case Null:
		return append(dst, "$-1\r\n"...)
	default:
		return append(dst, "$-1\r\n"...)
	}
}

// Marshal returns the wire form of v.
func Marshal(v Value) []byte {
	return Append(nil, v)
}

// Write writes the wire form of v to w. The caller flushes.
func Write(w *bufio.Writer, v Value) error {
	_, err := w.Write(Append(w.AvailableBuffer(), v))
	return err
}
