package resp

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strconv"
)

// maxPrealloc bounds the capacity reserved up front for an array whose
// declared count comes from the peer.
const maxPrealloc = 1024

// ErrLineTooLong is returned when a single line exceeds ReaderOptions.MaxLineBytes.
var ErrLineTooLong = errors.New("resp: line too long")

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// MaxLineBytes caps the length of one line including its terminator.
	// Zero disables the limit.
	MaxLineBytes int
}

// Reader decodes values from a buffered byte stream.
type Reader struct {
	br      *bufio.Reader
	maxLine int
}

// NewReader returns a Reader over r. If r is already a *bufio.Reader it is
// used directly.
func NewReader(r io.Reader, opts ReaderOptions) *Reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Reader{br: br, maxLine: opts.MaxLineBytes}
}

// Parse reads one value from r without a line length limit.
func Parse(r *bufio.Reader) (Value, error) {
	return (&Reader{br: r}).Parse()
}

// Parse reads one value. A non-nil error is always an I/O failure (io.EOF
// when the stream ended before a full line) or ErrLineTooLong; the returned
// value is then Null.
func (r *Reader) Parse() (Value, error) {
	line, err := r.readLine()
	if err != nil {
		return NullValue(), err
	}
	if len(line) == 0 {
		return NullValue(), nil
	}

	switch line[0] {
	case '+':
		return Value{Kind: Simple, Str: line[1:]}, nil
	case '-':
		return Value{Kind: Error, Str: line[1:]}, nil
	case ':':
		return IntegerValue(parseInt(line[1:])), nil
	case '$':
		if isNullLength(line) {
			return NullValue(), nil
		}
		payload, err := r.readLine()
		if err != nil {
			return NullValue(), err
		}
		return Value{Kind: Bulk, Str: payload}, nil
	case '*':
		return r.readArray(line)
	default:
		return NullValue(), nil
	}
}

// readArray reads the elements announced by an array header. Every element
// is read as a bulk header followed by a payload line.
func (r *Reader) readArray(header []byte) (Value, error) {
	n := parseInt(header[1:])
	if n < 0 {
		n = 0
	}

	elems := make([]Value, 0, min(n, maxPrealloc))
	for i := int64(0); i < n; i++ {
		line, err := r.readLine()
		if err != nil {
			return NullValue(), err
		}
		if isNullLength(line) {
			elems = append(elems, NullValue())
			continue
		}
		payload, err := r.readLine()
		if err != nil {
			return NullValue(), err
		}
		elems = append(elems, Value{Kind: Bulk, Str: payload})
	}
	return Value{Kind: Array, Elems: elems}, nil
}

// readLine returns the next line with its terminator removed. The returned
// slice is owned by the caller.
func (r *Reader) readLine() ([]byte, error) {
	var buf []byte
	for {
		frag, err := r.br.ReadSlice('\n')
		if err == nil {
			buf = append(buf, frag...)
			break
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			buf = append(buf, frag...)
			if r.maxLine > 0 && len(buf) > r.maxLine {
				return nil, ErrLineTooLong
			}
			continue
		}
		return nil, err
	}

	if r.maxLine > 0 && len(buf) > r.maxLine {
		return nil, ErrLineTooLong
	}
	return trimEOL(buf), nil
}

func trimEOL(b []byte) []byte {
	b = bytes.TrimSuffix(b, []byte("\n"))
	return bytes.TrimSuffix(b, []byte("\r"))
}

// isNullLength reports whether a length header (sigil included) carries
// exactly "-1".
func isNullLength(line []byte) bool {
	return len(line) > 1 && string(line[1:]) == "-1"
}

// parseInt decodes a decimal integer, yielding 0 on any failure.
func parseInt(b []byte) int64 {
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return 0
	}
	return n
}
