package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/yndnr/rodent-go/pkg/resp"
)

// RawFormatter prints status and error strings quoted, integers in
// decimal, bulk payloads as their raw bytes and null as "nil". Array
// elements are printed one bulk payload per line.
type RawFormatter struct{}

// Format writes v followed by a newline.
func (f *RawFormatter) Format(w io.Writer, v resp.Value) error {
	var err error
	switch v.Kind {
	case resp.Simple, resp.Error:
		_, err = fmt.Fprintln(w, strconv.Quote(v.Text()))
	case resp.Integer:
		_, err = fmt.Fprintln(w, v.Int)
	case resp.Bulk:
		err = writeLine(w, v.Str)
	case resp.Array:
		for _, e := range v.Elems {
			if e.Kind != resp.Bulk {
				continue
			}
			if err = writeLine(w, e.Str); err != nil {
				return err
			}
		}
	default:
		_, err = io.WriteString(w, "nil\n")
	}
	return err
}

func writeLine(w io.Writer, b []byte) error {
	if _, err := w.Write(b); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
