package output

import (
	"fmt"
	"io"

	"github.com/yndnr/rodent-go/pkg/resp"
)

// Format represents the output format.
type Format string

const (
	FormatRaw  Format = "raw"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Formatter writes one reply to w.
type Formatter interface {
	Format(w io.Writer, v resp.Value) error
}

// NewFormatter creates a formatter for the given format.
func NewFormatter(format Format) (Formatter, error) {
	switch format {
	case FormatRaw, "":
		return &RawFormatter{}, nil
	case FormatJSON:
		return &JSONFormatter{}, nil
	case FormatYAML:
		return &YAMLFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// Reply is the structured form of a reply used by the json and yaml
// formatters. Value is a string for simple, error and bulk replies, an
// int64 for integers, nil for null, and []Reply for arrays.
type Reply struct {
	Type  string `json:"type" yaml:"type"`
	Value any    `json:"value" yaml:"value"`
}

// NewReply converts v into its structured form.
func NewReply(v resp.Value) Reply {
	r := Reply{Type: v.Kind.String()}
	switch v.Kind {
	case resp.Simple, resp.Error, resp.Bulk:
		r.Value = v.Text()
	case resp.Integer:
		r.Value = v.Int
	case resp.Array:
		elems := make([]Reply, 0, len(v.Elems))
		for _, e := range v.Elems {
			elems = append(elems, NewReply(e))
		}
		r.Value = elems
	}
	return r
}
