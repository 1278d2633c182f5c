package resp

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	tresp "github.com/tidwall/resp"
)

func TestMarshal(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"simple", SimpleValue("PONG"), "+PONG\r\n"},
		{"error", ErrorValue("ERR key type wrong"), "-ERR key type wrong\r\n"},
		{"integer", IntegerValue(2), ":2\r\n"},
		{"negative integer", IntegerValue(-15), ":-15\r\n"},
		{"bulk", BulkValue([]byte("bar")), "$3\r\nbar\r\n"},
		{"empty bulk", BulkValue(nil), "$0\r\n\r\n"},
		{"long bulk length", BulkValue(bytes.Repeat([]byte("x"), 300)), "$300\r\n" + strings.Repeat("x", 300) + "\r\n"},
		{"null", NullValue(), "$-1\r\n"},
		{"zero value is null", Value{}, "$-1\r\n"},
		{"array", ArrayValue(BulkValue([]byte("a")), NullValue()), "*2\r\n$1\r\na\r\n$-1\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(Marshal(tt.v)); got != tt.want {
				t.Errorf("Marshal() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	if err := Write(w, SimpleValue("OK")); err != nil {
		t.Fatal(err)
	}
	if err := Write(w, BulkValue([]byte("bar"))); err != nil {
		t.Fatal(err)
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}

	if got, want := buf.String(), "+OK\r\n$3\r\nbar\r\n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

// ============================================================
// Framing round-trip
// ============================================================

func TestRoundTrip(t *testing.T) {
	frames := []string{
		"+OK\r\n",
		"+\r\n",
		"-ERR wrong number of arguments for 'set' command\r\n",
		":0\r\n",
		":9223372036854775807\r\n",
		":-9223372036854775808\r\n",
		"$3\r\nbar\r\n",
		"$0\r\n\r\n",
		"$-1\r\n",
		"$11\r\nhello world\r\n",
	}

	for _, frame := range frames {
		t.Run(frame, func(t *testing.T) {
			v, err := Parse(bufio.NewReader(strings.NewReader(frame)))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if got := string(Marshal(v)); got != frame {
				t.Errorf("Marshal(Parse(%q)) = %q", frame, got)
			}
		})
	}
}

// TestMarshal_MatchesTidwall cross-checks framing against an independent
// RESP implementation.
func TestMarshal_MatchesTidwall(t *testing.T) {
	tests := []struct {
		name  string
		ours  Value
		their tresp.Value
	}{
		{"simple", SimpleValue("OK"), tresp.SimpleStringValue("OK")},
		{"error", ErrorValue("ERR Protocol error"), tresp.ErrorValue(errors.New("ERR Protocol error"))},
		{"integer", IntegerValue(1234), tresp.IntegerValue(1234)},
		{"bulk", BulkValue([]byte("hello")), tresp.StringValue("hello")},
		{"null", NullValue(), tresp.NullValue()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, err := tt.their.MarshalRESP()
			if err != nil {
				t.Fatalf("tidwall MarshalRESP: %v", err)
			}
			if got := Marshal(tt.ours); !bytes.Equal(got, want) {
				t.Errorf("Marshal() = %q, tidwall = %q", got, want)
			}
		})
	}
}

func TestParse_TidwallMultiBulk(t *testing.T) {
	var buf bytes.Buffer
	if err := tresp.NewWriter(&buf).WriteMultiBulk("LPUSH", "queue", "job-1"); err != nil {
		t.Fatalf("WriteMultiBulk: %v", err)
	}

	v, err := Parse(bufio.NewReader(&buf))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if v.Kind != Array || len(v.Elems) != 3 {
		t.Fatalf("got %+v, want 3-element array", v)
	}
	for i, want := range []string{"LPUSH", "queue", "job-1"} {
		if got := string(v.Elems[i].Str); got != want {
			t.Errorf("elem[%d] = %q, want %q", i, got, want)
		}
	}
}

func TestKind_String(t *testing.T) {
	kinds := map[Kind]string{
		Null:    "null",
		Simple:  "simple",
		Error:   "error",
		Integer: "integer",
		Bulk:    "bulk",
		Array:   "array",
		Kind(9): "kind(9)",
	}
	for k, want := range kinds {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestValue_Text(t *testing.T) {
	if got := IntegerValue(12).Text(); got != "12" {
		t.Errorf("Integer Text() = %q", got)
	}
	if got := BulkValue([]byte("v")).Text(); got != "v" {
		t.Errorf("Bulk Text() = %q", got)
	}
	if got := NullValue().Text(); got != "" {
		t.Errorf("Null Text() = %q", got)
	}
}
