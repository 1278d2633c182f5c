package resp

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"testing"
)

func parseString(t *testing.T, input string) (Value, error) {
	t.Helper()
	return Parse(bufio.NewReader(strings.NewReader(input)))
}

// ============================================================
// Scalar frames
// ============================================================

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantStr  string
		wantInt  int64
	}{
		{name: "simple string", input: "+OK\r\n", wantKind: Simple, wantStr: "OK"},
		{name: "empty simple string", input: "+\r\n", wantKind: Simple, wantStr: ""},
		{name: "error", input: "-ERR unknown command 'foo'\r\n", wantKind: Error, wantStr: "ERR unknown command 'foo'"},
		{name: "integer", input: ":42\r\n", wantKind: Integer, wantInt: 42},
		{name: "negative integer", input: ":-7\r\n", wantKind: Integer, wantInt: -7},
		{name: "non-numeric integer defaults to zero", input: ":abc\r\n", wantKind: Integer, wantInt: 0},
		{name: "empty integer defaults to zero", input: ":\r\n", wantKind: Integer, wantInt: 0},
		{name: "bulk", input: "$3\r\nbar\r\n", wantKind: Bulk, wantStr: "bar"},
		{name: "empty bulk", input: "$0\r\n\r\n", wantKind: Bulk, wantStr: ""},
		{name: "null bulk", input: "$-1\r\n", wantKind: Null},
		{name: "bulk length is advisory", input: "$10\r\nbar\r\n", wantKind: Bulk, wantStr: "bar"},
		{name: "bulk with non-numeric length", input: "$x\r\nbar\r\n", wantKind: Bulk, wantStr: "bar"},
		{name: "bare LF terminator", input: "+PONG\n", wantKind: Simple, wantStr: "PONG"},
		{name: "unknown sigil", input: "?what\r\n", wantKind: Null},
		{name: "inline text", input: "PING\r\n", wantKind: Null},
		{name: "blank line", input: "\r\n", wantKind: Null},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseString(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != tt.wantKind {
				t.Fatalf("Kind = %v, want %v", got.Kind, tt.wantKind)
			}
			if string(got.Str) != tt.wantStr {
				t.Errorf("Str = %q, want %q", got.Str, tt.wantStr)
			}
			if got.Int != tt.wantInt {
				t.Errorf("Int = %d, want %d", got.Int, tt.wantInt)
			}
		})
	}
}

// ============================================================
// Arrays
// ============================================================

func TestParse_Array(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string // "<nil>" marks a Null element
	}{
		{name: "PING", input: "*1\r\n$4\r\nPING\r\n", want: []string{"PING"}},
		{name: "SET", input: "*3\r\n$3\r\nSET\r\n$3\r\nfoo\r\n$3\r\nbar\r\n", want: []string{"SET", "foo", "bar"}},
		{name: "null element", input: "*3\r\n$3\r\nGET\r\n$-1\r\n$1\r\nx\r\n", want: []string{"GET", "<nil>", "x"}},
		{name: "empty array", input: "*0\r\n", want: []string{}},
		{name: "negative count", input: "*-1\r\n", want: []string{}},
		{name: "non-numeric count", input: "*z\r\n", want: []string{}},
		{name: "element length ignored", input: "*2\r\n$1\r\nGET\r\n$99\r\nkey\r\n", want: []string{"GET", "key"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseString(t, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Kind != Array {
				t.Fatalf("Kind = %v, want array", got.Kind)
			}
			if len(got.Elems) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got.Elems), len(tt.want))
			}
			for i, want := range tt.want {
				e := got.Elems[i]
				if want == "<nil>" {
					if e.Kind != Null {
						t.Errorf("elem[%d] Kind = %v, want null", i, e.Kind)
					}
					continue
				}
				if e.Kind != Bulk {
					t.Errorf("elem[%d] Kind = %v, want bulk", i, e.Kind)
				}
				if string(e.Str) != want {
					t.Errorf("elem[%d] = %q, want %q", i, e.Str, want)
				}
			}
		})
	}
}

func TestParse_ConsecutiveFrames(t *testing.T) {
	r := bufio.NewReader(strings.NewReader("*1\r\n$4\r\nPING\r\n*2\r\n$3\r\nGET\r\n$3\r\nfoo\r\n"))

	first, err := Parse(r)
	if err != nil {
		t.Fatalf("first Parse: %v", err)
	}
	if len(first.Elems) != 1 || string(first.Elems[0].Str) != "PING" {
		t.Errorf("first = %+v", first)
	}

	second, err := Parse(r)
	if err != nil {
		t.Fatalf("second Parse: %v", err)
	}
	if len(second.Elems) != 2 || string(second.Elems[1].Str) != "foo" {
		t.Errorf("second = %+v", second)
	}

	if _, err := Parse(r); !errors.Is(err, io.EOF) {
		t.Errorf("third Parse error = %v, want io.EOF", err)
	}
}

// ============================================================
// Stream end and limits
// ============================================================

func TestParse_EOF(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty stream", ""},
		{"truncated line", "+PON"},
		{"missing bulk payload", "$3\r\n"},
		{"missing array element", "*2\r\n$3\r\nGET\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseString(t, tt.input)
			if !errors.Is(err, io.EOF) {
				t.Errorf("error = %v, want io.EOF", err)
			}
			if got.Kind != Null {
				t.Errorf("Kind = %v, want null", got.Kind)
			}
		})
	}
}

func TestReader_MaxLineBytes(t *testing.T) {
	long := "+" + strings.Repeat("a", 100) + "\r\n"

	r := NewReader(strings.NewReader(long), ReaderOptions{MaxLineBytes: 32})
	if _, err := r.Parse(); !errors.Is(err, ErrLineTooLong) {
		t.Errorf("error = %v, want ErrLineTooLong", err)
	}

	r = NewReader(strings.NewReader(long), ReaderOptions{})
	got, err := r.Parse()
	if err != nil {
		t.Fatalf("unlimited reader: %v", err)
	}
	if len(got.Str) != 100 {
		t.Errorf("len(Str) = %d, want 100", len(got.Str))
	}
}

func TestReader_MaxLineBytesAcrossBufferFill(t *testing.T) {
	// Larger than bufio's minimum buffer so ReadSlice reports ErrBufferFull.
	long := "$5000\r\n" + strings.Repeat("b", 5000) + "\r\n"
	br := bufio.NewReaderSize(strings.NewReader(long), 16)

	r := NewReader(br, ReaderOptions{MaxLineBytes: 1024})
	if _, err := r.Parse(); !errors.Is(err, ErrLineTooLong) {
		t.Errorf("error = %v, want ErrLineTooLong", err)
	}
}

func TestReader_OwnsBytes(t *testing.T) {
	r := NewReader(strings.NewReader("$3\r\nfoo\r\n$3\r\nbar\r\n"), ReaderOptions{})

	first, err := r.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := r.Parse(); err != nil {
		t.Fatal(err)
	}
	if string(first.Str) != "foo" {
		t.Errorf("first value mutated by later read: %q", first.Str)
	}
}
