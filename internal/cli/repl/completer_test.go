package repl

import (
	"reflect"
	"testing"
)

func TestCompleter_Complete(t *testing.T) {
	c := NewCompleter([]string{"del", "get", "lpush", "ping", "rpop", "set"})

	tests := []struct {
		prefix string
		want   []string
	}{
		{"", []string{"connect", "del", "exit", "get", "help", "lpush", "ping", "quit", "rpop", "set"}},
		{"p", []string{"ping"}},
		{"R", []string{"rpop"}},
		{"e", []string{"exit"}},
		{"zz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			if got := c.Complete(tt.prefix); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Complete(%q) = %v, want %v", tt.prefix, got, tt.want)
			}
		})
	}
}
