package command

import (
	"bytes"
	"sort"

	"github.com/yndnr/rodent-go/internal/core/domain"
	"github.com/yndnr/rodent-go/pkg/resp"
)

// Keyspace is the view of the store a handler runs against. The store
// guarantees exclusive access for the duration of one handler call.
type Keyspace interface {
	Lookup(key string) (*domain.Object, bool)
	Put(key string, obj *domain.Object)
	Delete(key string)
}

// HandlerFunc executes a validated command and returns its reply.
type HandlerFunc func(ks Keyspace, cmd *domain.Command) resp.Value

// Spec describes one supported command.
type Spec struct {
	Name    string
	Arity   int
	Handler HandlerFunc
}

var table = map[string]*Spec{}

func register(name string, arity int, h HandlerFunc) {
	table[name] = &Spec{Name: name, Arity: arity, Handler: h}
}

func init() {
	register("ping", 1, handlePing)
	register("set", 3, handleSet)
	register("get", 2, handleGet)
	register("del", 2, handleDel)
	register("lpush", 3, handleLPush)
	register("rpop", 2, handleRPop)
}

// Lookup returns the spec registered under the canonical name.
func Lookup(name string) (*Spec, bool) {
	s, ok := table[name]
	return s, ok
}

// find resolves a client-supplied name. Matching folds ASCII case, so
// "PING", "ping" and "Ping" resolve to the same spec.
func find(name []byte) (*Spec, bool) {
	s, ok := table[string(bytes.ToLower(name))]
	return s, ok
}

// Names returns the canonical command names in sorted order.
func Names() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Specs returns all command specs sorted by name.
func Specs() []Spec {
	specs := make([]Spec, 0, len(table))
	for _, name := range Names() {
		specs = append(specs, *table[name])
	}
	return specs
}
