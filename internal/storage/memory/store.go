package memory

import (
	"sync"

	"github.com/yndnr/rodent-go/internal/core/command"
	"github.com/yndnr/rodent-go/internal/core/domain"
	"github.com/yndnr/rodent-go/pkg/resp"
)

// Store is the process-wide keyspace shared by all connections.
type Store struct {
	mu    sync.Mutex
	items map[string]*domain.Object
}

// New creates an empty store.
func New() *Store {
	return &Store{items: make(map[string]*domain.Object)}
}

// Execute runs a validated command under the store lock and returns its reply.
// A command name missing from the table yields a Null reply.
func (s *Store) Execute(cmd *domain.Command) resp.Value {
	spec, ok := command.Lookup(cmd.Name)
	if !ok {
		return resp.NullValue()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return spec.Handler(keyspace(s.items), cmd)
}

// Len returns the number of keys, emptied lists included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// keyspace adapts the raw map for handlers. It is only valid while the
// store lock is held.
type keyspace map[string]*domain.Object

func (k keyspace) Lookup(key string) (*domain.Object, bool) {
	obj, ok := k[key]
	return obj, ok
}

func (k keyspace) Put(key string, obj *domain.Object) { k[key] = obj }

func (k keyspace) Delete(key string) { delete(k, key) }
