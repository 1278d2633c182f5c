package command

import (
	"github.com/yndnr/rodent-go/internal/core/domain"
	"github.com/yndnr/rodent-go/pkg/resp"
)

func handlePing(_ Keyspace, _ *domain.Command) resp.Value {
	return resp.SimpleValue("PONG")
}

// SET key value replaces whatever the key held, list payload included.
func handleSet(ks Keyspace, cmd *domain.Command) resp.Value {
	ks.Put(cmd.Key, domain.NewScalar(cmd.Arg(0)))
	return resp.SimpleValue("OK")
}

// GET key looks at the scalar payload only.
func handleGet(ks Keyspace, cmd *domain.Command) resp.Value {
	obj, ok := ks.Lookup(cmd.Key)
	if !ok {
		return resp.NullValue()
	}
	v, ok := obj.Scalar()
	if !ok {
		return resp.NullValue()
	}
	return resp.BulkValue(v)
}

// DEL key replies OK whether or not the key existed.
func handleDel(ks Keyspace, cmd *domain.Command) resp.Value {
	ks.Delete(cmd.Key)
	return resp.SimpleValue("OK")
}

// LPUSH key value appends to the tail of the list and replies with the new length.
func handleLPush(ks Keyspace, cmd *domain.Command) resp.Value {
	obj, ok := ks.Lookup(cmd.Key)
	if !ok {
		obj = &domain.Object{}
		ks.Put(cmd.Key, obj)
	}
	return resp.IntegerValue(int64(obj.PushBack(cmd.Arg(0))))
}

// RPOP key removes the head of the list. An emptied list keeps its key.
func handleRPop(ks Keyspace, cmd *domain.Command) resp.Value {
	obj, ok := ks.Lookup(cmd.Key)
	if !ok {
		return resp.NullValue()
	}
	v, ok := obj.PopFront()
	if !ok {
		return resp.NullValue()
	}
	return resp.BulkValue(v)
}
