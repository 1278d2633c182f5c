package command

import (
	"unicode/utf8"

	"github.com/yndnr/rodent-go/internal/core/domain"
	"github.com/yndnr/rodent-go/pkg/resp"
)

// Validate turns a parsed request into a Command. The request must be a
// non-empty array of bulk strings naming a known command with exactly the
// registered arity. Rejections are *domain.CommandError values.
func Validate(v resp.Value) (*domain.Command, error) {
	elems, err := requestElems(v)
	if err != nil {
		return nil, err
	}

	name := elems[0].Str
	spec, ok := find(name)
	if !ok {
		return nil, domain.ErrUnknownCommand.WithCommand(name)
	}
	if len(elems) != spec.Arity {
		return nil, domain.ErrWrongArity.WithCommand(name)
	}

	cmd := &domain.Command{Name: spec.Name}
	if spec.Arity > 1 {
		key := elems[1].Str
		if !utf8.Valid(key) {
			return nil, domain.ErrKeyType
		}
		cmd.Key = string(key)
		if len(elems) > 2 {
			cmd.Args = make([][]byte, 0, len(elems)-2)
			for _, e := range elems[2:] {
				cmd.Args = append(cmd.Args, e.Str)
			}
		}
	}
	return cmd, nil
}

// requestElems returns the elements of a well-formed request array.
func requestElems(v resp.Value) ([]resp.Value, error) {
	switch v.Kind {
	case resp.Array:
		if len(v.Elems) == 0 {
			return nil, domain.ErrProtocol
		}
		for _, e := range v.Elems {
			if e.Kind != resp.Bulk {
				return nil, domain.ErrProtocol
			}
		}
		return v.Elems, nil
	case resp.Null, resp.Simple, resp.Error, resp.Integer, resp.Bulk:
		return nil, domain.ErrProtocol
	default:
		return nil, domain.ErrProtocol
	}
}
