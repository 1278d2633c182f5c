package domain

import "github.com/gammazero/deque"

// Object is the value stored under one key. The scalar and list payloads are
// independent: nothing stops a key from carrying both.
type Object struct {
	scalar    []byte
	hasScalar bool
	list      deque.Deque[[]byte]
}

// NewScalar returns an Object whose scalar payload is v and whose list is empty.
func NewScalar(v []byte) *Object {
	return &Object{scalar: v, hasScalar: true}
}

// Scalar returns the scalar payload and whether one was set.
func (o *Object) Scalar() ([]byte, bool) {
	return o.scalar, o.hasScalar
}

// PushBack appends v to the tail of the list and returns the new length.
func (o *Object) PushBack(v []byte) int {
	o.list.PushBack(v)
	return o.list.Len()
}

// PopFront removes and returns the head of the list.
func (o *Object) PopFront() ([]byte, bool) {
	if o.list.Len() == 0 {
		return nil, false
	}
	return o.list.PopFront(), true
}

// ListLen returns the number of list items.
func (o *Object) ListLen() int {
	return o.list.Len()
}
