// Package arena provides index-addressed slot storage with stable handles.
//
// An arena issues a handle for every inserted value and keeps it valid until
// the slot is removed. Freed slots are recycled by later inserts, most
// recently freed first, so handle values stay small and dense.
package arena

import "fmt"

// Handle addresses one slot of an arena. Handles are meaningful only for the
// arena that issued them.
type Handle int

// None is the null handle. No arena ever issues it.
const None Handle = -1

type slot[T any] struct {
	value T
	next  int // next free slot + 1 while freed; 0 terminates the free list
	live  bool
}

// Arena is a growable slot store for values of type T.
//
// The zero value is an empty arena ready for use. An arena never shrinks;
// its slot vector only grows when no freed slot is left for reuse.
type Arena[T any] struct {
	slots []slot[T]
	free  int // free-list head + 1; 0 means all slots are live
	n     int
}

// Insert stores v and returns its handle.
func (a *Arena[T]) Insert(v T) Handle {
	if a.free > 0 {
		h := Handle(a.free - 1)
		s := &a.slots[h]
		a.free = s.next
		s.next = 0
		s.value = v
		s.live = true
		a.n++
		return h
	}
	a.slots = append(a.slots, slot[T]{value: v, live: true})
	a.n++
	return Handle(len(a.slots) - 1)
}

// Remove frees the slot at h and returns the removed value.
func (a *Arena[T]) Remove(h Handle) (T, error) {
	var none T
	s, err := a.at(h)
	if err != nil {
		return none, err
	}
	v := s.value
	s.value = none
	s.live = false
	s.next = a.free
	a.free = int(h) + 1
	a.n--
	return v, nil
}

// At returns the value stored at h.
func (a *Arena[T]) At(h Handle) (T, error) {
	s, err := a.at(h)
	if err != nil {
		var none T
		return none, err
	}
	return s.value, nil
}

// Set overwrites the value stored at h in place.
func (a *Arena[T]) Set(h Handle, v T) error {
	s, err := a.at(h)
	if err != nil {
		return err
	}
	s.value = v
	return nil
}

// Contains reports whether h addresses a live slot.
func (a *Arena[T]) Contains(h Handle) bool {
	return h >= 0 && int(h) < len(a.slots) && a.slots[h].live
}

// Len returns the number of live slots.
func (a *Arena[T]) Len() int {
	return a.n
}

func (a *Arena[T]) at(h Handle) (*slot[T], error) {
	if h < 0 || int(h) >= len(a.slots) {
		return nil, fmt.Errorf("%w: %d", ErrOutOfBounds, h)
	}
	s := &a.slots[h]
	if !s.live {
		return nil, fmt.Errorf("%w: %d", ErrStaleHandle, h)
	}
	return s, nil
}
