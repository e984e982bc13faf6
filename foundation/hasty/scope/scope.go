// File: scope.go
// Title: Lexical Scope Stack
// Description: A stack of frames mapping names to bindings. Lookups search
//              from the innermost frame outwards. The stack always holds at
//              least the global frame.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-14
// Modified: 2025-02-14
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation

// Package scope implements the name-binding stack used by the resolver.
package scope

import "github.com/msto63/hasty/foundation/utils/mapx"

// Scope is a stack of frames. The zero value is not usable; call New.
type Scope[T any] struct {
	frames []map[string]T
}

// New returns a scope holding only the global frame
func New[T any]() *Scope[T] {
	return &Scope[T]{frames: []map[string]T{make(map[string]T)}}
}

// Push opens a new innermost frame
func (s *Scope[T]) Push() {
	s.frames = append(s.frames, make(map[string]T))
}

// Pop closes the innermost frame. The global frame cannot be popped;
// Pop returns false in that case.
func (s *Scope[T]) Pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return true
}

// Depth returns the number of frames, 1 for the global frame only
func (s *Scope[T]) Depth() int {
	return len(s.frames)
}

// Declare binds name in the innermost frame, overwriting an earlier
// binding of the same name in that frame
func (s *Scope[T]) Declare(name string, binding T) {
	s.frames[len(s.frames)-1][name] = binding
}

// Lookup returns the binding of name from the innermost frame that has one
func (s *Scope[T]) Lookup(name string) (T, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if binding, ok := s.frames[i][name]; ok {
			return binding, true
		}
	}
	var zero T
	return zero, false
}

// LookupLocal only searches the innermost frame
func (s *Scope[T]) LookupLocal(name string) (T, bool) {
	binding, ok := s.frames[len(s.frames)-1][name]
	return binding, ok
}

// Contains reports whether name is bound in any frame
func (s *Scope[T]) Contains(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Names returns the names visible from the innermost frame, sorted
func (s *Scope[T]) Names() []string {
	return mapx.SortedKeys(mapx.Merge(s.frames...))
}
