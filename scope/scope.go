/*
File   : monkey-go/scope/scope.go
Package: scope

Package scope implements the lexically-nested name-to-value bindings
Monkey programs evaluate against. A Scope is one frame: a map of bound
names plus an optional Outer reference to the enclosing frame. Lookup
walks the Outer chain; Bind always writes to the current frame only.

Unlike a plain map, a *Scope is shared by reference among every closure
that captured it: a FunctionLiteral evaluates to a Function holding the
very *Scope that was active at its definition site, not a copy of it.
That sharing is what makes closures observe later mutations of their
defining scope, and is why this type is always handled through a
pointer.
*/
package scope

import "github.com/micahkepe/monkey-go/object"

// Scope is one lexical frame: a set of name bindings plus a link to the
// enclosing frame (nil for the global/root scope).
type Scope struct {
	store map[string]object.Object
	Outer *Scope
}

// New creates a fresh root scope with no enclosing frame.
func New() *Scope {
	return &Scope{store: make(map[string]object.Object)}
}

// NewEnclosed creates a scope nested inside outer, such as a frame for a
// function call's local bindings on top of the function's captured
// environment.
func NewEnclosed(outer *Scope) *Scope {
	s := New()
	s.Outer = outer
	return s
}

// Get looks up name in this frame, then walks Outer until it is found or
// the chain is exhausted. A false second return means no frame in the
// chain binds name; Get does not consult any built-in functions.
func (s *Scope) Get(name string) (object.Object, bool) {
	obj, ok := s.store[name]
	if !ok && s.Outer != nil {
		return s.Outer.Get(name)
	}
	return obj, ok
}

// Bind writes name into this frame only, shadowing (without mutating)
// any binding of the same name in an outer frame. Per spec, rebinding an
// already-bound name in the same frame simply overwrites it.
func (s *Scope) Bind(name string, val object.Object) object.Object {
	s.store[name] = val
	return val
}
