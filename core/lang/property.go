// File: property.go
// Title: Class-Level Property
// Description: Implements a computed attribute whose receiver is shared class-level
//              state rather than an individual instance, readable both with and
//              without an instance in hand.
// Author: mt-labs
// Version: v0.1.0
// Created: 2025-09-14
// Modified: 2025-09-14
//
// Change History:
// - 2025-09-14 v0.1.0: Initial implementation

package lang

// ClassProperty binds a compute function to shared class-level state C and
// exposes the result as a read-only attribute. Every Get invokes the compute
// function with the bound owner; nothing is cached, so reads always reflect
// the owner's current state.
//
// The owner is the receiver, not any particular instance. A typical use binds
// the property to a package-level state struct shared by all instances of a
// type:
//
//	type counterState struct{ total int }
//
//	var counters = &counterState{}
//
//	var Total = lang.NewClassProperty(counters, func(s *counterState) int {
//		return s.total
//	})
//
//	n := Total.Get() // readable with no instance in hand
type ClassProperty[C any, V any] struct {
	owner   C
	compute func(C) V
}

// NewClassProperty binds owner and compute into a class-level property.
// It panics if compute is nil, matching the runtime's treatment of calling a
// nil function.
func NewClassProperty[C any, V any](owner C, compute func(C) V) *ClassProperty[C, V] {
	if compute == nil {
		panic("lang: ClassProperty compute function must not be nil")
	}
	return &ClassProperty[C, V]{owner: owner, compute: compute}
}

// Get invokes the compute function with the owning class state and returns
// its result. Failures inside the compute function propagate to the caller
// unchanged.
func (p *ClassProperty[C, V]) Get() V {
	return p.compute(p.owner)
}

// Owner returns the bound class-level state.
func (p *ClassProperty[C, V]) Owner() C {
	return p.owner
}
