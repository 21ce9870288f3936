// File: unset.go
// Title: Unset Sentinel Value
// Description: Implements the Unset sentinel marker, a process-wide value that is
//              distinguishable from nil, false and zero by identity while behaving
//              like an empty, false-y container under boolean, length, equality
//              and iteration queries.
// Author: mt-labs
// Version: v0.1.1
// Created: 2025-09-14
// Modified: 2025-10-02
//
// Change History:
// - 2025-09-14 v0.1.0: Initial implementation with loose equality and iteration
// - 2025-10-02 v0.1.1: Added JSON/YAML marshaling and IsZero support

package lang

import (
	"iter"
	"reflect"
)

// UnsetType is the type of the Unset sentinel. The zero value is the sentinel
// itself; every UnsetType value is the same logical marker, so the type carries
// no state and all instances are interchangeable.
type UnsetType struct{}

// Unset is the process-wide sentinel marker. Use it as a default or fallback
// argument where callers must be able to distinguish "no value supplied" from
// a deliberately passed nil, false, zero or empty value.
var Unset UnsetType

// IsUnset reports whether v is the Unset sentinel. This is the identity check;
// use it instead of Equal when the distinction from false-y values matters.
func IsUnset(v any) bool {
	_, ok := v.(UnsetType)
	return ok
}

// Bool returns the boolean coercion of the sentinel, which is always false.
func (UnsetType) Bool() bool {
	return false
}

// Len returns the length of the sentinel, which is always 0.
func (UnsetType) Len() int {
	return 0
}

// Equal reports whether the sentinel compares equal to other under the
// sentinel's deliberately loose equality: true for the sentinel itself and for
// every false-y value (nil, false, numeric zero, empty string, empty or nil
// container, nil pointer), false for anything truthy.
func (UnsetType) Equal(other any) bool {
	if _, ok := other.(UnsetType); ok {
		return true
	}
	return !Truthy(other)
}

// Iter returns an empty iteration sequence. The sequence is trivially
// restartable; ranging over it any number of times yields no elements.
func (UnsetType) Iter() iter.Seq[any] {
	return func(yield func(any) bool) {}
}

// String returns the fixed literal representation of the sentinel.
func (UnsetType) String() string {
	return "UNSET"
}

// IsZero reports true so encoders honoring the IsZeroer convention treat the
// sentinel as an omittable empty value.
func (UnsetType) IsZero() bool {
	return true
}

// MarshalJSON encodes the sentinel as JSON null.
func (UnsetType) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalYAML encodes the sentinel as a YAML null node.
func (UnsetType) MarshalYAML() (interface{}, error) {
	return nil, nil
}

// Truthy reports whether v would be considered true in a boolean context:
// false for nil, false, numeric zero, empty strings, empty or nil containers
// and nil pointers; true for everything else, including structs and non-zero
// scalars.
func Truthy(v any) bool {
	if v == nil {
		return false
	}

	switch x := v.(type) {
	case UnsetType:
		return false
	case bool:
		return x
	case string:
		return x != ""
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() != 0
	case reflect.Ptr, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	default:
		return true
	}
}
