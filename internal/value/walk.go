// internal/value/walk.go
package value

import "iter"

// Errors yields every error value in v, depth first. A top-level error
// value yields itself.
func (v Value) Errors() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		v.walkErrors(yield)
	}
}

func (v Value) walkErrors(yield func(Value) bool) bool {
	switch v.kind {
	case KindError:
		return yield(v)
	case KindList:
		for _, e := range v.list {
			if !e.walkErrors(yield) {
				return false
			}
		}
	case KindRecord:
		for _, val := range v.rec.All() {
			if !val.walkErrors(yield) {
				return false
			}
		}
	}
	return true
}

// HasErrors reports whether v contains at least one error value.
func (v Value) HasErrors() bool {
	for range v.Errors() {
		return true
	}
	return false
}
