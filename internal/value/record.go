// internal/value/record.go
package value

import (
	"iter"
	"slices"
)

// Record is an ordered set of named columns. Columns keep insertion order.
type Record struct {
	cols []string
	vals []Value
}

func NewRecord() *Record {
	return &Record{}
}

// Set assigns val to col, appending the column if it does not exist yet.
func (r *Record) Set(col string, val Value) {
	if i := slices.Index(r.cols, col); i >= 0 {
		r.vals[i] = val
		return
	}
	r.cols = append(r.cols, col)
	r.vals = append(r.vals, val)
}

func (r *Record) Get(col string) (Value, bool) {
	if i := slices.Index(r.cols, col); i >= 0 {
		return r.vals[i], true
	}
	return Value{}, false
}

// Columns returns a copy of the column names in order.
func (r *Record) Columns() []string {
	return slices.Clone(r.cols)
}

func (r *Record) Len() int {
	return len(r.cols)
}

// All iterates the columns in order.
func (r *Record) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for i, col := range r.cols {
			if !yield(col, r.vals[i]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy; child values are shared.
func (r *Record) Clone() *Record {
	return &Record{cols: slices.Clone(r.cols), vals: slices.Clone(r.vals)}
}

// Equal compares column order and values.
func (r *Record) Equal(other *Record) bool {
	if r.Len() != other.Len() {
		return false
	}
	for i, col := range r.cols {
		if other.cols[i] != col || !r.vals[i].Equal(other.vals[i]) {
			return false
		}
	}
	return true
}
