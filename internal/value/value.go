// internal/value/value.go
package value

import (
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/duration"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNothing Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindDuration
	KindList
	KindRecord
	KindError
)

var kindNames = [...]string{
	KindNothing:  "nothing",
	KindBool:     "bool",
	KindInt:      "int",
	KindFloat:    "float",
	KindString:   "string",
	KindDuration: "duration",
	KindList:     "list",
	KindRecord:   "record",
	KindError:    "error",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Value is a node of the input tree. The zero Value is nothing with an
// empty span.
type Value struct {
	kind Kind
	b    bool
	i    int64 // int payload, or nanoseconds for durations
	f    float64
	s    string
	list []Value
	rec  *Record
	err  error
	span hcl.Range
}

// Nothing is the absent value.
func Nothing(span hcl.Range) Value { return Value{kind: KindNothing, span: span} }

// Bool wraps a boolean.
func Bool(b bool, span hcl.Range) Value { return Value{kind: KindBool, b: b, span: span} }

// Int wraps a signed integer.
func Int(i int64, span hcl.Range) Value { return Value{kind: KindInt, i: i, span: span} }

// Float wraps a float64.
func Float(f float64, span hcl.Range) Value { return Value{kind: KindFloat, f: f, span: span} }

// String wraps a string.
func String(s string, span hcl.Range) Value { return Value{kind: KindString, s: s, span: span} }

// Duration wraps a signed nanosecond count.
func Duration(ns int64, span hcl.Range) Value {
	return Value{kind: KindDuration, i: ns, span: span}
}

// List takes ownership of elems.
func List(elems []Value, span hcl.Range) Value {
	return Value{kind: KindList, list: elems, span: span}
}

// RecordOf takes ownership of rec. A nil record is treated as empty.
func RecordOf(rec *Record, span hcl.Range) Value {
	if rec == nil {
		rec = NewRecord()
	}
	return Value{kind: KindRecord, rec: rec, span: span}
}

// Error wraps err as an in-band error value. Error values travel through
// the pipeline like any other element.
func Error(err error, span hcl.Range) Value {
	return Value{kind: KindError, err: err, span: span}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Span returns the source range v was read from or attributed to.
func (v Value) Span() hcl.Range { return v.span }

// WithSpan returns a copy of v carrying span.
func (v Value) WithSpan(span hcl.Range) Value {
	v.span = span
	return v
}

// IsError reports whether v is an error value.
func (v Value) IsError() bool { return v.kind == KindError }

// AsBool returns the payload and whether v is a bool. AsInt, AsFloat,
// AsString and AsDuration follow the same pattern.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsDuration returns the nanosecond count of a duration value.
func (v Value) AsDuration() (int64, bool) { return v.i, v.kind == KindDuration }

// AsList returns the elements of a list value. The slice is shared with v
// and must not be modified.
func (v Value) AsList() ([]Value, bool) { return v.list, v.kind == KindList }

// AsRecord returns the record of a record value. The record is shared with
// v and must not be modified; Clone it first.
func (v Value) AsRecord() (*Record, bool) { return v.rec, v.kind == KindRecord }

// AsError returns the wrapped error of an error value.
func (v Value) AsError() (error, bool) { return v.err, v.kind == KindError }

// TypeName describes the type of v the way it is shown to users, e.g.
// "int", "list<string>" or "record<a: int, b: duration>".
func (v Value) TypeName() string {
	switch v.kind {
	case KindList:
		elem := ""
		for _, e := range v.list {
			name := e.TypeName()
			if elem == "" {
				elem = name
			} else if elem != name {
				elem = "any"
				break
			}
		}
		if elem == "" {
			elem = "any"
		}
		return "list<" + elem + ">"
	case KindRecord:
		var sb strings.Builder
		sb.WriteString("record<")
		for i, col := range v.rec.cols {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(col + ": " + v.rec.vals[i].TypeName())
		}
		sb.WriteString(">")
		return sb.String()
	default:
		return v.kind.String()
	}
}

// Equal reports whether v and other hold the same data. Spans are ignored
// and errors compare by message.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNothing:
		return true
	case KindBool:
		return v.b == other.b
	case KindInt, KindDuration:
		return v.i == other.i
	case KindFloat:
		return v.f == other.f
	case KindString:
		return v.s == other.s
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindRecord:
		return v.rec.Equal(other.rec)
	case KindError:
		if v.err == nil || other.err == nil {
			return v.err == other.err
		}
		return v.err.Error() == other.err.Error()
	}
	return false
}

// String renders v for humans. Durations use the compound literal form.
func (v Value) String() string {
	switch v.kind {
	case KindNothing:
		return "nothing"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindDuration:
		return duration.Format(v.i)
	case KindList:
		parts := make([]string, len(v.list))
		for i, e := range v.list {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindRecord:
		parts := make([]string, 0, v.rec.Len())
		for col, val := range v.rec.All() {
			parts = append(parts, col+": "+val.String())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case KindError:
		if v.err == nil {
			return "error"
		}
		return "error: " + v.err.Error()
	}
	return ""
}
