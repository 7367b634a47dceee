// internal/value/cty.go
package value

import (
	"math"
	"math/big"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// FromCty converts a cty value into a Value carrying span on every node.
// Null and unknown values become nothing. Whole numbers that fit an int64
// become ints, every other number a float.
func FromCty(v cty.Value, span hcl.Range) Value {
	if v.IsNull() || !v.IsKnown() {
		return Nothing(span)
	}
	v, _ = v.Unmark()

	ty := v.Type()
	switch {
	case ty == cty.String:
		return String(v.AsString(), span)
	case ty == cty.Bool:
		return Bool(v.True(), span)
	case ty == cty.Number:
		return numberFromCty(v, span)
	case ty.IsListType() || ty.IsSetType() || ty.IsTupleType():
		elems := make([]Value, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			elems = append(elems, FromCty(ev, span))
		}
		return List(elems, span)
	case ty.IsMapType() || ty.IsObjectType():
		rec := NewRecord()
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			rec.Set(k.AsString(), FromCty(ev, span))
		}
		return RecordOf(rec, span)
	}
	return Nothing(span)
}

func numberFromCty(v cty.Value, span hcl.Range) Value {
	var i int64
	if err := gocty.FromCtyValue(v, &i); err == nil {
		return Int(i, span)
	}
	var f float64
	if err := gocty.FromCtyValue(v, &f); err == nil {
		return Float(f, span)
	}
	bf, _ := v.AsBigFloat().Float64()
	return Float(bf, span)
}

// ToCty converts v into a cty value for rendering. Durations become their
// nanosecond count, errors an object with a single error attribute, and
// nothing a null string. Record column order is not preserved by cty.
func (v Value) ToCty() cty.Value {
	switch v.kind {
	case KindBool:
		return cty.BoolVal(v.b)
	case KindInt, KindDuration:
		return cty.NumberIntVal(v.i)
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return cty.StringVal(strconv.FormatFloat(v.f, 'g', -1, 64))
		}
		return cty.NumberVal(new(big.Float).SetFloat64(v.f))
	case KindString:
		return cty.StringVal(v.s)
	case KindList:
		if len(v.list) == 0 {
			return cty.EmptyTupleVal
		}
		elems := make([]cty.Value, len(v.list))
		for i, e := range v.list {
			elems[i] = e.ToCty()
		}
		return cty.TupleVal(elems)
	case KindRecord:
		if v.rec.Len() == 0 {
			return cty.EmptyObjectVal
		}
		attrs := make(map[string]cty.Value, v.rec.Len())
		for col, val := range v.rec.All() {
			attrs[col] = val.ToCty()
		}
		return cty.ObjectVal(attrs)
	case KindError:
		msg := "error"
		if v.err != nil {
			msg = v.err.Error()
		}
		return cty.ObjectVal(map[string]cty.Value{"error": cty.StringVal(msg)})
	}
	return cty.NullVal(cty.String)
}
