// internal/value/path.go
package value

import (
	"errors"
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/cellpath"
)

// ErrPathResolution is the sentinel wrapped by every PathError.
var ErrPathResolution = errors.New("cell path resolution failed")

// PathError reports the member of a cell path that could not be resolved,
// together with the span of the value it was applied to.
type PathError struct {
	Path   cellpath.Path
	Member cellpath.Member
	Span   hcl.Range
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("cannot follow cell path %q at %s: %s", e.Path.String(), e.Member.String(), e.Reason)
}

func (e *PathError) Unwrap() error {
	return ErrPathResolution
}

// Diagnostics presents the failure as an HCL diagnostic.
func (e *PathError) Diagnostics() hcl.Diagnostics {
	d := &hcl.Diagnostic{
		Severity: hcl.DiagError,
		Summary:  "Cell path not found",
		Detail:   fmt.Sprintf("Cannot follow %q: %s.", e.Path.String(), e.Reason),
	}
	if e.Span.Filename != "" {
		rng := e.Span
		d.Subject = &rng
	}
	return hcl.Diagnostics{d}
}

// Follow returns the value at p. A column applied to a list collects that
// column from every element. An error value met on the way is returned as
// is.
func (v Value) Follow(p cellpath.Path) (Value, error) {
	out, err := v.follow(p.Members)
	if err != nil {
		return Value{}, withPath(err, p)
	}
	return out, nil
}

func (v Value) follow(members []cellpath.Member) (Value, error) {
	cur := v
	for i, m := range members {
		if cur.kind == KindError {
			return cur, nil
		}
		if cur.kind == KindList && !m.IsIndex() {
			out := make([]Value, len(cur.list))
			for j, elem := range cur.list {
				got, err := elem.follow(members[i:])
				if err != nil {
					return Value{}, err
				}
				out[j] = got
			}
			return List(out, cur.span), nil
		}
		next, err := cur.step(m)
		if err != nil {
			return Value{}, err
		}
		cur = next
	}
	return cur, nil
}

// UpdateAt returns a copy of v where the value at p is replaced by fn of
// it. Only the containers along p are copied. A column applied to a list
// updates that column in every element. An error value met before the end
// of p fails the update with that error.
func (v Value) UpdateAt(p cellpath.Path, fn func(Value) Value) (Value, error) {
	out, err := v.updateAt(p.Members, fn)
	if err != nil {
		return Value{}, withPath(err, p)
	}
	return out, nil
}

func (v Value) updateAt(members []cellpath.Member, fn func(Value) Value) (Value, error) {
	if len(members) == 0 {
		return fn(v), nil
	}
	m := members[0]

	switch v.kind {
	case KindError:
		if v.err == nil {
			return Value{}, &PathError{Member: m, Span: v.span, Reason: "cannot follow an error value"}
		}
		return Value{}, v.err

	case KindRecord:
		child, err := v.step(m)
		if err != nil {
			return Value{}, err
		}
		updated, err := child.updateAt(members[1:], fn)
		if err != nil {
			return Value{}, err
		}
		rec := v.rec.Clone()
		rec.Set(m.Name, updated)
		return RecordOf(rec, v.span), nil

	case KindList:
		if !m.IsIndex() {
			out := make([]Value, len(v.list))
			for i, elem := range v.list {
				updated, err := elem.updateAt(members, fn)
				if err != nil {
					return Value{}, err
				}
				out[i] = updated
			}
			return List(out, v.span), nil
		}
		child, err := v.step(m)
		if err != nil {
			return Value{}, err
		}
		updated, err := child.updateAt(members[1:], fn)
		if err != nil {
			return Value{}, err
		}
		out := slices.Clone(v.list)
		out[m.Index] = updated
		return List(out, v.span), nil

	default:
		return v.step(m)
	}
}

// step resolves a single member against v.
func (v Value) step(m cellpath.Member) (Value, error) {
	switch v.kind {
	case KindRecord:
		if m.IsIndex() {
			return Value{}, &PathError{Member: m, Span: v.span, Reason: "cannot index into a record"}
		}
		child, ok := v.rec.Get(m.Name)
		if !ok {
			return Value{}, &PathError{Member: m, Span: v.span, Reason: fmt.Sprintf("column %q not found", m.Name)}
		}
		return child, nil
	case KindList:
		if !m.IsIndex() {
			return Value{}, &PathError{Member: m, Span: v.span, Reason: "cannot select a column of a list"}
		}
		if m.Index >= len(v.list) {
			return Value{}, &PathError{
				Member: m,
				Span:   v.span,
				Reason: fmt.Sprintf("index %d out of range for list of length %d", m.Index, len(v.list)),
			}
		}
		return v.list[m.Index], nil
	default:
		reason := fmt.Sprintf("cannot select column %q of %s", m.Name, v.TypeName())
		if m.IsIndex() {
			reason = fmt.Sprintf("cannot index into %s", v.TypeName())
		}
		return Value{}, &PathError{Member: m, Span: v.span, Reason: reason}
	}
}

// withPath records the full path on a PathError raised deeper down.
func withPath(err error, p cellpath.Path) error {
	var pe *PathError
	if errors.As(err, &pe) && pe.Path.IsEmpty() {
		pe.Path = p
	}
	return err
}
