// internal/cellpath/path.go
package cellpath

import (
	"reflect"
	"strconv"
	"strings"
)

// String serializes the Path into its canonical string representation.
// Indexes attach to the preceding column as `name[i]`.
func (p Path) String() string {
	var sb strings.Builder
	for i, m := range p.Members {
		if m.IsIndex() {
			sb.WriteString("[" + strconv.Itoa(m.Index) + "]")
			continue
		}
		if i > 0 {
			sb.WriteRune('.')
		}
		sb.WriteString(m.Name)
	}
	return sb.String()
}

// String renders a single member the way it appears in a path.
func (m Member) String() string {
	if m.IsIndex() {
		return "[" + strconv.Itoa(m.Index) + "]"
	}
	return m.Name
}

// Equal checks for deep equality between two paths.
func (p Path) Equal(other Path) bool {
	if len(p.Members) == 0 || len(other.Members) == 0 {
		return len(p.Members) == len(other.Members)
	}
	return reflect.DeepEqual(p.Members, other.Members)
}
