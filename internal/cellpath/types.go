// internal/cellpath/types.go
package cellpath

// Member is a single step of a cell path: either a column name or a list
// index.
type Member struct {
	Name  string
	Index int // -1 indicates a column member.
}

// Column creates a member selecting a record column.
func Column(name string) Member {
	return Member{Name: name, Index: -1}
}

// Index creates a member selecting a list element.
func Index(i int) Member {
	return Member{Index: i}
}

// IsIndex returns true if the member selects a list element.
func (m Member) IsIndex() bool {
	return m.Index != -1
}

// Path is an ordered sequence of members. The zero Path selects the whole
// value.
type Path struct {
	Members []Member
}

// New builds a path from members.
func New(members ...Member) Path {
	return Path{Members: members}
}

// IsEmpty returns true if the path selects the whole value.
func (p Path) IsEmpty() bool {
	return len(p.Members) == 0
}
