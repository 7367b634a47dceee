// internal/cellpath/doc.go

/*
Package cellpath provides a structured representation of cell paths, the
addresses that select a location inside a tree of records and lists.

The canonical format is a dot-separated sequence of segments, where each
segment is a column name optionally followed by bracketed indexes, and a
segment made only of digits is itself an index:

	value
	rows[0].value
	rows.0.value
	[2].name

An empty path selects the whole value.
*/
package cellpath
