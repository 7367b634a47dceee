// internal/value/doc.go

/*
Package value defines the tagged value tree that flows through a durconv
pipeline.

A Value is one of nothing, bool, int, float, string, duration, list, record
or error. Every value remembers the source range it was read from so that
failures further down the pipeline can point back at the original input.

Values are immutable once built. Follow reads at a cell path and UpdateAt
returns a new tree with only the touched spine copied; the receiver is never
modified.
*/
package value
