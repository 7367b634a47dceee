// Package duration parses and formats duration literals such as `7min` or
// `1day 2hr 3min 4sec` into signed nanosecond counts.
//
// A literal is one or more `<integer><unit>` tokens separated by whitespace.
// Every token keeps the exact hcl.Range it occupies in the surrounding
// source, so failures can point at the offending characters.
package duration
