// internal/cellpath/parser.go
package cellpath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// segmentRegex matches a single segment of a path, e.g., `name`, `name[1]`,
// `name[1][2]` or `[0]`.
var segmentRegex = regexp.MustCompile(`^([^\[\]]*)((?:\[\d+\])*)$`)

var indexRegex = regexp.MustCompile(`\[(\d+)\]`)

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Parse creates a Path by parsing its canonical string representation.
// The empty string parses to the empty path.
func Parse(raw string) (Path, error) {
	if raw == "" {
		return Path{}, nil
	}

	var p Path
	for _, segmentStr := range strings.Split(raw, ".") {
		if segmentStr == "" {
			return Path{}, fmt.Errorf("cell path %q contains empty segment", raw)
		}

		matches := segmentRegex.FindStringSubmatch(segmentStr)
		if matches == nil {
			return Path{}, fmt.Errorf("invalid cell path segment format: %q", segmentStr)
		}

		name, indexes := matches[1], matches[2]
		switch {
		case name == "" && indexes == "":
			return Path{}, fmt.Errorf("invalid cell path segment format: %q", segmentStr)
		case isDigits(name):
			i, err := strconv.Atoi(name)
			if err != nil {
				return Path{}, fmt.Errorf("cell path index %q out of range: %w", name, err)
			}
			p.Members = append(p.Members, Index(i))
		case name != "":
			p.Members = append(p.Members, Column(name))
		}

		for _, m := range indexRegex.FindAllStringSubmatch(indexes, -1) {
			i, err := strconv.Atoi(m[1])
			if err != nil {
				return Path{}, fmt.Errorf("cell path index %q out of range: %w", m[1], err)
			}
			p.Members = append(p.Members, Index(i))
		}
	}

	return p, nil
}

// ParseAll parses every raw path, stopping at the first invalid one.
func ParseAll(raws []string) ([]Path, error) {
	paths := make([]Path, 0, len(raws))
	for _, raw := range raws {
		p, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
