package duration

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/hashicorp/hcl/v2"
)

// ParseToken parses a single `<integer><unit>` token into nanoseconds.
// rng is the token's position in the surrounding source; it is only used
// for error reporting.
func ParseToken(s string, rng hcl.Range) (int64, error) {
	n := integerPrefix(s)
	digits, unitText := s[:n], s[n:]

	if digits == "" || digits == "-" {
		return 0, newParseError(s, rng, fmt.Errorf("%w: missing magnitude", ErrMalformedToken))
	}
	if unitText == "" {
		return 0, newParseError(s, rng, fmt.Errorf("%w: missing unit", ErrMalformedToken))
	}

	unit, ok := Lookup(unitText)
	if !ok {
		return 0, newParseError(s, rng, fmt.Errorf("%w: unrecognized unit %q", ErrMalformedToken, unitText))
	}

	magnitude, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, newParseError(s, rng, fmt.Errorf("%w: magnitude %s", ErrOverflow, digits))
		}
		return 0, newParseError(s, rng, fmt.Errorf("%w: %v", ErrMalformedToken, err))
	}

	ns, ok := mul(magnitude, unit.Nanoseconds())
	if !ok {
		return 0, newParseError(s, rng, fmt.Errorf("%w: %s%s", ErrOverflow, digits, unit))
	}
	return ns, nil
}

// integerPrefix returns the length of the leading `-?[0-9]*` run of s.
func integerPrefix(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}

func mul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if c/b != a || (a == -1 && b == minInt64) || (b == -1 && a == minInt64) {
		return 0, false
	}
	return c, true
}

func add(a, b int64) (int64, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return 0, false
	}
	return c, true
}

const minInt64 = -1 << 63
