package duration

import (
	"strconv"
	"strings"
)

// Format renders ns as a compound literal that Parse accepts, largest
// unit first: 93784000000000 becomes `1day 2hr 3min 4sec`. Zero renders as
// `0sec`. Every component of a negative value carries the sign, so the sum
// of the parts is the original value.
func Format(ns int64) string {
	if ns == 0 {
		return "0" + Second.String()
	}

	sign := ""
	// Work in uint64 so math.MinInt64 has a magnitude.
	rest := uint64(ns)
	if ns < 0 {
		sign = "-"
		rest = uint64(-(ns + 1)) + 1
	}

	var b strings.Builder
	for u := Week; u >= Nanosecond; u-- {
		m := uint64(u.Nanoseconds())
		q := rest / m
		if q == 0 {
			continue
		}
		rest -= q * m
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(sign)
		b.WriteString(strconv.FormatUint(q, 10))
		b.WriteString(u.String())
	}
	return b.String()
}
