package duration

// Unit is one of the recognized duration units.
type Unit int

const (
	Nanosecond Unit = iota
	Microsecond
	Millisecond
	Second
	Minute
	Hour
	Day
	Week
)

// Help is the user-facing list of accepted unit suffixes.
const Help = "supported units are ns, us/µs, ms, sec, min, hr, day, and wk"

var multipliers = [...]int64{
	Nanosecond:  1,
	Microsecond: 1_000,
	Millisecond: 1_000_000,
	Second:      1_000_000_000,
	Minute:      60 * 1_000_000_000,
	Hour:        60 * 60 * 1_000_000_000,
	Day:         24 * 60 * 60 * 1_000_000_000,
	Week:        7 * 24 * 60 * 60 * 1_000_000_000,
}

var canonical = [...]string{
	Nanosecond:  "ns",
	Microsecond: "us",
	Millisecond: "ms",
	Second:      "sec",
	Minute:      "min",
	Hour:        "hr",
	Day:         "day",
	Week:        "wk",
}

type suffix struct {
	text string
	unit Unit
}

// suffixTable is ordered smallest unit first; both micro spellings
// (U+00B5 MICRO SIGN and U+03BC GREEK SMALL LETTER MU) map to Microsecond.
var suffixTable = []suffix{
	{"ns", Nanosecond},
	{"us", Microsecond},
	{"µs", Microsecond},
	{"μs", Microsecond},
	{"ms", Millisecond},
	{"sec", Second},
	{"min", Minute},
	{"hr", Hour},
	{"day", Day},
	{"wk", Week},
}

var suffixIndex = func() map[string]Unit {
	m := make(map[string]Unit, len(suffixTable))
	for _, s := range suffixTable {
		m[s.text] = s.unit
	}
	return m
}()

// Lookup returns the unit spelled exactly as s.
func Lookup(s string) (Unit, bool) {
	u, ok := suffixIndex[s]
	return u, ok
}

// Suffixes returns every accepted spelling in table order.
func Suffixes() []string {
	out := make([]string, len(suffixTable))
	for i, s := range suffixTable {
		out[i] = s.text
	}
	return out
}

// Nanoseconds returns the multiplier of u.
func (u Unit) Nanoseconds() int64 {
	return multipliers[u]
}

// String returns the canonical suffix of u.
func (u Unit) String() string {
	return canonical[u]
}
