package duration

import (
	"fmt"
	"iter"
	"unicode"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// Token is one whitespace-separated piece of a compound literal.
type Token struct {
	Text  string
	Range hcl.Range
}

// Parse sums every token of a compound literal such as `1day 2hr`.
// An empty or all-whitespace string is zero. The sum is checked for
// overflow after every token; the first failure is returned.
func Parse(s string, rng hcl.Range) (int64, error) {
	var total int64
	for tok := range Tokens(s, rng) {
		ns, err := ParseToken(tok.Text, tok.Range)
		if err != nil {
			return 0, err
		}
		sum, ok := add(total, ns)
		if !ok {
			return 0, newParseError(tok.Text, tok.Range, fmt.Errorf("%w: sum exceeds range at %q", ErrOverflow, tok.Text))
		}
		total = sum
	}
	return total, nil
}

// Tokens splits s on runs of whitespace. Each token's range is expressed
// in the coordinates of rng, which is the range s occupies in its source.
func Tokens(s string, rng hcl.Range) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		// The fragment scanner indexes s with Start.Byte, so only the line
		// and column are handed over and the byte offset is added back.
		start, offset := rng.Start, rng.Start.Byte
		if start.Line == 0 {
			start.Line, start.Column = 1, 1
		}
		start.Byte = 0

		sc := hcl.NewRangeScannerFragment([]byte(s), rng.Filename, start, scanFields)
		for sc.Scan() {
			b := sc.Bytes()
			r, _ := utf8.DecodeRune(b)
			if unicode.IsSpace(r) {
				continue
			}
			tokRange := sc.Range()
			tokRange.Start.Byte += offset
			tokRange.End.Byte += offset
			if !yield(Token{Text: string(b), Range: tokRange}) {
				return
			}
		}
	}
}

// scanFields is a bufio.SplitFunc that returns alternating runs of
// whitespace and non-whitespace, so the range scanner sees every byte.
func scanFields(data []byte, atEOF bool) (int, []byte, error) {
	if len(data) == 0 {
		return 0, nil, nil
	}
	r, w := utf8.DecodeRune(data)
	space := unicode.IsSpace(r)
	i := w
	for i < len(data) {
		r, w = utf8.DecodeRune(data[i:])
		if unicode.IsSpace(r) != space {
			break
		}
		i += w
	}
	return i, data[:i], nil
}
