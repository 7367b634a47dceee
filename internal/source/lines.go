package source

import (
	"bufio"
	"bytes"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/durconv/internal/pipeline"
	"github.com/vk/durconv/internal/value"
)

// loadLines streams every non-blank line of src as a string value. Lines are
// scanned lazily as the stream is pulled.
func loadLines(filename string, src []byte) pipeline.Data {
	return pipeline.FromStream(func(yield func(value.Value) bool) {
		sc := hcl.NewRangeScanner(src, filename, bufio.ScanLines)
		for sc.Scan() {
			line := sc.Bytes()
			if len(bytes.TrimSpace(line)) == 0 {
				continue
			}
			if !yield(value.String(string(line), sc.Range())) {
				return
			}
		}
	}, wholeRange(filename, src))
}
