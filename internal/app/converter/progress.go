package converter

import (
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/mueller-dict/internal/mueller"
)

// progress prints the first letter of the current headword each time it
// changes, so a run over a sorted dictionary reads "abcd...". Write errors are
// ignored: progress is cosmetic.
type progress struct {
	w    io.Writer
	prev rune
}

func newProgress(w io.Writer) *progress {
	return &progress{w: w}
}

func (p *progress) start() {
	p.write("Converting dictionary: ")
}

// observe looks at the first character of a raw source line.
func (p *progress) observe(line []byte) {
	if p.w == nil || len(line) == 0 {
		return
	}
	r, _ := utf8.DecodeRuneInString(mueller.DecodeLossy(line[:1]))
	if !unicode.IsLetter(r) {
		return
	}
	r = unicode.ToLower(r)
	if r != p.prev {
		p.prev = r
		p.write(string(r))
	}
}

func (p *progress) done() {
	p.write("\ndone\n")
}

// abort ends the progress line so that a following log record starts on a
// line of its own.
func (p *progress) abort() {
	p.write("\n")
}

func (p *progress) write(s string) {
	if p.w == nil {
		return
	}
	_, _ = io.WriteString(p.w, s)
}
