package mueller

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	// TextWidth is the maximum width of an output line, prefix included.
	TextWidth = 75
	// IndentWidth is the number of columns per nesting level.
	IndentWidth = 3
)

// Cyrillic is "ambiguous" in East Asian locales; widths must not depend on
// the environment.
var widthCond = &runewidth.Condition{EastAsianWidth: false, StrictEmojiNeutral: true}

// FormatBlock wraps one segment. The first line starts with the level
// indentation and the header padded to headerWidth; continuation lines are
// aligned under the text after the header.
func FormatBlock(text string, level int, header string, headerWidth int) []string {
	text = strings.TrimSpace(text)

	indent := strings.Repeat(" ", IndentWidth*level)
	first := indent + padRight(header, headerWidth)
	other := strings.Repeat(" ", IndentWidth*level+headerWidth)

	// A head directly followed by another head still gets its label printed.
	if text == "" && header != "" {
		return []string{strings.TrimRight(first, " ")}
	}

	return Wrap(text, TextWidth, first, other)
}

// Wrap fills text into lines of at most width columns, breaking only at
// whitespace. A word that does not fit on an empty line is put on a line of
// its own instead of being split.
func Wrap(text string, width int, initial, subsequent string) []string {
	chunks := splitChunks(text)

	var lines []string
	i := 0
	for i < len(chunks) {
		indent := subsequent
		if len(lines) == 0 {
			indent = initial
		}

		// Whitespace at a line break is dropped; leading whitespace of the
		// paragraph is kept.
		if len(lines) > 0 && chunks[i].space {
			i++
			continue
		}

		avail := max(width-widthCond.StringWidth(indent), 1)

		var cur []string
		curWidth := 0
		for i < len(chunks) {
			w := widthCond.StringWidth(chunks[i].text)
			if curWidth+w > avail {
				break
			}
			cur = append(cur, chunks[i].text)
			curWidth += w
			i++
		}

		if len(cur) == 0 {
			cur = append(cur, chunks[i].text)
			i++
		}

		if strings.TrimSpace(cur[len(cur)-1]) == "" {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, indent+strings.Join(cur, ""))
		}
	}

	return lines
}

type chunk struct {
	text  string
	space bool
}

// splitChunks splits text into alternating runs of words and whitespace.
// Every whitespace character becomes a single space.
func splitChunks(text string) []chunk {
	var chunks []chunk
	var b strings.Builder
	inSpace := false

	flush := func() {
		if b.Len() > 0 {
			chunks = append(chunks, chunk{text: b.String(), space: inSpace})
			b.Reset()
		}
	}

	for _, r := range text {
		isSpace := isBreakSpace(r)
		if isSpace != inSpace {
			flush()
			inSpace = isSpace
		}
		if isSpace {
			b.WriteByte(' ')
		} else {
			b.WriteRune(r)
		}
	}
	flush()

	return chunks
}

func isBreakSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func padRight(s string, width int) string {
	w := widthCond.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
