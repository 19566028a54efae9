// Package mueller converts Mueller English-Russian dictionary lines into
// formatted DICT articles. Pure functions: raw KOI8-R bytes in, UTF-8 text out.
// No I/O dependencies.
package mueller

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/heartmarshall/mueller-dict/internal/domain"
)

// Source files use "WORD  ARTICLE" (two spaces between headword and article).
var headwordSep = []byte("  ")

var transcriptionRe = regexp.MustCompile(`\[(.*?)\]`)

// ParseLine splits a raw dictionary line into headword and article.
// Both are decoded from KOI8-R; transcription spans inside the article are
// converted to IPA.
func ParseLine(line []byte) (string, string, error) {
	idx := bytes.Index(line, headwordSep)
	if idx == -1 {
		return "", "", domain.NewLineError(DecodeLossy(line), domain.ErrMalformedLine)
	}

	word, err := Decode(line[:idx])
	if err != nil {
		return "", "", domain.NewLineError(DecodeLossy(line), err)
	}

	article, err := decodeArticle(line[idx+len(headwordSep):])
	if err != nil {
		return "", "", domain.NewLineError(DecodeLossy(line), err)
	}

	return word, article, nil
}

// decodeArticle decodes KOI8-R text, passing [...] spans through the
// transcription table instead.
func decodeArticle(raw []byte) (string, error) {
	var b strings.Builder
	b.Grow(len(raw) * 2)

	last := 0
	for _, loc := range transcriptionRe.FindAllIndex(raw, -1) {
		if loc[0] > last {
			text, err := Decode(raw[last:loc[0]])
			if err != nil {
				return "", err
			}
			b.WriteString(text)
		}
		b.WriteString(TranscriptionToIPA(raw[loc[0]:loc[1]]))
		last = loc[1]
	}

	if last != len(raw) {
		text, err := Decode(raw[last:])
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}

	return b.String(), nil
}

// Decode converts KOI8-R bytes to a UTF-8 string.
func Decode(raw []byte) (string, error) {
	out, err := charmap.KOI8R.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: koi8-r: %v", domain.ErrDecode, err)
	}
	return string(out), nil
}

// DecodeLossy decodes KOI8-R for display purposes (error messages, progress).
// It never fails; undecodable input is returned with invalid bytes replaced.
func DecodeLossy(raw []byte) string {
	s, err := Decode(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "�")
	}
	return s
}
