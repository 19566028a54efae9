package mueller

// FormattedEntry is a converted dictionary entry ready to be written out.
type FormattedEntry struct {
	Headword string
	Lines    []string
}

// ConvertLine parses a raw dictionary line and formats its article.
func ConvertLine(line []byte) (FormattedEntry, error) {
	word, article, err := ParseLine(line)
	if err != nil {
		return FormattedEntry{}, err
	}

	return FormattedEntry{
		Headword: word,
		Lines:    FormatArticle(article),
	}, nil
}

// FormatArticle renders an already decoded article as wrapped lines.
func FormatArticle(article string) []string {
	var lines []string
	for _, seg := range SegmentArticle(article) {
		lines = append(lines, FormatBlock(seg.Text, seg.Level, seg.Header, seg.HeaderWidth)...)
	}
	return lines
}
