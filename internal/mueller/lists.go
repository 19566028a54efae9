package mueller

import (
	"regexp"
	"sort"
	"strings"
)

// ListKind is a kind of list head that can appear inside an article.
type ListKind int

const (
	ListRoman         ListKind = iota // _I, _II, _IV
	ListDecimalDot                    // 1. 12.
	ListDecimalAngle                  // 1> 12>
	ListCyrillicAngle                 // а> б>
)

type listKindInfo struct {
	name        string
	re          *regexp.Regexp
	headerWidth int
}

var listKindInfos = map[ListKind]listKindInfo{
	ListRoman:         {"roman", regexp.MustCompile(`_[IV]{1,3}`), 4},
	ListDecimalDot:    {"decimal-dot", regexp.MustCompile(`\d{1,2}\.`), 3},
	ListDecimalAngle:  {"decimal-angle", regexp.MustCompile(`\d{1,2}>`), 3},
	ListCyrillicAngle: {"cyrillic-angle", regexp.MustCompile(`[а-я]>`), 3},
}

// listKinds is the matching order. Heads starting at the same offset keep it.
var listKinds = []ListKind{ListRoman, ListDecimalDot, ListDecimalAngle, ListCyrillicAngle}

func (k ListKind) String() string {
	if info, ok := listKindInfos[k]; ok {
		return info.name
	}
	return "unknown"
}

// HeaderWidth returns the number of columns reserved for the list label.
func (k ListKind) HeaderWidth() int {
	return listKindInfos[k].headerWidth
}

// ListHead is one list head found in an article.
type ListHead struct {
	Start  int // byte offset of the match
	End    int // byte offset just past the match
	Kind   ListKind
	Header string // label as rendered, "1>" becomes "1)"
}

// Segment is a span of article text rendered as one wrapped block.
type Segment struct {
	Start       int
	End         int
	Level       int
	Header      string
	HeaderWidth int
	Text        string
}

// FindListHeads returns all list heads of the article ordered by position.
func FindListHeads(article string) []ListHead {
	var heads []ListHead
	for _, kind := range listKinds {
		for _, loc := range listKindInfos[kind].re.FindAllStringIndex(article, -1) {
			header := article[loc[0]:loc[1]]
			if strings.HasSuffix(header, ">") {
				header = strings.TrimSuffix(header, ">") + ")"
			}
			heads = append(heads, ListHead{
				Start:  loc[0],
				End:    loc[1],
				Kind:   kind,
				Header: header,
			})
		}
	}

	sort.SliceStable(heads, func(i, j int) bool {
		return heads[i].Start < heads[j].Start
	})
	return heads
}

// AssignLevels gives every list kind a nesting level in order of first
// appearance, starting at 0.
func AssignLevels(heads []ListHead) map[ListKind]int {
	levels := make(map[ListKind]int)
	for _, h := range heads {
		if _, ok := levels[h.Kind]; !ok {
			levels[h.Kind] = len(levels)
		}
	}
	return levels
}

// SegmentArticle partitions the article into blocks, one per list head plus an
// optional leading block without a head.
func SegmentArticle(article string) []Segment {
	heads := FindListHeads(article)
	if len(heads) == 0 {
		return []Segment{{Start: 0, End: len(article), Text: article}}
	}

	levels := AssignLevels(heads)
	segments := make([]Segment, 0, len(heads)+1)

	if heads[0].Start > 0 {
		segments = append(segments, Segment{
			Start: 0,
			End:   heads[0].Start,
			Text:  article[:heads[0].Start],
		})
	}

	for i, h := range heads {
		end := len(article)
		if i+1 < len(heads) {
			end = heads[i+1].Start
		}
		// Overlapping heads of different kinds leave nothing for the
		// earlier one.
		start := min(h.End, end)
		segments = append(segments, Segment{
			Start:       start,
			End:         end,
			Level:       levels[h.Kind],
			Header:      h.Header,
			HeaderWidth: h.Kind.HeaderWidth(),
			Text:        article[start:end],
		})
	}

	return segments
}
