package mueller

import (
	"strings"
	"testing"
)

func TestFindListHeads(t *testing.T) {
	tests := []struct {
		name        string
		article     string
		wantHeaders []string
		wantKinds   []ListKind
	}{
		{
			name:        "no heads",
			article:     "just a plain article",
			wantHeaders: nil,
			wantKinds:   nil,
		},
		{
			name:        "roman",
			article:     "x _I hello _II world _IV more",
			wantHeaders: []string{"_I", "_II", "_IV"},
			wantKinds:   []ListKind{ListRoman, ListRoman, ListRoman},
		},
		{
			name:        "decimal dot",
			article:     "1. one 2. two 12. twelve",
			wantHeaders: []string{"1.", "2.", "12."},
			wantKinds:   []ListKind{ListDecimalDot, ListDecimalDot, ListDecimalDot},
		},
		{
			name:        "decimal angle rewritten",
			article:     "1> one 10> ten",
			wantHeaders: []string{"1)", "10)"},
			wantKinds:   []ListKind{ListDecimalAngle, ListDecimalAngle},
		},
		{
			name:        "cyrillic angle rewritten",
			article:     "а> первое б> второе я> последнее",
			wantHeaders: []string{"а)", "б)", "я)"},
			wantKinds:   []ListKind{ListCyrillicAngle, ListCyrillicAngle, ListCyrillicAngle},
		},
		{
			name:        "mixed kinds sorted by position",
			article:     "_I 1. а> x б> y 2. z _II 1> w",
			wantHeaders: []string{"_I", "1.", "а)", "б)", "2.", "_II", "1)"},
			wantKinds: []ListKind{
				ListRoman, ListDecimalDot, ListCyrillicAngle, ListCyrillicAngle,
				ListDecimalDot, ListRoman, ListDecimalAngle,
			},
		},
		{
			name:        "latin letter angle is not a head",
			article:     "a> b> c>",
			wantHeaders: nil,
			wantKinds:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			heads := FindListHeads(tt.article)
			if len(heads) != len(tt.wantHeaders) {
				t.Fatalf("got %d heads, want %d: %+v", len(heads), len(tt.wantHeaders), heads)
			}
			for i, h := range heads {
				if h.Header != tt.wantHeaders[i] {
					t.Errorf("heads[%d].Header = %q, want %q", i, h.Header, tt.wantHeaders[i])
				}
				if h.Kind != tt.wantKinds[i] {
					t.Errorf("heads[%d].Kind = %v, want %v", i, h.Kind, tt.wantKinds[i])
				}
				if i > 0 && heads[i-1].Start >= h.Start {
					t.Errorf("heads not sorted: %d >= %d", heads[i-1].Start, h.Start)
				}
			}
		})
	}
}

func TestAssignLevels(t *testing.T) {
	heads := FindListHeads("_I 1. а> x б> y 2. z _II 1> w")
	levels := AssignLevels(heads)

	want := map[ListKind]int{
		ListRoman:         0,
		ListDecimalDot:    1,
		ListCyrillicAngle: 2,
		ListDecimalAngle:  3,
	}
	if len(levels) != len(want) {
		t.Fatalf("got %d levels, want %d", len(levels), len(want))
	}
	for kind, lvl := range want {
		if levels[kind] != lvl {
			t.Errorf("level[%v] = %d, want %d", kind, levels[kind], lvl)
		}
	}
}

func TestAssignLevels_FirstAppearance(t *testing.T) {
	// Decimal angle appears before Roman here, so it becomes the outer level.
	levels := AssignLevels(FindListHeads("1> x _I y 2> z"))
	if levels[ListDecimalAngle] != 0 {
		t.Errorf("decimal-angle level = %d, want 0", levels[ListDecimalAngle])
	}
	if levels[ListRoman] != 1 {
		t.Errorf("roman level = %d, want 1", levels[ListRoman])
	}
}

func TestSegmentArticle_Example(t *testing.T) {
	article := "a trial; an experiment [tɛst] _I hello _II world"
	segs := SegmentArticle(article)

	want := []Segment{
		{Level: 0, Header: "", HeaderWidth: 0, Text: "a trial; an experiment [tɛst] "},
		{Level: 0, Header: "_I", HeaderWidth: 4, Text: " hello "},
		{Level: 0, Header: "_II", HeaderWidth: 4, Text: " world"},
	}
	if len(segs) != len(want) {
		t.Fatalf("got %d segments, want %d: %+v", len(segs), len(want), segs)
	}
	for i, w := range want {
		got := segs[i]
		if got.Level != w.Level || got.Header != w.Header || got.HeaderWidth != w.HeaderWidth || got.Text != w.Text {
			t.Errorf("segment %d = %+v, want %+v", i, got, w)
		}
	}
}

func TestSegmentArticle_NoHeads(t *testing.T) {
	article := "a word without any lists"
	segs := SegmentArticle(article)

	if len(segs) != 1 {
		t.Fatalf("got %d segments, want 1", len(segs))
	}
	s := segs[0]
	if s.Level != 0 || s.Header != "" || s.HeaderWidth != 0 || s.Text != article {
		t.Errorf("unexpected segment %+v", s)
	}
}

func TestSegmentArticle_HeadAtStart(t *testing.T) {
	segs := SegmentArticle("1. first 2. second")
	if len(segs) != 2 {
		t.Fatalf("got %d segments, want 2 (no leading segment)", len(segs))
	}
	if segs[0].Header != "1." || segs[0].Text != " first " {
		t.Errorf("segment 0 = %+v", segs[0])
	}
	if segs[1].Header != "2." || segs[1].Text != " second" {
		t.Errorf("segment 1 = %+v", segs[1])
	}
}

func TestSegmentArticle_Reconstructs(t *testing.T) {
	articles := []string{
		"",
		"plain",
		"a trial; an experiment [tɛst] _I hello _II world",
		"_I 1. а> x б> y 2. z _II 1> w",
		"[ə'bændən] _v. 1> покидать; оставлять 2> отказываться 3> предаваться",
		"1.2.3.",
		"_I_II_III",
	}

	for _, article := range articles {
		segs := SegmentArticle(article)
		heads := FindListHeads(article)

		var b strings.Builder
		hi := 0
		for _, s := range segs {
			if s.Header != "" {
				h := heads[hi]
				b.WriteString(article[h.Start:h.End])
				hi++
			}
			b.WriteString(s.Text)
		}

		if got := b.String(); got != article {
			t.Errorf("reconstruction mismatch:\n got %q\nwant %q", got, article)
		}
	}
}

func TestSegmentArticle_LevelsBounded(t *testing.T) {
	article := "x _I 1. а> q 2> r _II б> s 3. t"
	segs := SegmentArticle(article)
	kinds := make(map[ListKind]bool)
	for _, h := range FindListHeads(article) {
		kinds[h.Kind] = true
	}

	maxSeen := -1
	for _, s := range segs {
		if s.Level >= len(kinds) {
			t.Errorf("level %d exceeds distinct kinds %d", s.Level, len(kinds))
		}
		// A new level can only be one more than the highest seen so far.
		if s.Level > maxSeen+1 {
			t.Errorf("level %d skips ahead of %d", s.Level, maxSeen)
		}
		maxSeen = max(maxSeen, s.Level)
	}
}

func TestListKind_HeaderWidth(t *testing.T) {
	tests := []struct {
		kind ListKind
		want int
		name string
	}{
		{ListRoman, 4, "roman"},
		{ListDecimalDot, 3, "decimal-dot"},
		{ListDecimalAngle, 3, "decimal-angle"},
		{ListCyrillicAngle, 3, "cyrillic-angle"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.kind.HeaderWidth(); got != tt.want {
				t.Errorf("HeaderWidth() = %d, want %d", got, tt.want)
			}
			if got := tt.kind.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
		})
	}
}
