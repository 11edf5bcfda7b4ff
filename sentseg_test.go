package sentseg

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func newTestSegmenter(t *testing.T) *Segmenter {
	t.Helper()
	seg, err := New()
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return seg
}

func TestSegmentAll_BasicSplits(t *testing.T) {
	seg := newTestSegmenter(t)

	tests := []struct {
		name string
		lang string
		text string
		want []string
	}{
		{
			name: "two sentences with trailing space on the first",
			lang: "en",
			text: "Hello world. This is a test.",
			want: []string{"Hello world. ", "This is a test."},
		},
		{
			name: "title abbreviation does not split",
			lang: "en",
			text: "This is Dr. Watson. Thanks for having me!",
			want: []string{"This is Dr. Watson. ", "Thanks for having me!"},
		},
		{
			name: "capitalized words split normally",
			lang: "en",
			text: "Roses Are Red. Violets Are Blue!",
			want: []string{"Roses Are Red. ", "Violets Are Blue!"},
		},
		{
			name: "single initials suppress boundaries",
			lang: "en",
			text: "We make a good team, you and I. Did you see Albert I. Jones yesterday?",
			want: []string{"We make a good team, you and I. Did you see Albert I. Jones yesterday?"},
		},
		{
			name: "initialism with internal periods",
			lang: "en",
			text: "I work for the U.S. Government in Virginia.",
			want: []string{"I work for the U.S. Government in Virginia."},
		},
		{
			name: "numbered list marker",
			lang: "en",
			text: "1. First item",
			want: []string{"1. First item"},
		},
		{
			name: "ordinal marker before a number",
			lang: "en",
			text: "See No. 5 for details.",
			want: []string{"See No. 5 for details."},
		},
		{
			name: "lowercase continuation",
			lang: "en",
			text: "He arrived at 3 p.m. and left at once.",
			want: []string{"He arrived at 3 p.m. and left at once."},
		},
		{
			name: "ellipsis run is one decision",
			lang: "en",
			text: "Wait... What happened?",
			want: []string{"Wait... ", "What happened?"},
		},
		{
			name: "parenthetical sentence stays glued",
			lang: "en",
			text: "He teaches science (He previously worked for 5 years as an engineer.) at the local University",
			want: []string{"He teaches science (He previously worked for 5 years as an engineer.) at the local University"},
		},
		{
			name: "quoted punctuation stays glued",
			lang: "en",
			text: `He said, "Wait. Stop." Then nothing.`,
			want: []string{`He said, "Wait. Stop." Then nothing.`},
		},
		{
			name: "no terminal punctuation at all",
			lang: "en",
			text: "no punctuation here",
			want: []string{"no punctuation here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seg.SegmentAll(tt.lang, tt.text)
			if err != nil {
				t.Fatalf("SegmentAll failed: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d sentences %q, want %d %q", len(got), got, len(tt.want), tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSegmentAll_NumberedReferences(t *testing.T) {
	seg := newTestSegmenter(t)

	text := "Thus increasing the desire for political reform both in Lancashire and in the country at large.[7][8] This was a serious misdemeanour, encouraging them to declare the assembly illegal as soon as it was announced on 31 July.[17][18] The radicals sought a second opinion on the meeting's legality."
	got, err := seg.SegmentAll("en", text)
	if err != nil {
		t.Fatalf("SegmentAll failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d sentences, want 3: %q", len(got), got)
	}
	if !strings.HasSuffix(strings.TrimSpace(got[0]), "[7][8]") {
		t.Errorf("citation cluster should attach to the first sentence, got %q", got[0])
	}
}

func TestSegmentAll_Languages(t *testing.T) {
	seg := newTestSegmenter(t)

	tests := []struct {
		name string
		lang string
		text string
		want int
	}{
		{
			name: "arabic with title abbreviation",
			lang: "ar",
			text: "هذا هو د. سالم. ماذا تقدمون للعشاء اليوم؟",
			want: 2,
		},
		{
			name: "chinese ideographic full stop",
			lang: "zh",
			text: "安永已聯繫親屬協助辦理簽證。周怡安來自台中。",
			want: 2,
		},
		{
			name: "hindi danda",
			lang: "hi",
			text: "यह पहला वाक्य है। यह दूसरा वाक्य है।",
			want: 2,
		},
		{
			name: "german month after ordinal day",
			lang: "de",
			text: "Das Treffen findet am 22. Januar statt. Alle sind eingeladen.",
			want: 2,
		},
		{
			name: "german punctuation before closing quote",
			lang: "de",
			text: "Er sagte „Halt. Sofort.“ Dann ging er.",
			want: 2,
		},
		{
			name: "russian lowercase continuation",
			lang: "ru",
			text: "Это первое предложение. Это второе предложение.",
			want: 2,
		},
		{
			name: "greek question mark",
			lang: "el",
			text: "Τι κάνεις; Είμαι καλά.",
			want: 2,
		},
		{
			name: "armenian full stop",
			lang: "hy",
			text: "Սա առաջին նախադասությունն է։ Սա երկրորդն է։",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seg.SegmentAll(tt.lang, tt.text)
			if err != nil {
				t.Fatalf("SegmentAll failed: %v", err)
			}
			if len(got) != tt.want {
				t.Errorf("got %d sentences %q, want %d", len(got), got, tt.want)
			}
			if joined := strings.Join(got, ""); joined != tt.text {
				t.Errorf("round trip broken:\ngot  %q\nwant %q", joined, tt.text)
			}
		})
	}
}

func TestSegment_RoundTripAndContiguity(t *testing.T) {
	seg := newTestSegmenter(t)

	inputs := []string{
		"",
		" ",
		"\n\n\n",
		"Hello world. This is a test.",
		"One sentence only",
		"Mismatched \"quote. Never closed. Still going",
		"Unmatched closer) here. And more.",
		"Tabs\tand  spaces.  Next!",
		"First paragraph.\n\nSecond paragraph starts here.",
		"CRLF break.\r\n\r\nAfter the break.",
		"Ellipsis... and ?! and ‼ runs. Done.",
		"Emoji 🎉 inside. Combining é and ñ too. 文字もある。",
		"Trailing terminal...",
		"   leading whitespace. and lowercase after.",
	}

	for _, text := range inputs {
		spans, err := seg.Spans("en", text)
		if err != nil {
			t.Fatalf("Spans(%q) failed: %v", text, err)
		}

		if text == "" {
			if len(spans) != 0 {
				t.Errorf("empty input produced %d spans", len(spans))
			}
			continue
		}

		if len(spans) == 0 {
			t.Fatalf("non-empty input %q produced no spans", text)
		}
		if spans[0].Start != 0 {
			t.Errorf("first span of %q starts at %d, want 0", text, spans[0].Start)
		}
		if spans[len(spans)-1].End != len(text) {
			t.Errorf("last span of %q ends at %d, want %d", text, spans[len(spans)-1].End, len(text))
		}
		for i := 1; i < len(spans); i++ {
			if spans[i].Start != spans[i-1].End {
				t.Errorf("gap in %q: span %d starts at %d, previous ends at %d",
					text, i, spans[i].Start, spans[i-1].End)
			}
		}

		var b strings.Builder
		for _, sp := range spans {
			b.WriteString(text[sp.Start:sp.End])
		}
		if b.String() != text {
			t.Errorf("round trip broken for %q: got %q", text, b.String())
		}
	}
}

func TestSegment_Determinism(t *testing.T) {
	seg := newTestSegmenter(t)
	text := "Dr. Smith arrived... \"Hello?\" he asked. 1. First item. No. 5 follows."

	first, err := seg.Spans("en", text)
	if err != nil {
		t.Fatalf("Spans failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := seg.Spans("en", text)
		if err != nil {
			t.Fatalf("Spans failed: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: got %d spans, want %d", i, len(again), len(first))
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("run %d: span %d = %+v, want %+v", i, j, again[j], first[j])
			}
		}
	}
}

func TestSegment_UnknownLanguageFallsBack(t *testing.T) {
	seg := newTestSegmenter(t)

	for _, lang := range []string{"xx-Unknown", "", "definitely not a language code", "pt-BR", "uk"} {
		got, err := seg.SegmentAll(lang, "One sentence. Two sentences.")
		if err != nil {
			t.Fatalf("SegmentAll(%q) failed: %v", lang, err)
		}
		if len(got) == 0 {
			t.Errorf("SegmentAll(%q) returned no sentences", lang)
		}
	}
}

func TestSegment_InvalidUTF8(t *testing.T) {
	seg := newTestSegmenter(t)

	_, err := seg.Segment("en", "broken \xff\xfe input")
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
	if !errors.Is(err, ErrInvalidUTF8) {
		t.Errorf("expected ErrInvalidUTF8, got: %v", err)
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	seg := newTestSegmenter(t)

	it, err := seg.Segment("en", "")
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}
	if sp, ok := it.Next(); ok {
		t.Errorf("expected no spans for empty input, got %+v", sp)
	}
}

func TestSegmenter_ConcurrentUse(t *testing.T) {
	seg := newTestSegmenter(t)
	text := "Shared rule sets. No locks needed. Dr. Reed agrees."
	want, err := seg.SegmentAll("en", text)
	if err != nil {
		t.Fatalf("SegmentAll failed: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := seg.SegmentAll("en", text)
			if err != nil {
				t.Errorf("SegmentAll failed: %v", err)
				return
			}
			if len(got) != len(want) {
				t.Errorf("got %d sentences, want %d", len(got), len(want))
			}
		}()
	}
	wg.Wait()
}
