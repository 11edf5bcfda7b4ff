package sentseg

import "testing"

func TestIter_LazyAndSinglePass(t *testing.T) {
	seg := newTestSegmenter(t)
	text := "First one. Second one. Third one."

	it, err := seg.Segment("en", text)
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	want := []string{"First one. ", "Second one. ", "Third one."}
	for i, w := range want {
		sp, ok := it.Next()
		if !ok {
			t.Fatalf("Next() exhausted after %d spans, want %d", i, len(want))
		}
		if got := it.Text(sp); got != w {
			t.Errorf("span %d = %q, want %q", i, got, w)
		}
	}

	// Exhausted iterators stay exhausted.
	for i := 0; i < 3; i++ {
		if sp, ok := it.Next(); ok {
			t.Fatalf("Next() after exhaustion returned %+v", sp)
		}
	}
}

func TestIter_TrailingWhitespaceAttaches(t *testing.T) {
	seg := newTestSegmenter(t)

	tests := []struct {
		text  string
		first string
	}{
		{"One.  Two.", "One.  "},
		{"One.\nTwo.", "One.\n"},
		{"One.\tTwo.", "One.\t"},
		{"One. \n Two.", "One. \n "},
	}

	for _, tt := range tests {
		it, err := seg.Segment("en", tt.text)
		if err != nil {
			t.Fatalf("Segment(%q) failed: %v", tt.text, err)
		}
		sp, ok := it.Next()
		if !ok {
			t.Fatalf("Segment(%q) produced no spans", tt.text)
		}
		if got := it.Text(sp); got != tt.first {
			t.Errorf("first span of %q = %q, want %q", tt.text, got, tt.first)
		}
	}
}

func TestIter_FinalSpanWithoutTerminal(t *testing.T) {
	seg := newTestSegmenter(t)

	it, err := seg.Segment("en", "Done here. And this trails off")
	if err != nil {
		t.Fatalf("Segment failed: %v", err)
	}

	var got []string
	for {
		sp, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, it.Text(sp))
	}
	if len(got) != 2 {
		t.Fatalf("got %d spans %q, want 2", len(got), got)
	}
	if got[1] != "And this trails off" {
		t.Errorf("final span = %q, want the unterminated remainder", got[1])
	}
}

func TestIter_NeverEmptySpans(t *testing.T) {
	seg := newTestSegmenter(t)

	// Whitespace attachment can swallow a following paragraph break; the
	// iterator must not emit an empty or backwards span for it.
	for _, text := range []string{"End.\n\nNext.", "End.\n\n", ".\n\n.", "...\n\n..."} {
		it, err := seg.Segment("en", text)
		if err != nil {
			t.Fatalf("Segment(%q) failed: %v", text, err)
		}
		for {
			sp, ok := it.Next()
			if !ok {
				break
			}
			if sp.End <= sp.Start {
				t.Errorf("%q: empty span %+v", text, sp)
			}
		}
	}
}
