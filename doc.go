// Package sentseg provides rule-based sentence segmentation across many
// languages, biased toward under-segmentation: when a boundary is
// ambiguous it keeps sentences glued rather than tearing one apart.
//
// # Quick Start
//
//	seg, err := sentseg.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sentences, err := seg.SegmentAll("en", "Hello world. This is a test.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, s := range sentences {
//	    fmt.Printf("%q\n", s)
//	}
//
// # Non-destructive output
//
// Spans are byte offsets into the input; concatenating the text under every
// span, in order, reproduces the input exactly, whitespace included.
// Whitespace after a boundary belongs to the sentence that just closed;
// trim on the caller side when display text is wanted.
//
// # Language fallback
//
// The language code is any string. Codes without a defined rule set resolve
// through a fallback table ("nb" through "no" and "da", "uk" through "ru")
// and ultimately to the root rule set, so segmentation never fails on an
// unknown code.
//
// # Thread Safety
//
// A Segmenter is safe for concurrent use. The rule corpus is immutable
// after construction and each call operates on its own input. Iterators
// returned by Segment are single-pass and must not be shared.
package sentseg
