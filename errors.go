package sentseg

import "errors"

// Sentinel errors for conditions callers may need to handle differently.
var (
	// ErrInvalidUTF8 indicates the input text is not valid UTF-8. This is
	// the only error Segment returns: malformed encoding means caller-side
	// data corruption and is not silently recovered.
	ErrInvalidUTF8 = errors.New("sentseg: input is not valid UTF-8")

	// ErrCorpusLoad indicates the rule corpus failed to build.
	ErrCorpusLoad = errors.New("sentseg: rule corpus failed to load")
)
