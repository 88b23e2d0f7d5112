package compose

import (
	"strings"
	"unicode/utf8"
)

// splitThreshold is the character count under which text is never split into
// columns. Counted in runes so Norwegian text is not penalized for multibyte
// letters.
const splitThreshold = 300

// SplitText divides text into two column segments, aiming for a sentence
// boundary near ratio*len and falling back to the nearest word boundary.
// Both segments are trimmed; the second may be empty. A single unbroken
// token ends up cut at the target index, which is accepted as a last resort.
func SplitText(text string, ratio float64) (string, string) {
	if text == "" {
		return "", ""
	}
	if utf8.RuneCountInString(text) < splitThreshold {
		return text, ""
	}

	// The target index is byte-based; boundary snapping below keeps the cut
	// on a separator (or rune start), so the ratio only steers, never slices.
	middle := int(float64(len(text)) * ratio)
	if middle < 0 {
		middle = 0
	}
	if middle > len(text) {
		middle = len(text)
	}

	splitIdx := nearestBoundary(text, middle, ". ")
	if splitIdx == -1 {
		splitIdx = nearestBoundary(text, middle, " ")
	}
	if splitIdx == -1 {
		// No spaces at all: cut mid-token, but never inside a rune.
		splitIdx = middle
		for splitIdx > 0 && !utf8.RuneStart(text[splitIdx]) {
			splitIdx--
		}
	}

	return strings.TrimSpace(text[:splitIdx]), strings.TrimSpace(text[splitIdx:])
}

// nearestBoundary finds the occurrence of sep closest to middle, searching
// both directions, and returns the index just past sep's first byte. Returns
// -1 when sep does not occur.
func nearestBoundary(text string, middle int, sep string) int {
	// The backward search must see a sep starting at middle-1, so its
	// window extends past middle by len(sep)-1 bytes.
	end := middle + len(sep) - 1
	if end > len(text) {
		end = len(text)
	}
	before := strings.LastIndex(text[:end], sep)
	after := strings.Index(text[middle:], sep)
	if after != -1 {
		after += middle
	}

	switch {
	case before != -1 && after != -1:
		if middle-before < after-middle {
			return before + 1
		}
		return after + 1
	case before != -1:
		return before + 1
	case after != -1:
		return after + 1
	}
	return -1
}
