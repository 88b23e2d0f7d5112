package compose

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitTextShortTextIsNeverSplit(t *testing.T) {
	first, second := SplitText("Kort beskrivelse av prosjektet.", 0.7)
	assert.Equal(t, "Kort beskrivelse av prosjektet.", first)
	assert.Empty(t, second)

	first, second = SplitText("", 0.7)
	assert.Empty(t, first)
	assert.Empty(t, second)
}

func TestSplitTextPrefersSentenceBoundary(t *testing.T) {
	sentence := "Dette er en setning om byggeprosjektet som beskriver gjennomføringen. "
	text := strings.TrimSpace(strings.Repeat(sentence, 6))
	require.GreaterOrEqual(t, len(text), splitThreshold)

	first, second := SplitText(text, 0.7)
	assert.True(t, strings.HasSuffix(first, "."), "first segment should end at a sentence boundary, got %q", first)
	assert.NotEmpty(t, second)
}

func TestSplitTextThresholdCountsRunes(t *testing.T) {
	// 299 characters but well over 300 bytes; must stay in one column.
	text := strings.Repeat("æ", 250) + ". " + strings.Repeat("ø", 47)
	require.Greater(t, len(text), splitThreshold)

	first, second := SplitText(text, 0.7)
	assert.Equal(t, text, first)
	assert.Empty(t, second)
}

func TestSplitTextFindsBoundaryStraddlingTarget(t *testing.T) {
	// The only nearby ". " sits exactly across the target index: the period
	// at middle-1 and the space at middle. The cut must land there, not at
	// the far-away boundary at the start of the text.
	text := strings.Repeat("c", 50) + ". " + strings.Repeat("a", 147) + ". " + strings.Repeat("b", 200)
	middle := int(float64(len(text)) * 0.5)
	require.Equal(t, byte('.'), text[middle-1])
	require.Equal(t, byte(' '), text[middle])

	first, second := SplitText(text, 0.5)
	assert.Len(t, first, middle)
	assert.True(t, strings.HasSuffix(first, "."))
	assert.Equal(t, strings.Repeat("b", 200), second)
}

func TestSplitTextIsLossless(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("Prosjektet ble levert på tid og innenfor budsjett til byggherren. ", 8))

	first, second := SplitText(text, 0.7)
	rebuilt := strings.Fields(first + " " + second)
	assert.Equal(t, strings.Fields(text), rebuilt)
}

func TestSplitTextFallsBackToWordBoundary(t *testing.T) {
	// Long text with spaces but no ". " anywhere.
	text := strings.TrimSpace(strings.Repeat("ord ", 120))

	first, second := SplitText(text, 0.5)
	assert.NotEmpty(t, first)
	assert.NotEmpty(t, second)
	assert.False(t, strings.HasPrefix(second, " "))
	assert.Equal(t, strings.Fields(text), strings.Fields(first+" "+second))
}

func TestSplitTextUnbrokenTokenCutsAtTarget(t *testing.T) {
	text := strings.Repeat("a", 400)
	first, second := SplitText(text, 0.7)
	assert.Len(t, first, 280)
	assert.Len(t, second, 120)
}

func TestSplitTextNeverCutsInsideARune(t *testing.T) {
	text := strings.Repeat("æøå", 150) // 900 bytes, no spaces
	first, second := SplitText(text, 0.5)
	assert.True(t, utf8.ValidString(first))
	assert.True(t, utf8.ValidString(second))
	assert.Equal(t, text, first+second)
}

func TestSplitTextRatioShiftsTheCut(t *testing.T) {
	text := strings.TrimSpace(strings.Repeat("like lange ord her ", 30))

	low, _ := SplitText(text, 0.3)
	high, _ := SplitText(text, 0.8)
	assert.Less(t, len(low), len(high))
}
