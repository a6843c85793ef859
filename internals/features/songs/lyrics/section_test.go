package lyrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCurrentEncoding(t *testing.T) {
	raw := json.RawMessage(`[
		{"sectionType":"verse","number":1,"content":"Bait satu"},
		{"sectionType":"refrain","number":1,"content":"Refrein"},
		{"sectionType":"verse","number":2,"content":"Bait dua"}
	]`)

	got := Normalize(raw)
	require.Len(t, got, 3)
	assert.Equal(t, Section{SectionType: "verse", Number: 1, Content: "Bait satu"}, got[0])
	assert.Equal(t, Section{SectionType: "refrain", Number: 1, Content: "Refrein"}, got[1])
}

func TestNormalizeLegacyEncoding(t *testing.T) {
	raw := json.RawMessage(`[
		{"verseNumber":1,"content":"Bait satu"},
		{"verseNumber":2,"content":"Bait dua"}
	]`)

	got := Normalize(raw)
	require.Len(t, got, 2)
	assert.Equal(t, "verse", got[0].SectionType)
	assert.Equal(t, 1, got[0].Number)
	assert.Equal(t, "verse-1", got[0].Key())
	assert.Equal(t, "Bait dua", got[1].Content)
}

func TestNormalizeLegacyEqualsCurrent(t *testing.T) {
	// kedua encoding untuk lagu yang sama menghasilkan Section identik
	legacy := Normalize(json.RawMessage(`[{"verseNumber":1,"content":"A"},{"verseNumber":2,"content":"B"}]`))
	current := Normalize(json.RawMessage(`[{"sectionType":"verse","number":1,"content":"A"},{"sectionType":"verse","number":2,"content":"B"}]`))
	assert.Equal(t, current, legacy)
}

func TestNormalizeBadInput(t *testing.T) {
	assert.Empty(t, Normalize(nil))
	assert.Empty(t, Normalize(json.RawMessage(`not-json`)))
	assert.Empty(t, Normalize(json.RawMessage(`{"bukan":"array"}`)))

	// entri tanpa nomor dilewati, bukan error
	got := Normalize(json.RawMessage(`[{"content":"tanpa nomor"},{"verseNumber":1,"content":"ok"}]`))
	require.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].Content)
}

func TestSectionKeyAndLabel(t *testing.T) {
	v := Section{SectionType: SectionVerse, Number: 3}
	assert.Equal(t, "verse-3", v.Key())
	assert.Equal(t, "Bait 3", v.Label())

	r := Section{SectionType: SectionRefrain, Number: 1}
	assert.Equal(t, "refrain-1", r.Key())
	assert.Equal(t, "Refrein", r.Label())

	b := Section{SectionType: SectionBridge, Number: 1}
	assert.Equal(t, "Bridge", b.Label())
}

func TestFilterFollowsLyricOrder(t *testing.T) {
	sections := []Section{
		{SectionType: "verse", Number: 1, Content: "1"},
		{SectionType: "refrain", Number: 1, Content: "R"},
		{SectionType: "verse", Number: 2, Content: "2"},
	}

	// urutan kunci terbalik; hasil tetap urut lirik
	got := Filter(sections, []string{"verse-2", "verse-1"})
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Content)
	assert.Equal(t, "2", got[1].Content)

	// kunci kosong = seluruh bait
	assert.Equal(t, sections, Filter(sections, nil))

	// kunci tak dikenal diabaikan
	assert.Empty(t, Filter(sections, []string{"verse-9"}))
}

func TestKeys(t *testing.T) {
	sections := []Section{
		{SectionType: "verse", Number: 1},
		{SectionType: "refrain", Number: 1},
	}
	assert.Equal(t, []string{"verse-1", "refrain-1"}, Keys(sections))
}
