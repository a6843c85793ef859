package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcatVerses(t *testing.T) {
	verses := []Verse{
		{VerseNumber: 16, Content: "Karena begitu besar kasih Allah akan dunia ini..."},
		{VerseNumber: 17, Content: " Sebab Allah mengutus Anak-Nya... "},
	}
	got := ConcatVerses(verses)
	assert.Equal(t,
		"16. Karena begitu besar kasih Allah akan dunia ini... 17. Sebab Allah mengutus Anak-Nya...",
		got)
}

func TestConcatVersesEmpty(t *testing.T) {
	assert.Equal(t, "", ConcatVerses(nil))
	assert.Equal(t, "1. ", ConcatVerses([]Verse{{VerseNumber: 1, Content: "  "}}))
}
