// file: internals/features/songs/lyrics/section.go
package lyrics

import (
	"encoding/json"
	"fmt"
)

/* =========================================================
   Section: satu bait/refrein lirik ternormalisasi
   ========================================================= */

const (
	SectionRefrain   = "refrain"
	SectionVerse     = "verse"
	SectionInterlude = "interlude"
	SectionBridge    = "bridge"
)

type Section struct {
	SectionType string `json:"sectionType"` // refrain|verse|interlude|bridge
	Number      int    `json:"number"`
	Content     string `json:"content"`
}

// Key menghasilkan kunci pilihan bait: "{sectionType}-{number}".
// Bentuk inilah yang dipersistkan di payload modul (selectedSections).
func (s Section) Key() string {
	return fmt.Sprintf("%s-%d", s.SectionType, s.Number)
}

// Keys mengembalikan kunci seluruh bait, urut sesuai lirik.
func Keys(sections []Section) []string {
	out := make([]string, len(sections))
	for i, s := range sections {
		out[i] = s.Key()
	}
	return out
}

// Filter memilih bait sesuai daftar kunci, urutan mengikuti lirik (bukan
// urutan kunci). Daftar kunci kosong berarti seluruh bait.
func Filter(sections []Section, keys []string) []Section {
	if len(keys) == 0 {
		return sections
	}
	want := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		want[k] = struct{}{}
	}
	out := make([]Section, 0, len(keys))
	for _, s := range sections {
		if _, ok := want[s.Key()]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Label menghasilkan judul bait untuk tampilan ("Bait 1", "Refrein", ...).
func (s Section) Label() string {
	switch s.SectionType {
	case SectionRefrain:
		return "Refrein"
	case SectionVerse:
		return fmt.Sprintf("Bait %d", s.Number)
	case SectionInterlude:
		return "Interlude"
	case SectionBridge:
		return "Bridge"
	default:
		return fmt.Sprintf("%s %d", s.SectionType, s.Number)
	}
}

/* =========================================================
   Normalisasi dua encoding lirik historis
   =========================================================

   Lama : [{"verseNumber":1,"content":"..."}]
   Baru : [{"sectionType":"verse","number":1,"content":"..."}]

   Satu lagu selalu memakai tepat satu encoding (tidak campur).
   Deteksi & pemetaan dilakukan HANYA di sini; konsumen lain
   (editor, tiga renderer) tinggal memakai hasilnya.
*/

type rawLyric struct {
	SectionType string `json:"sectionType"`
	Number      *int   `json:"number"`
	VerseNumber *int   `json:"verseNumber"`
	Content     string `json:"content"`
}

// Normalize mendekode kolom lirik JSONB menjadi []Section. Encoding lama
// {verseNumber} dipetakan ke {sectionType:"verse", number:verseNumber}.
// Input kosong atau rusak menghasilkan daftar kosong, bukan error.
func Normalize(raw json.RawMessage) []Section {
	if len(raw) == 0 {
		return []Section{}
	}
	var items []rawLyric
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Section{}
	}

	out := make([]Section, 0, len(items))
	for _, it := range items {
		switch {
		case it.SectionType != "" && it.Number != nil:
			out = append(out, Section{SectionType: it.SectionType, Number: *it.Number, Content: it.Content})
		case it.VerseNumber != nil:
			out = append(out, Section{SectionType: SectionVerse, Number: *it.VerseNumber, Content: it.Content})
		}
	}
	return out
}
