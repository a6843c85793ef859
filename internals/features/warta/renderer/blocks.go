// file: internals/features/warta/renderer/blocks.go
package renderer

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
	lyrics "gerejaku_backend/internals/features/songs/lyrics"
)

/* =========================================================
   Block: hasil render satu modul
   =========================================================

   Ketiga konteks render (preview, print, public) memakai builder
   blok yang SAMA sehingga isi informasi identik; pembeda antar
   konteks hanya amplop dokumen (zoom, langkah font, hint halaman).
   Modul dirender terisolasi: payload rusak/belum diisi menjadi
   placeholder bertipe, tidak pernah menggagalkan dokumen.
*/

type Block struct {
	ModuleID    uuid.UUID           `json:"moduleId"`
	Type        composer.ModuleType `json:"type"`
	Heading     string              `json:"heading"`
	Lines       []string            `json:"lines,omitempty"`
	Placeholder string              `json:"placeholder,omitempty"` // terisi = modul belum dikonfigurasi
}

// placeholderText per jenis modul ("belum dikonfigurasi" yang ramah).
func placeholderText(t composer.ModuleType) string {
	switch t {
	case composer.ModuleSong:
		return "Lagu belum dipilih"
	case composer.ModuleVerse:
		return "Ayat belum dipilih"
	case composer.ModuleLiturgyOrder:
		return "Tata ibadah belum disusun"
	case composer.ModuleServantRoster:
		return "Daftar pelayan belum diisi"
	case composer.ModuleAttendanceStats:
		return "Statistik belum diisi"
	case composer.ModuleFinance:
		return "Ringkasan keuangan belum diisi"
	case composer.ModuleBirthdays:
		return "Daftar ulang tahun belum diisi"
	case composer.ModuleSickList:
		return "Daftar doa belum diisi"
	case composer.ModuleAnnouncements:
		return "Warta belum diisi"
	default:
		return "Modul belum dikonfigurasi"
	}
}

// BuildBlock merender satu modul menjadi blok. res boleh dipakai untuk
// membaca cache lirik; pemanggil bertanggung jawab memanaskan cache
// (lihat Preview/Print), BuildBlock sendiri tidak memicu fetch.
func BuildBlock(m composer.Module, res *lyrics.Resolver) Block {
	b := Block{
		ModuleID: m.ID,
		Type:     m.Type,
		Heading:  m.Type.Label(),
	}
	if !m.Configured() {
		b.Placeholder = placeholderText(m.Type)
		return b
	}

	switch d := m.Payload.(type) {
	case composer.SongData:
		b.Heading = songHeading(d.SongNumber, d.SongTitle)
		b.Lines = songLines(d, res)
	case composer.VerseData:
		if ref := d.Reference(); ref != "" {
			b.Heading = ref
		}
		if d.Category != "" {
			b.Lines = append(b.Lines, "("+d.Category+")")
		}
		b.Lines = append(b.Lines, d.Content)
	case composer.LiturgyData:
		b.Lines = liturgyLines(d, res)
	case composer.RosterData:
		for _, e := range d.Entries {
			b.Lines = append(b.Lines, fmt.Sprintf("%s: %s", e.Role, composer.JoinNames(e.Names)))
		}
	case composer.StatsData:
		if d.Title != "" {
			b.Heading = d.Title
		}
		b.Lines = statsLines(d)
	case composer.FinanceData:
		for _, r := range d.Rows {
			b.Lines = append(b.Lines, fmt.Sprintf("%s: Rp %d", r.Keterangan, r.Nominal))
		}
	case composer.BirthdaysData:
		for _, it := range d.Items {
			line := it.Name
			if it.Date != "" {
				line += " (" + it.Date + ")"
			}
			b.Lines = append(b.Lines, line)
		}
	case composer.SickListData:
		for _, it := range d.Items {
			line := it.Name
			if it.Location != "" {
				line += " — " + it.Location
			}
			if it.Note != "" {
				line += " (" + it.Note + ")"
			}
			b.Lines = append(b.Lines, line)
		}
	case composer.AnnouncementsData:
		for _, it := range d.Items {
			b.Lines = append(b.Lines, it.Title)
			if it.Content != "" {
				b.Lines = append(b.Lines, it.Content)
			}
		}
	default:
		// LegacyData atau varian baru yang belum dikenal renderer
		b.Placeholder = placeholderText(m.Type)
	}
	return b
}

func songHeading(number, title string) string {
	switch {
	case number != "" && title != "":
		return number + " — " + title
	case title != "":
		return title
	case number != "":
		return number
	default:
		return composer.ModuleSong.Label()
	}
}

func songLines(d composer.SongData, res *lyrics.Resolver) []string {
	if d.SongID == nil {
		return nil
	}
	sections, ok := res.Cached(*d.SongID)
	if !ok || len(sections) == 0 {
		return []string{"Lirik tidak tersedia"}
	}
	out := make([]string, 0, len(d.SelectedSections)*2)
	for _, s := range lyrics.Filter(sections, d.SelectedSections) {
		out = append(out, s.Label(), s.Content)
	}
	return out
}

func liturgyLines(d composer.LiturgyData, res *lyrics.Resolver) []string {
	out := make([]string, 0, len(d.Items)*2)
	for i, it := range d.Items {
		out = append(out, fmt.Sprintf("%d. %s", i+1, it.Title))
		if it.Description != "" {
			out = append(out, it.Description)
		}
		switch {
		case it.SongID != nil:
			if ref := strings.TrimSpace(songHeading(it.SongNumber, it.SongTitle)); ref != composer.ModuleSong.Label() {
				out = append(out, ref)
			}
			sections, ok := res.Cached(*it.SongID)
			if !ok || len(sections) == 0 {
				out = append(out, "Lirik tidak tersedia")
				continue
			}
			for _, s := range lyrics.Filter(sections, it.SectionKeys()) {
				out = append(out, s.Label(), s.Content)
			}
		case it.Content != "":
			out = append(out, it.Content)
		}
	}
	return out
}

func statsLines(d composer.StatsData) []string {
	out := make([]string, 0, len(d.Rows)+1)
	for _, r := range d.Rows {
		out = append(out, fmt.Sprintf("%s: Bapak %s | Ibu %s | PP/Remaja %s | Jumlah %s",
			r.Keterangan, fmtCount(r.Bapak), fmtCount(r.Ibu), fmtCount(r.PPRemaja), fmtCount(r.Jumlah)))
	}
	t := d.Totals()
	out = append(out, fmt.Sprintf("Total: Bapak %d | Ibu %d | PP/Remaja %d | Jumlah %d",
		t.Bapak, t.Ibu, t.PPRemaja, t.Jumlah))
	return out
}

func fmtCount(n *int) string {
	if n == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *n)
}

/* =========================================================
   Referensi lagu dalam satu bulletin
   ========================================================= */

// ReferencedSongIDs mengumpulkan seluruh id lagu yang dirujuk modul SONG
// maupun item tata ibadah bertautan lagu (urut kemunculan, tanpa duplikat).
func ReferencedSongIDs(b composer.Bulletin) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{})
	out := make([]uuid.UUID, 0, 4)
	add := func(id *uuid.UUID) {
		if id == nil {
			return
		}
		if _, ok := seen[*id]; ok {
			return
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}
	for _, m := range b.Modules {
		switch d := m.Payload.(type) {
		case composer.SongData:
			add(d.SongID)
		case composer.LiturgyData:
			for _, it := range d.Items {
				add(it.SongID)
			}
		}
	}
	return out
}
