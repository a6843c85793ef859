// file: internals/features/warta/bulletins/composer/editors.go
package composer

import (
	"strings"

	"github.com/google/uuid"
)

/* =========================================================
   Editor SONG
   ========================================================= */

// SongRef adalah snapshot lagu hasil pencarian (judul/nomor dibekukan ke
// payload supaya warta lama tetap tampil walau master lagu berubah).
type SongRef struct {
	ID     uuid.UUID
	Title  string
	Number string
	Category string
}

// SelectSong mengganti lagu terpilih; payload selalu mulai bersih
// (ganti lagu = reset pilihan bait).
func SelectSong(ref SongRef) SongData {
	id := ref.ID
	return SongData{
		SongID:           &id,
		SongTitle:        ref.Title,
		SongNumber:       ref.Number,
		Category:         ref.Category,
		SelectedSections: []string{},
	}
}

// ToggleSection menambah/menghapus kunci bait pada pilihan.
func (d SongData) ToggleSection(key string) SongData {
	out := d
	out.SelectedSections = toggleKey(d.SelectedSections, key)
	return out
}

// SelectAllSections mengganti pilihan dengan seluruh kunci yang tersedia.
func (d SongData) SelectAllSections(keys []string) SongData {
	out := d
	out.SelectedSections = append([]string(nil), keys...)
	return out
}

// ClearSections mengosongkan pilihan bait.
func (d SongData) ClearSections() SongData {
	out := d
	out.SelectedSections = []string{}
	return out
}

func toggleKey(keys []string, key string) []string {
	out := make([]string, 0, len(keys)+1)
	found := false
	for _, k := range keys {
		if k == key {
			found = true
			continue
		}
		out = append(out, k)
	}
	if !found {
		out = append(out, key)
	}
	return out
}

/* =========================================================
   Editor VERSE
   ========================================================= */

// ResetLookup mengosongkan field hasil lookup tapi mempertahankan kategori
// (aksi "ganti ayat" eksplisit).
func (d VerseData) ResetLookup() VerseData {
	return VerseData{Category: d.Category}
}

/* =========================================================
   Editor LITURGY_ORDER
   ========================================================= */

// AppendTemplate menambahkan item template di belakang item yang sudah ada,
// dengan order menyambung.
func (d LiturgyData) AppendTemplate(tpl []LiturgyItem) LiturgyData {
	out := d
	base := len(d.Items)
	items := make([]LiturgyItem, 0, base+len(tpl))
	items = append(items, d.Items...)
	for i, it := range tpl {
		it.ID = uuid.New()
		it.Order = base + i
		items = append(items, it)
	}
	out.Items = items
	return out
}

// AddItem menambah satu item di akhir.
func (d LiturgyData) AddItem(title string, typ LiturgyItemType, description string) LiturgyData {
	if !typ.Valid() {
		typ = LiturgyOther
	}
	out := d
	out.Items = append(append([]LiturgyItem(nil), d.Items...), LiturgyItem{
		ID:          uuid.New(),
		Order:       len(d.Items),
		Title:       strings.TrimSpace(title),
		Type:        typ,
		Description: strings.TrimSpace(description),
	})
	return out
}

// MoveItem menukar item pada indeks i satu langkah (delta -1 = naik,
// +1 = turun) lalu menomori ulang order tiap item sesuai indeks barunya.
func (d LiturgyData) MoveItem(i, delta int) LiturgyData {
	j := i + delta
	if i < 0 || i >= len(d.Items) || j < 0 || j >= len(d.Items) {
		return d
	}
	out := d
	items := append([]LiturgyItem(nil), d.Items...)
	items[i], items[j] = items[j], items[i]
	for k := range items {
		items[k].Order = k
	}
	out.Items = items
	return out
}

// RemoveItem membuang item berdasarkan id lalu menomori ulang.
func (d LiturgyData) RemoveItem(id uuid.UUID) LiturgyData {
	out := d
	items := make([]LiturgyItem, 0, len(d.Items))
	for _, it := range d.Items {
		if it.ID != id {
			items = append(items, it)
		}
	}
	for k := range items {
		items[k].Order = k
	}
	out.Items = items
	return out
}

// UpdateItem menerapkan fn pada item dengan id tersebut. No-op bila tidak ada.
func (d LiturgyData) UpdateItem(id uuid.UUID, fn func(*LiturgyItem)) LiturgyData {
	out := d
	items := append([]LiturgyItem(nil), d.Items...)
	for k := range items {
		if items[k].ID == id {
			fn(&items[k])
			break
		}
	}
	out.Items = items
	return out
}

/* =========================================================
   Editor SERVANT_ROSTER
   ========================================================= */

// ParseNames memecah input satu kolom menjadi daftar nama:
// split koma, trim spasi, buang entri kosong.
func ParseNames(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// JoinNames menyusun kembali daftar nama ke bentuk input ("A, B, C").
// ParseNames(JoinNames(x)) == x untuk daftar hasil ParseNames (idempoten).
func JoinNames(names []string) string {
	return strings.Join(names, ", ")
}

// AddEntry menambah baris pelayan baru.
func (d RosterData) AddEntry(role string) RosterData {
	out := d
	out.Entries = append(append([]RosterEntry(nil), d.Entries...), RosterEntry{
		ID:   uuid.New(),
		Role: strings.TrimSpace(role),
	})
	return out
}

// RemoveEntry membuang baris berdasarkan id.
func (d RosterData) RemoveEntry(id uuid.UUID) RosterData {
	out := d
	entries := make([]RosterEntry, 0, len(d.Entries))
	for _, e := range d.Entries {
		if e.ID != id {
			entries = append(entries, e)
		}
	}
	out.Entries = entries
	return out
}

// MoveEntry memindahkan baris dari indeks from ke to (drag-and-drop penuh).
func (d RosterData) MoveEntry(from, to int) RosterData {
	out := d
	entries := append([]RosterEntry(nil), d.Entries...)
	if from < 0 || from >= len(entries) {
		return out
	}
	if to < 0 {
		to = 0
	}
	if to >= len(entries) {
		to = len(entries) - 1
	}
	if from == to {
		out.Entries = entries
		return out
	}
	mv := entries[from]
	entries = append(entries[:from], entries[from+1:]...)
	entries = append(entries[:to], append([]RosterEntry{mv}, entries[to:]...)...)
	out.Entries = entries
	return out
}

// UpdateEntry menerapkan fn pada baris dengan id tersebut.
func (d RosterData) UpdateEntry(id uuid.UUID, fn func(*RosterEntry)) RosterData {
	out := d
	entries := append([]RosterEntry(nil), d.Entries...)
	for k := range entries {
		if entries[k].ID == id {
			fn(&entries[k])
			break
		}
	}
	out.Entries = entries
	return out
}

/* =========================================================
   Editor ATTENDANCE_STATS
   ========================================================= */

type StatsTotals struct {
	Bapak    int `json:"bapak"`
	Ibu      int `json:"ibu"`
	PPRemaja int `json:"ppRemaja"`
	Jumlah   int `json:"jumlah"`
}

// Totals menjumlahkan kolom seluruh baris. Hasil hanya untuk tampilan dan
// tidak pernah ditulis balik ke Jumlah baris mana pun.
func (d StatsData) Totals() StatsTotals {
	var t StatsTotals
	for _, r := range d.Rows {
		if r.Bapak != nil {
			t.Bapak += *r.Bapak
		}
		if r.Ibu != nil {
			t.Ibu += *r.Ibu
		}
		if r.PPRemaja != nil {
			t.PPRemaja += *r.PPRemaja
		}
		if r.Jumlah != nil {
			t.Jumlah += *r.Jumlah
		}
	}
	return t
}

// MoveRow memindahkan baris statistik dari indeks from ke to.
func (d StatsData) MoveRow(from, to int) StatsData {
	out := d
	rows := append([]StatsRow(nil), d.Rows...)
	if from < 0 || from >= len(rows) {
		return out
	}
	if to < 0 {
		to = 0
	}
	if to >= len(rows) {
		to = len(rows) - 1
	}
	if from != to {
		mv := rows[from]
		rows = append(rows[:from], rows[from+1:]...)
		rows = append(rows[:to], append([]StatsRow{mv}, rows[to:]...)...)
	}
	out.Rows = rows
	return out
}
