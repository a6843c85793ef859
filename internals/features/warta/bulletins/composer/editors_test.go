package composer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSongResetsSections(t *testing.T) {
	first := SelectSong(SongRef{ID: uuid.New(), Title: "Lagu A", Number: "KJ 1"})
	first = first.ToggleSection("verse-1")
	require.Equal(t, []string{"verse-1"}, first.SelectedSections)

	// ganti lagu = pilihan bait mulai bersih
	second := SelectSong(SongRef{ID: uuid.New(), Title: "Lagu B", Number: "KJ 2"})
	assert.Empty(t, second.SelectedSections)
	assert.Equal(t, "Lagu B", second.SongTitle)
	assert.True(t, second.Configured())
}

func TestToggleSection(t *testing.T) {
	d := SongData{}
	d = d.ToggleSection("verse-1")
	d = d.ToggleSection("refrain-1")
	assert.Equal(t, []string{"verse-1", "refrain-1"}, d.SelectedSections)

	// toggle kedua kali = hapus
	d = d.ToggleSection("verse-1")
	assert.Equal(t, []string{"refrain-1"}, d.SelectedSections)
}

func TestSelectAllAndClearSections(t *testing.T) {
	keys := []string{"verse-1", "verse-2", "refrain-1"}
	d := SongData{SelectedSections: []string{"verse-2"}}

	d = d.SelectAllSections(keys)
	assert.Equal(t, keys, d.SelectedSections)

	d = d.ClearSections()
	assert.Empty(t, d.SelectedSections)
}

func TestVerseResetLookupKeepsCategory(t *testing.T) {
	d := VerseData{
		BookID: "yoh", BookName: "Yohanes", Chapter: 3, VerseStart: 16,
		Content: "...", Category: "Bacaan Khotbah",
	}
	out := d.ResetLookup()
	assert.Equal(t, "Bacaan Khotbah", out.Category)
	assert.Empty(t, out.Content)
	assert.Empty(t, out.BookID)
	assert.False(t, out.Configured())
}

func TestLiturgyAppendTemplate(t *testing.T) {
	d := LiturgyData{}.AddItem("Prelude", LiturgyOther, "")
	out := d.AppendTemplate(DefaultLiturgyTemplate())

	require.Len(t, out.Items, 17, "template menyambung, tidak mengganti")
	assert.Equal(t, "Prelude", out.Items[0].Title)
	assert.Equal(t, "Saat Teduh", out.Items[1].Title)
	assert.Equal(t, "Pengutusan dan Berkat", out.Items[16].Title)
	for i, it := range out.Items {
		assert.Equal(t, i, it.Order)
		assert.NotEqual(t, uuid.Nil, it.ID)
	}
}

func TestDefaultLiturgyTemplateShape(t *testing.T) {
	tpl := DefaultLiturgyTemplate()
	require.Len(t, tpl, 16)
	assert.Equal(t, "Saat Teduh", tpl[0].Title)
	assert.Equal(t, LiturgySong, tpl[3].Type)
	assert.Equal(t, LiturgyScripture, tpl[8].Type)
}

func TestLiturgyMoveItem(t *testing.T) {
	d := LiturgyData{}.
		AddItem("A", LiturgyRitual, "").
		AddItem("B", LiturgySong, "").
		AddItem("C", LiturgyPrayer, "")

	out := d.MoveItem(2, -1)
	titles := []string{out.Items[0].Title, out.Items[1].Title, out.Items[2].Title}
	assert.Equal(t, []string{"A", "C", "B"}, titles)
	for i, it := range out.Items {
		assert.Equal(t, i, it.Order, "order dinomori ulang setelah pindah")
	}

	// keluar rentang = no-op
	same := d.MoveItem(0, -1)
	assert.Equal(t, d.Items, same.Items)
	same = d.MoveItem(2, 1)
	assert.Equal(t, d.Items, same.Items)
}

func TestLiturgyRemoveAndUpdateItem(t *testing.T) {
	d := LiturgyData{}.
		AddItem("A", LiturgyRitual, "").
		AddItem("B", LiturgySong, "")

	out := d.RemoveItem(d.Items[0].ID)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "B", out.Items[0].Title)
	assert.Equal(t, 0, out.Items[0].Order)

	songID := uuid.New()
	out = out.UpdateItem(out.Items[0].ID, func(it *LiturgyItem) {
		it.SongID = &songID
		it.SongNumber = "KJ 100"
	})
	assert.Equal(t, songID, *out.Items[0].SongID)
	assert.Nil(t, d.Items[1].SongID, "data asal tidak termutasi")
}

func TestParseNamesJoinNamesRoundTrip(t *testing.T) {
	names := ParseNames("Budi, Siti,  Ani")
	assert.Equal(t, []string{"Budi", "Siti", "Ani"}, names)

	joined := JoinNames(names)
	assert.Equal(t, "Budi, Siti, Ani", joined)

	// idempoten untuk daftar hasil ParseNames
	assert.Equal(t, names, ParseNames(joined))
}

func TestParseNamesEdgeCases(t *testing.T) {
	assert.Empty(t, ParseNames(""))
	assert.Empty(t, ParseNames(" , ,, "))
	assert.Equal(t, []string{"Budi"}, ParseNames("  Budi  "))
}

func TestRosterEntryOps(t *testing.T) {
	d := RosterData{}.AddEntry("Liturgos").AddEntry("Pemusik").AddEntry("Kolektan")

	out := d.MoveEntry(2, 0)
	assert.Equal(t, "Kolektan", out.Entries[0].Role)
	assert.Equal(t, "Liturgos", out.Entries[1].Role)

	out = out.RemoveEntry(out.Entries[1].ID)
	require.Len(t, out.Entries, 2)

	out = out.UpdateEntry(out.Entries[0].ID, func(e *RosterEntry) {
		e.Names = ParseNames("Budi, Siti")
	})
	assert.Equal(t, []string{"Budi", "Siti"}, out.Entries[0].Names)
}

func TestRosterInitDefaults(t *testing.T) {
	out := RosterData{}.InitDefaults()
	require.Len(t, out.Entries, 9)
	assert.Equal(t, "Pelayan Firman", out.Entries[0].Role)

	// hanya saat kosong; kalau sudah ada isi, tidak disentuh
	filled := RosterData{}.AddEntry("Liturgos")
	same := filled.InitDefaults()
	require.Len(t, same.Entries, 1)
	assert.Equal(t, "Liturgos", same.Entries[0].Role)
}

func intp(n int) *int { return &n }

func TestStatsTotalsDisplayOnly(t *testing.T) {
	d := StatsData{Rows: []StatsRow{
		{ID: uuid.New(), Keterangan: "Kebaktian I", Bapak: intp(10), Ibu: intp(12), PPRemaja: intp(3), Jumlah: intp(25)},
		{ID: uuid.New(), Keterangan: "Kebaktian II", Bapak: intp(5), Ibu: intp(6), PPRemaja: intp(1), Jumlah: intp(12)},
	}}

	got := d.Totals()
	assert.Equal(t, StatsTotals{Bapak: 15, Ibu: 18, PPRemaja: 4, Jumlah: 37}, got)

	// jumlah per baris tidak pernah ditulis balik
	assert.Equal(t, 25, *d.Rows[0].Jumlah)
	assert.Equal(t, 12, *d.Rows[1].Jumlah)
}

func TestStatsTotalsNilColumns(t *testing.T) {
	d := StatsData{Rows: []StatsRow{
		{Keterangan: "Sekolah Minggu", PPRemaja: intp(40)},
		{Keterangan: "Kebaktian", Bapak: intp(10), Jumlah: intp(30)},
	}}
	got := d.Totals()
	assert.Equal(t, StatsTotals{Bapak: 10, Ibu: 0, PPRemaja: 40, Jumlah: 30}, got)
}

func TestStatsMoveRow(t *testing.T) {
	d := StatsData{Rows: []StatsRow{
		{Keterangan: "A"}, {Keterangan: "B"}, {Keterangan: "C"},
	}}
	out := d.MoveRow(0, 2)
	assert.Equal(t, "B", out.Rows[0].Keterangan)
	assert.Equal(t, "A", out.Rows[2].Keterangan)

	same := d.MoveRow(9, 0)
	assert.Equal(t, d.Rows, same.Rows)
}
