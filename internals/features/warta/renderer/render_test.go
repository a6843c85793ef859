package renderer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lyrics "gerejaku_backend/internals/features/songs/lyrics"
	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
)

func staticResolver(store map[uuid.UUID][]lyrics.Section) *lyrics.Resolver {
	return lyrics.NewResolver(func(ctx context.Context, songID uuid.UUID) ([]lyrics.Section, bool, error) {
		s, ok := store[songID]
		return s, ok, nil
	})
}

func TestBuildBlockPlaceholderWhenUnconfigured(t *testing.T) {
	res := staticResolver(nil)

	m := composer.NewModule(composer.ModuleSong, 0)
	b := BuildBlock(m, res)
	assert.Equal(t, "Lagu belum dipilih", b.Placeholder)
	assert.Equal(t, "Nyanyian", b.Heading)
	assert.Empty(t, b.Lines)
}

func TestBuildBlockLegacyPayloadIsPlaceholder(t *testing.T) {
	res := staticResolver(nil)

	// payload rusak didekode sebagai LegacyData; render jadi placeholder,
	// bukan kegagalan dokumen
	m := composer.NewModule(composer.ModuleLiturgyOrder, 0)
	m.Payload = composer.DecodePayload(composer.ModuleLiturgyOrder, json.RawMessage(`{"items":"rusak"}`))
	require.IsType(t, composer.LegacyData{}, m.Payload)

	b := BuildBlock(m, res)
	assert.Equal(t, "Tata ibadah belum disusun", b.Placeholder)
}

func TestModuleIsolation(t *testing.T) {
	// satu modul rusak tidak menggagalkan modul lain dalam dokumen yang sama
	res := staticResolver(nil)

	broken := composer.NewModule(composer.ModuleLiturgyOrder, 0)
	broken.Payload = composer.DecodePayload(composer.ModuleLiturgyOrder, json.RawMessage(`{"items":42}`))

	fine := composer.NewModule(composer.ModuleAnnouncements, 1)
	fine.Payload = composer.AnnouncementsData{Items: []composer.AnnouncementItem{
		{ID: uuid.New(), Title: "Persekutuan doa Rabu 19.00"},
	}}

	doc := Preview(context.Background(), composer.Bulletin{
		ID:      uuid.New(),
		Modules: []composer.Module{broken, fine},
	}, res, 1.0)

	require.Len(t, doc.Blocks, 2)
	assert.NotEmpty(t, doc.Blocks[0].Placeholder)
	assert.Empty(t, doc.Blocks[1].Placeholder)
	assert.Contains(t, doc.Blocks[1].Lines, "Persekutuan doa Rabu 19.00")
}

func TestSongBlockMissingLyrics(t *testing.T) {
	res := staticResolver(map[uuid.UUID][]lyrics.Section{})
	songID := uuid.New()

	m := composer.NewModule(composer.ModuleSong, 0)
	m.Payload = composer.SongData{SongID: &songID, SongTitle: "Hilang", SongNumber: "KJ 1"}

	doc := Preview(context.Background(), composer.Bulletin{Modules: []composer.Module{m}}, res, 1.0)
	require.Len(t, doc.Blocks, 1)
	assert.Equal(t, "KJ 1 — Hilang", doc.Blocks[0].Heading)
	assert.Equal(t, []string{"Lirik tidak tersedia"}, doc.Blocks[0].Lines)
}

func TestZoomAndFontStepClamped(t *testing.T) {
	res := staticResolver(nil)
	b := composer.Bulletin{}

	assert.Equal(t, MinZoom, Preview(context.Background(), b, res, 0.1).Zoom)
	assert.Equal(t, MaxZoom, Preview(context.Background(), b, res, 9.9).Zoom)
	assert.Equal(t, 0.75, Preview(context.Background(), b, res, 0.75).Zoom)

	assert.Equal(t, MinFontStep, Public(context.Background(), b, res, -2).FontStep)
	assert.Equal(t, MaxFontStep, Public(context.Background(), b, res, 10).FontStep)
	assert.Equal(t, 2, Public(context.Background(), b, res, 2).FontStep)
}

func TestPublicFollowsArrayOrderNotOrderField(t *testing.T) {
	res := staticResolver(nil)

	first := composer.NewModule(composer.ModuleAnnouncements, 0)
	first.Order = 5 // field order menyesatkan; indeks array yang menentukan
	first.Payload = composer.AnnouncementsData{Items: []composer.AnnouncementItem{{ID: uuid.New(), Title: "Pertama"}}}

	second := composer.NewModule(composer.ModuleSickList, 1)
	second.Order = 0
	second.Payload = composer.SickListData{Items: []composer.SickItem{{ID: uuid.New(), Name: "Ibu Ani"}}}

	doc := Public(context.Background(), composer.Bulletin{Modules: []composer.Module{first, second}}, res, 1)
	require.Len(t, doc.Blocks, 2)
	assert.Equal(t, composer.ModuleAnnouncements, doc.Blocks[0].Type)
	assert.Equal(t, composer.ModuleSickList, doc.Blocks[1].Type)
}

func TestPrintEnvelope(t *testing.T) {
	res := staticResolver(nil)
	doc := Print(context.Background(), composer.Bulletin{Title: "Warta Minggu"}, res)
	assert.Equal(t, ContextPrint, doc.Context)
	assert.Equal(t, 2, doc.Columns)
	assert.Equal(t, "Warta Minggu", doc.Title)
}

func TestReferencedSongIDs(t *testing.T) {
	songA, songB := uuid.New(), uuid.New()

	song := composer.NewModule(composer.ModuleSong, 0)
	song.Payload = composer.SongData{SongID: &songA}

	liturgy := composer.NewModule(composer.ModuleLiturgyOrder, 1)
	liturgy.Payload = composer.LiturgyData{Items: []composer.LiturgyItem{
		{ID: uuid.New(), Title: "Nyanyian", Type: composer.LiturgySong, SongID: &songB},
		{ID: uuid.New(), Title: "Ulang", Type: composer.LiturgySong, SongID: &songA}, // duplikat
		{ID: uuid.New(), Title: "Votum", Type: composer.LiturgyRitual},
	}}

	got := ReferencedSongIDs(composer.Bulletin{Modules: []composer.Module{song, liturgy}})
	assert.Equal(t, []uuid.UUID{songA, songB}, got)
}

// Skenario lengkap: warta kosong → lagu KJ 100 (verse-1, refrain-1) →
// tata ibadah template 16 item → tata ibadah dipindah ke atas lagu.
// Preview dan Public harus menampilkan urutan & isi yang sama.
func TestComposeBulletinEndToEnd(t *testing.T) {
	songID := uuid.New()
	res := staticResolver(map[uuid.UUID][]lyrics.Section{
		songID: {
			{SectionType: "verse", Number: 1, Content: "Ajaib benar anugerah"},
			{SectionType: "refrain", Number: 1, Content: "Refrein KJ 100"},
			{SectionType: "verse", Number: 2, Content: "Bait dua"},
		},
	})

	// susun dokumen lewat operasi composer
	var modules []composer.Module
	modules = composer.AddModule(modules, composer.ModuleSong)
	modules = composer.AddModule(modules, composer.ModuleLiturgyOrder)

	song := composer.SelectSong(composer.SongRef{ID: songID, Title: "Ajaib Benar Anugerah", Number: "KJ 100"})
	song = song.ToggleSection("verse-1")
	song = song.ToggleSection("refrain-1")
	modules = composer.UpdateModuleData(modules, modules[0].ID, song)

	liturgy := composer.LiturgyData{}.AppendTemplate(composer.DefaultLiturgyTemplate())
	modules = composer.UpdateModuleData(modules, modules[1].ID, liturgy)

	// tata ibadah dipindah ke atas lagu
	modules = composer.MoveModule(modules, 1, 0)

	bulletin := composer.Bulletin{
		ID:      uuid.New(),
		Title:   "Warta Minggu Adven I",
		Modules: composer.NormalizeOrder(modules),
	}

	preview := Preview(context.Background(), bulletin, res, 1.0)
	public := Public(context.Background(), bulletin, res, 1)

	for _, doc := range []Document{preview, public} {
		require.Len(t, doc.Blocks, 2)

		// blok pertama: tata ibadah 16 item bernomor
		lit := doc.Blocks[0]
		assert.Equal(t, composer.ModuleLiturgyOrder, lit.Type)
		require.Len(t, lit.Lines, 16)
		assert.Equal(t, "1. Saat Teduh", lit.Lines[0])
		assert.Equal(t, "16. Pengutusan dan Berkat", lit.Lines[15])

		// blok kedua: lagu dengan dua bait terpilih, urut lirik
		songBlock := doc.Blocks[1]
		assert.Equal(t, "KJ 100 — Ajaib Benar Anugerah", songBlock.Heading)
		require.Len(t, songBlock.Lines, 4)
		assert.Equal(t, "Bait 1", songBlock.Lines[0])
		assert.Equal(t, "Ajaib benar anugerah", songBlock.Lines[1])
		assert.Equal(t, "Refrein", songBlock.Lines[2])
		assert.Equal(t, "Refrein KJ 100", songBlock.Lines[3])
	}

	// isi identik antar konteks; pembeda hanya amplop
	assert.Equal(t, preview.Blocks, public.Blocks)
}
