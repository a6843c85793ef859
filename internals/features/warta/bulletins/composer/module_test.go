package composer

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModuleJSONRoundTrip(t *testing.T) {
	songID := uuid.New()
	m := NewModule(ModuleSong, 0)
	m.Payload = SongData{
		SongID:           &songID,
		SongTitle:        "Ajaib Benar Anugerah",
		SongNumber:       "KJ 100",
		SelectedSections: []string{"verse-1", "refrain-1"},
	}

	b, err := json.Marshal(m)
	require.NoError(t, err)

	var back Module
	require.NoError(t, json.Unmarshal(b, &back))

	assert.Equal(t, m.ID, back.ID)
	assert.Equal(t, ModuleSong, back.Type)
	got, ok := back.Payload.(SongData)
	require.True(t, ok)
	assert.Equal(t, songID, *got.SongID)
	assert.Equal(t, []string{"verse-1", "refrain-1"}, got.SelectedSections)
}

func TestModuleJSONEmptyData(t *testing.T) {
	m := NewModule(ModuleVerse, 2)

	b, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"data":{}`, "payload nil diserialisasi sebagai objek kosong")

	var back Module
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Nil(t, back.Payload, "objek kosong didekode sebagai belum dikonfigurasi")
	assert.False(t, back.Configured())
}

func TestDecodePayloadVariants(t *testing.T) {
	t.Run("objek kosong / null = nil", func(t *testing.T) {
		assert.Nil(t, DecodePayload(ModuleSong, nil))
		assert.Nil(t, DecodePayload(ModuleSong, json.RawMessage(`{}`)))
		assert.Nil(t, DecodePayload(ModuleSong, json.RawMessage(`null`)))
	})

	t.Run("tiap tipe mendapat varian bertipenya", func(t *testing.T) {
		p := DecodePayload(ModuleLiturgyOrder, json.RawMessage(`{"items":[{"id":"`+uuid.NewString()+`","order":0,"title":"Votum","type":"RITUAL"}]}`))
		d, ok := p.(LiturgyData)
		require.True(t, ok)
		require.Len(t, d.Items, 1)
		assert.Equal(t, "Votum", d.Items[0].Title)
	})

	t.Run("bentuk rusak = LegacyData utuh", func(t *testing.T) {
		raw := json.RawMessage(`{"items":"bukan-array"}`)
		p := DecodePayload(ModuleLiturgyOrder, raw)
		legacy, ok := p.(LegacyData)
		require.True(t, ok)
		assert.JSONEq(t, string(raw), string(legacy.Raw))
		assert.False(t, legacy.Configured())
	})

	t.Run("tipe tak dikenal = LegacyData", func(t *testing.T) {
		p := DecodePayload(ModuleType("PODCAST"), json.RawMessage(`{"x":1}`))
		_, ok := p.(LegacyData)
		assert.True(t, ok)
	})
}

func TestLegacyDataRoundTrip(t *testing.T) {
	// simpan-ulang data lama tidak boleh membuang isi
	raw := json.RawMessage(`{"selectedVerses":[1,2],"songTitle":"Lama"}`)
	m := Module{ID: uuid.New(), Type: ModuleType("UNKNOWN"), Payload: LegacyData{Raw: raw}}

	b, err := json.Marshal(m)
	require.NoError(t, err)

	var back Module
	require.NoError(t, json.Unmarshal(b, &back))
	legacy, ok := back.Payload.(LegacyData)
	require.True(t, ok)
	assert.JSONEq(t, string(raw), string(legacy.Raw))
}

func TestModuleTypeValidAndLabel(t *testing.T) {
	assert.True(t, ModuleSong.Valid())
	assert.True(t, ModuleSickList.Valid())
	assert.False(t, ModuleType("PODCAST").Valid())

	assert.Equal(t, "Nyanyian", ModuleSong.Label())
	assert.Equal(t, "Tata Ibadah", ModuleLiturgyOrder.Label())
	assert.Equal(t, "PODCAST", ModuleType("PODCAST").Label())
}

func TestVerseReference(t *testing.T) {
	d := VerseData{BookName: "Yohanes", Chapter: 3, VerseStart: 16, VerseEnd: 17, Translation: "TB"}
	assert.Equal(t, "Yohanes 3:16-17 (TB)", d.Reference())

	single := VerseData{BookName: "Mazmur", Chapter: 23, VerseStart: 1, VerseEnd: 1}
	assert.Equal(t, "Mazmur 23:1", single.Reference())

	assert.Equal(t, "", VerseData{}.Reference())
}

func TestLiturgyItemSectionKeys(t *testing.T) {
	it := LiturgyItem{
		SelectedSections: []string{"refrain-1"},
		SelectedVerses:   []int{1, 3},
	}
	assert.Equal(t, []string{"refrain-1", "verse-1", "verse-3"}, it.SectionKeys())

	// bentuk lama murni
	old := LiturgyItem{SelectedVerses: []int{2}}
	assert.Equal(t, []string{"verse-2"}, old.SectionKeys())

	assert.Empty(t, LiturgyItem{}.SectionKeys())
}
