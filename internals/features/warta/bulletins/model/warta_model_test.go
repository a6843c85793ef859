package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
)

func TestToBulletinDecodesStoredModules(t *testing.T) {
	m := WartaModel{
		WartaID:       uuid.New(),
		WartaTitle:    "Warta Minggu",
		WartaWeekName: "Adven I",
		WartaModules: datatypes.JSON(`[
			{"id":"` + uuid.NewString() + `","type":"SONG","order":0,"data":{"songId":"` + uuid.NewString() + `","songTitle":"KJ 100"}},
			{"id":"` + uuid.NewString() + `","type":"LITURGY_ORDER","order":1,"data":{}}
		]`),
		WartaIsPublished: true,
	}

	b := m.ToBulletin()
	assert.Equal(t, "Warta Minggu", b.Title)
	assert.True(t, b.Published)
	require.Len(t, b.Modules, 2)

	song, ok := b.Modules[0].Payload.(composer.SongData)
	require.True(t, ok)
	assert.Equal(t, "KJ 100", song.SongTitle)

	assert.Nil(t, b.Modules[1].Payload, "data kosong = belum dikonfigurasi")
}

func TestToBulletinEmptyAndBrokenColumn(t *testing.T) {
	empty := WartaModel{WartaID: uuid.New()}
	assert.NotNil(t, empty.ToBulletin().Modules)
	assert.Empty(t, empty.ToBulletin().Modules)

	broken := WartaModel{WartaID: uuid.New(), WartaModules: datatypes.JSON(`bukan-json`)}
	assert.Empty(t, broken.ToBulletin().Modules, "kolom rusak = dokumen kosong, bukan panic")
}

func TestApplyBulletinRenumbersOrder(t *testing.T) {
	var modules []composer.Module
	modules = composer.AddModule(modules, composer.ModuleSong)
	modules = composer.AddModule(modules, composer.ModuleVerse)
	modules = composer.MoveModule(modules, 1, 0) // field order kini tidak urut

	var m WartaModel
	require.NoError(t, m.ApplyBulletin(composer.Bulletin{
		Title:   "Warta",
		Date:    time.Date(2026, 11, 29, 0, 0, 0, 0, time.UTC),
		Modules: modules,
	}))

	back := m.ToBulletin()
	require.Len(t, back.Modules, 2)
	assert.Equal(t, composer.ModuleVerse, back.Modules[0].Type)
	for i, mod := range back.Modules {
		assert.Equal(t, i, mod.Order, "order ditulis ulang mengikuti indeks")
	}
}

func TestApplyToBulletinRoundTripKeepsLegacyPayload(t *testing.T) {
	legacyModule := composer.Module{
		ID:      uuid.New(),
		Type:    composer.ModuleType("UNKNOWN"),
		Payload: composer.DecodePayload(composer.ModuleType("UNKNOWN"), []byte(`{"oldField":123}`)),
	}

	var m WartaModel
	require.NoError(t, m.ApplyBulletin(composer.Bulletin{Modules: []composer.Module{legacyModule}}))

	back := m.ToBulletin()
	require.Len(t, back.Modules, 1)
	legacy, ok := back.Modules[0].Payload.(composer.LegacyData)
	require.True(t, ok)
	assert.JSONEq(t, `{"oldField":123}`, string(legacy.Raw))
}
