package composer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idsOf(ms []Module) []uuid.UUID {
	out := make([]uuid.UUID, len(ms))
	for i, m := range ms {
		out[i] = m.ID
	}
	return out
}

func TestAddModule(t *testing.T) {
	ms := AddModule(nil, ModuleSong)
	ms = AddModule(ms, ModuleLiturgyOrder)

	require.Len(t, ms, 2)
	assert.Equal(t, ModuleSong, ms[0].Type)
	assert.Equal(t, ModuleLiturgyOrder, ms[1].Type)
	assert.Equal(t, 0, ms[0].Order)
	assert.Equal(t, 1, ms[1].Order)
	assert.Nil(t, ms[1].Payload, "modul baru belum dikonfigurasi")
	assert.NotEqual(t, ms[0].ID, ms[1].ID)
}

func TestRemoveModule(t *testing.T) {
	ms := AddModule(nil, ModuleSong)
	ms = AddModule(ms, ModuleVerse)
	ms = AddModule(ms, ModuleFinance)

	out := RemoveModule(ms, ms[1].ID)
	require.Len(t, out, 2)
	assert.Equal(t, []uuid.UUID{ms[0].ID, ms[2].ID}, idsOf(out))

	// id tak dikenal = no-op
	same := RemoveModule(out, uuid.New())
	assert.Equal(t, idsOf(out), idsOf(same))
}

func TestMoveModulePermutation(t *testing.T) {
	var ms []Module
	for _, typ := range []ModuleType{ModuleSong, ModuleVerse, ModuleLiturgyOrder, ModuleFinance} {
		ms = AddModule(ms, typ)
	}
	before := idsOf(ms)

	out := MoveModule(ms, 3, 1)
	require.Len(t, out, 4)

	// permutasi: elemen sama persis, hanya urutan berubah
	assert.ElementsMatch(t, before, idsOf(out))
	assert.Equal(t, []uuid.UUID{before[0], before[3], before[1], before[2]}, idsOf(out))
}

func TestMoveModuleEdgeCases(t *testing.T) {
	ms := AddModule(nil, ModuleSong)
	ms = AddModule(ms, ModuleVerse)
	ms = AddModule(ms, ModuleFinance)
	before := idsOf(ms)

	t.Run("from di luar rentang = no-op", func(t *testing.T) {
		assert.Equal(t, before, idsOf(MoveModule(ms, -1, 1)))
		assert.Equal(t, before, idsOf(MoveModule(ms, 7, 1)))
	})

	t.Run("to dijepit ke dalam rentang", func(t *testing.T) {
		out := MoveModule(ms, 0, 99)
		assert.Equal(t, []uuid.UUID{before[1], before[2], before[0]}, idsOf(out))

		out = MoveModule(ms, 2, -5)
		assert.Equal(t, []uuid.UUID{before[2], before[0], before[1]}, idsOf(out))
	})

	t.Run("from == to = no-op", func(t *testing.T) {
		assert.Equal(t, before, idsOf(MoveModule(ms, 1, 1)))
	})

	t.Run("input tidak termutasi", func(t *testing.T) {
		_ = MoveModule(ms, 0, 2)
		assert.Equal(t, before, idsOf(ms))
	})
}

func TestUpdateModuleData(t *testing.T) {
	ms := AddModule(nil, ModuleSong)
	ms = AddModule(ms, ModuleVerse)

	songID := uuid.New()
	out := UpdateModuleData(ms, ms[0].ID, SongData{SongID: &songID, SongTitle: "Kidung"})

	require.Len(t, out, 2)
	got, ok := out[0].Payload.(SongData)
	require.True(t, ok)
	assert.Equal(t, "Kidung", got.SongTitle)
	assert.Nil(t, out[1].Payload, "modul lain tidak tersentuh")
	assert.Nil(t, ms[0].Payload, "slice asal tidak termutasi")

	// id tak dikenal = no-op
	same := UpdateModuleData(out, uuid.New(), VerseData{Content: "x"})
	assert.Equal(t, out, same)
}

func TestNormalizeOrder(t *testing.T) {
	ms := AddModule(nil, ModuleSong)
	ms = AddModule(ms, ModuleVerse)
	ms = AddModule(ms, ModuleFinance)
	ms = MoveModule(ms, 2, 0)

	// setelah pindah, field Order belum tentu sama dengan indeks
	out := NormalizeOrder(ms)
	for i := range out {
		assert.Equal(t, i, out[i].Order)
	}
	assert.Equal(t, idsOf(ms), idsOf(out), "urutan array tidak berubah")
}

func TestFindModule(t *testing.T) {
	ms := AddModule(nil, ModuleSong)
	require.NotNil(t, FindModule(ms, ms[0].ID))
	assert.Nil(t, FindModule(ms, uuid.New()))
}
