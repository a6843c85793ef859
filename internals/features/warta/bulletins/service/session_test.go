package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lyrics "gerejaku_backend/internals/features/songs/lyrics"
	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
)

func newTestSession() *EditSession {
	return &EditSession{
		ID:        uuid.New(),
		WartaID:   uuid.New(),
		collapsed: make(map[uuid.UUID]struct{}),
		lyrics: lyrics.NewResolver(func(ctx context.Context, songID uuid.UUID) ([]lyrics.Section, bool, error) {
			return nil, false, nil
		}),
		openedAt: time.Now(),
	}
}

func TestSessionModuleOps(t *testing.T) {
	s := newTestSession()

	b := s.AddModule(composer.ModuleSong)
	b = s.AddModule(composer.ModuleLiturgyOrder)
	require.Len(t, b.Modules, 2)

	songModuleID := b.Modules[0].ID

	b = s.MoveModule(1, 0)
	assert.Equal(t, composer.ModuleLiturgyOrder, b.Modules[0].Type)
	assert.Equal(t, songModuleID, b.Modules[1].ID)

	b = s.RemoveModule(songModuleID)
	require.Len(t, b.Modules, 1)

	// id tak dikenal = no-op
	b = s.RemoveModule(uuid.New())
	assert.Len(t, b.Modules, 1)
}

func TestSessionUpdateModuleData(t *testing.T) {
	s := newTestSession()
	b := s.AddModule(composer.ModuleAttendanceStats)
	id := b.Modules[0].ID

	b = s.UpdateModuleData(id, json.RawMessage(`{"rows":[{"id":"`+uuid.NewString()+`","keterangan":"Kebaktian I","jumlah":120}]}`))
	d, ok := b.Modules[0].Payload.(composer.StatsData)
	require.True(t, ok)
	require.Len(t, d.Rows, 1)
	assert.Equal(t, 120, *d.Rows[0].Jumlah)

	// bentuk rusak menjadi varian legacy, bukan error
	b = s.UpdateModuleData(id, json.RawMessage(`{"rows":"rusak"}`))
	_, isLegacy := b.Modules[0].Payload.(composer.LegacyData)
	assert.True(t, isLegacy)

	// objek kosong = kembali belum dikonfigurasi
	b = s.UpdateModuleData(id, json.RawMessage(`{}`))
	assert.Nil(t, b.Modules[0].Payload)
}

func TestSessionTypedEditorsAreTypeChecked(t *testing.T) {
	s := newTestSession()
	b := s.AddModule(composer.ModuleSong)
	b = s.AddModule(composer.ModuleLiturgyOrder)
	b = s.AddModule(composer.ModuleServantRoster)
	songID, litID, rosterID := b.Modules[0].ID, b.Modules[1].ID, b.Modules[2].ID

	// SelectSong pada modul bukan SONG = no-op
	b = s.SelectSong(litID, composer.SongRef{ID: uuid.New(), Title: "Salah Sasaran"})
	assert.Nil(t, b.Modules[1].Payload)

	b = s.SelectSong(songID, composer.SongRef{ID: uuid.New(), Title: "KJ 100"})
	sd, ok := b.Modules[0].Payload.(composer.SongData)
	require.True(t, ok)
	assert.Equal(t, "KJ 100", sd.SongTitle)

	b = s.LoadLiturgyTemplate(litID)
	ld, ok := b.Modules[1].Payload.(composer.LiturgyData)
	require.True(t, ok)
	assert.Len(t, ld.Items, 16)

	// muat ulang = menyambung, bukan mengganti
	b = s.LoadLiturgyTemplate(litID)
	ld = b.Modules[1].Payload.(composer.LiturgyData)
	assert.Len(t, ld.Items, 32)

	b = s.InitRosterDefaults(rosterID)
	rd, ok := b.Modules[2].Payload.(composer.RosterData)
	require.True(t, ok)
	assert.Len(t, rd.Entries, 9)
}

func TestSessionToggleCollapsed(t *testing.T) {
	s := newTestSession()
	id := uuid.New()

	got := s.ToggleCollapsed(id)
	assert.Equal(t, []uuid.UUID{id}, got)

	got = s.ToggleCollapsed(id)
	assert.Empty(t, got)

	// hapus modul ikut membersihkan state lipat
	b := s.AddModule(composer.ModuleSong)
	mid := b.Modules[0].ID
	s.ToggleCollapsed(mid)
	s.RemoveModule(mid)
	assert.Empty(t, s.Snapshot().Collapsed)
}

func TestSessionSetMeta(t *testing.T) {
	s := newTestSession()
	date := time.Date(2026, 11, 29, 0, 0, 0, 0, time.UTC)

	b := s.SetMeta("Warta Minggu", "Adven I", &date)
	assert.Equal(t, "Warta Minggu", b.Title)
	assert.Equal(t, "Adven I", b.WeekName)
	assert.Equal(t, date, b.Date)

	// field kosong tidak menimpa
	b = s.SetMeta("", "", nil)
	assert.Equal(t, "Warta Minggu", b.Title)
	assert.Equal(t, "Adven I", b.WeekName)
}

func TestRegistryGetClose(t *testing.T) {
	r := NewSessionRegistry()
	s := newTestSession()
	r.sessions[s.ID] = s

	got, err := r.Get(s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	r.Close(s.ID)
	_, err = r.Get(s.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = r.Get(uuid.New())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
