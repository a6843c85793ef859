// file: internals/features/warta/bulletins/service/session.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	lyrics "gerejaku_backend/internals/features/songs/lyrics"
	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
	wmodel "gerejaku_backend/internals/features/warta/bulletins/model"
)

/* =========================================================
   EditSession: satu sesi penyusunan warta
   =========================================================

   Sesi memegang draft dokumen di memori, set modul yang dilipat
   (murni state tampilan, tidak ikut disimpan), dan satu cache
   lirik yang dioper eksplisit ke editor/renderer. Dokumen
   dipersist utuh hanya saat Save; simpan terakhir menang.
*/

var (
	ErrSessionNotFound = errors.New("sesi tidak ditemukan")
	ErrSaveInFlight    = errors.New("simpan sedang berjalan")
)

type EditSession struct {
	ID      uuid.UUID
	WartaID uuid.UUID

	mu        sync.Mutex
	bulletin  composer.Bulletin
	collapsed map[uuid.UUID]struct{}
	lyrics    *lyrics.Resolver
	saving    bool
	openedAt  time.Time
}

// Snapshot adalah potret sesi untuk dikirim ke klien.
type Snapshot struct {
	SessionID uuid.UUID         `json:"session_id"`
	Bulletin  composer.Bulletin `json:"bulletin"`
	Collapsed []uuid.UUID       `json:"collapsed"`
}

func (s *EditSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	collapsed := make([]uuid.UUID, 0, len(s.collapsed))
	for id := range s.collapsed {
		collapsed = append(collapsed, id)
	}
	return Snapshot{SessionID: s.ID, Bulletin: s.bulletin, Collapsed: collapsed}
}

// Bulletin mengembalikan salinan dokumen saat ini.
func (s *EditSession) Bulletin() composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bulletin
}

// Lyrics mengembalikan cache lirik sesi (dibagi semua renderer/editor).
func (s *EditSession) Lyrics() *lyrics.Resolver { return s.lyrics }

/* ============ Operasi daftar modul ============ */
// Mutasi diterapkan sinkron sesuai urutan permintaan; mutasi array tidak
// bergantung pada selesainya fetch lirik mana pun.

func (s *EditSession) AddModule(t composer.ModuleType) composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bulletin.Modules = composer.AddModule(s.bulletin.Modules, t)
	return s.bulletin
}

func (s *EditSession) RemoveModule(id uuid.UUID) composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bulletin.Modules = composer.RemoveModule(s.bulletin.Modules, id)
	delete(s.collapsed, id)
	return s.bulletin
}

func (s *EditSession) MoveModule(from, to int) composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bulletin.Modules = composer.MoveModule(s.bulletin.Modules, from, to)
	return s.bulletin
}

// UpdateModuleData mengganti payload modul dari JSON mentah (ganti penuh).
// Bentuk yang tidak valid untuk tipe modul menjadi varian legacy — editor
// interaktif tidak pernah mendapat error dari operasi ini.
func (s *EditSession) UpdateModuleData(id uuid.UUID, raw json.RawMessage) composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := composer.FindModule(s.bulletin.Modules, id)
	if m == nil {
		return s.bulletin
	}
	s.bulletin.Modules = composer.UpdateModuleData(s.bulletin.Modules, id, composer.DecodePayload(m.Type, raw))
	return s.bulletin
}

func (s *EditSession) ToggleCollapsed(id uuid.UUID) []uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.collapsed[id]; ok {
		delete(s.collapsed, id)
	} else {
		s.collapsed[id] = struct{}{}
	}
	out := make([]uuid.UUID, 0, len(s.collapsed))
	for k := range s.collapsed {
		out = append(out, k)
	}
	return out
}

/* ============ Operasi editor bertipe ============ */

// SelectSong mengisi modul SONG dari snapshot hasil pencarian.
// No-op bila modul bukan SONG.
func (s *EditSession) SelectSong(moduleID uuid.UUID, ref composer.SongRef) composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := composer.FindModule(s.bulletin.Modules, moduleID)
	if m == nil || m.Type != composer.ModuleSong {
		return s.bulletin
	}
	s.bulletin.Modules = composer.UpdateModuleData(s.bulletin.Modules, moduleID, composer.SelectSong(ref))
	return s.bulletin
}

// LoadLiturgyTemplate menambahkan template tata ibadah baku ke modul
// LITURGY_ORDER (di belakang item yang sudah ada).
func (s *EditSession) LoadLiturgyTemplate(moduleID uuid.UUID) composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := composer.FindModule(s.bulletin.Modules, moduleID)
	if m == nil || m.Type != composer.ModuleLiturgyOrder {
		return s.bulletin
	}
	d, _ := m.Payload.(composer.LiturgyData)
	s.bulletin.Modules = composer.UpdateModuleData(
		s.bulletin.Modules, moduleID, d.AppendTemplate(composer.DefaultLiturgyTemplate()))
	return s.bulletin
}

// InitRosterDefaults mengisi peran pelayan baku bila daftar masih kosong.
func (s *EditSession) InitRosterDefaults(moduleID uuid.UUID) composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := composer.FindModule(s.bulletin.Modules, moduleID)
	if m == nil || m.Type != composer.ModuleServantRoster {
		return s.bulletin
	}
	d, _ := m.Payload.(composer.RosterData)
	s.bulletin.Modules = composer.UpdateModuleData(s.bulletin.Modules, moduleID, d.InitDefaults())
	return s.bulletin
}

// SetMeta memperbarui judul/tanggal/nama minggu draft.
func (s *EditSession) SetMeta(title, weekName string, date *time.Time) composer.Bulletin {
	s.mu.Lock()
	defer s.mu.Unlock()
	if title != "" {
		s.bulletin.Title = title
	}
	if weekName != "" {
		s.bulletin.WeekName = weekName
	}
	if date != nil {
		s.bulletin.Date = *date
	}
	return s.bulletin
}

/* ============ Save ============ */

// Save mempersist dokumen utuh. Tombol simpan dinonaktifkan selama request
// berjalan (flag saving); gagal simpan DIANGKAT ke pemanggil karena
// kehilangan data diam-diam tidak bisa diterima.
func (s *EditSession) Save(ctx context.Context, db *gorm.DB) error {
	s.mu.Lock()
	if s.saving {
		s.mu.Unlock()
		return ErrSaveInFlight
	}
	s.saving = true
	s.bulletin.Modules = composer.NormalizeOrder(s.bulletin.Modules)
	b := s.bulletin
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.saving = false
		s.mu.Unlock()
	}()

	var m wmodel.WartaModel
	if err := db.WithContext(ctx).First(&m, "warta_id = ?", s.WartaID).Error; err != nil {
		return err
	}
	if err := m.ApplyBulletin(b); err != nil {
		return err
	}
	return db.WithContext(ctx).Save(&m).Error
}

/* =========================================================
   SessionRegistry
   ========================================================= */

type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*EditSession
}

func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{sessions: make(map[uuid.UUID]*EditSession)}
}

// Open memulai sesi edit dari warta tersimpan. Cache lirik baru dibuat per
// sesi — sesi baru melihat lirik terbaru, sesi berjalan tidak.
func (r *SessionRegistry) Open(ctx context.Context, db *gorm.DB, wartaID uuid.UUID) (*EditSession, error) {
	var m wmodel.WartaModel
	if err := db.WithContext(ctx).First(&m, "warta_id = ?", wartaID).Error; err != nil {
		return nil, err
	}

	s := &EditSession{
		ID:        uuid.New(),
		WartaID:   wartaID,
		bulletin:  m.ToBulletin(),
		collapsed: make(map[uuid.UUID]struct{}),
		lyrics:    lyrics.NewResolver(lyrics.DBFetch(db)),
		openedAt:  time.Now(),
	}

	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s, nil
}

func (r *SessionRegistry) Get(id uuid.UUID) (*EditSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

// Close membuang sesi (teardown bersih: cache lirik ikut terbuang).
func (r *SessionRegistry) Close(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
}
