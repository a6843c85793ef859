// file: internals/features/songs/lyrics/resolver.go
package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

/* =========================================================
   Resolver: fetch + cache lirik per sesi
   =========================================================

   Cache hidup selama satu sesi edit/lihat dan tidak pernah
   di-invalidate di tengah sesi (lagu yang diedit di tempat lain
   baru terlihat di sesi baru). Nilai cache immutable setelah
   tulis pertama; tulis ganda idempoten.
*/

// FetchFunc mengambil lirik ternormalisasi satu lagu dari penyimpanan.
// found=false untuk lagu yang tidak ada (bukan error).
type FetchFunc func(ctx context.Context, songID uuid.UUID) ([]Section, bool, error)

type Resolver struct {
	mu    sync.RWMutex
	cache map[uuid.UUID][]Section
	group singleflight.Group
	fetch FetchFunc
}

func NewResolver(fetch FetchFunc) *Resolver {
	return &Resolver{
		cache: make(map[uuid.UUID][]Section),
		fetch: fetch,
	}
}

// Resolve mengembalikan lirik lagu, mengambil dari cache bila ada.
// Lagu hilang atau fetch gagal menghasilkan daftar kosong — pemanggil
// menampilkan "lirik tidak tersedia", bukan error blokir.
// Permintaan paralel untuk lagu yang sama digabung (singleflight).
func (r *Resolver) Resolve(ctx context.Context, songID uuid.UUID) []Section {
	if s, ok := r.Cached(songID); ok {
		return s
	}

	v, err, _ := r.group.Do(songID.String(), func() (any, error) {
		// re-check: penerbang lain mungkin sudah mengisi cache
		if s, ok := r.Cached(songID); ok {
			return s, nil
		}
		sections, found, err := r.fetch(ctx, songID)
		if err != nil {
			return nil, err
		}
		if !found || sections == nil {
			sections = []Section{}
		}
		r.put(songID, sections)
		return sections, nil
	})
	if err != nil {
		log.Printf("[WARN] resolve lirik %s gagal: %v", songID, err)
		return []Section{}
	}
	return v.([]Section)
}

// Cached membaca cache tanpa memicu fetch.
func (r *Resolver) Cached(songID uuid.UUID) ([]Section, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.cache[songID]
	return s, ok
}

// Missing menyaring id yang belum ada di cache (diff untuk live preview).
func (r *Resolver) Missing(ids []uuid.UUID) []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]uuid.UUID, 0, len(ids))
	seen := make(map[uuid.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := r.cache[id]; !ok {
			out = append(out, id)
		}
	}
	return out
}

// ResolveAll memanaskan cache untuk sekumpulan lagu (print view melakukan
// satu batch resolve saat mount).
func (r *Resolver) ResolveAll(ctx context.Context, ids []uuid.UUID) {
	for _, id := range r.Missing(ids) {
		r.Resolve(ctx, id)
	}
}

func (r *Resolver) put(songID uuid.UUID, sections []Section) {
	r.mu.Lock()
	defer r.mu.Unlock()
	// last write wins; nilai identik & immutable sekali ter-fetch
	r.cache[songID] = sections
}

/* =========================================================
   Fetch dari tabel songs
   ========================================================= */

// DBFetch membuat FetchFunc di atas tabel songs (kolom lirik JSONB,
// dinormalisasi di boundary ini).
func DBFetch(db *gorm.DB) FetchFunc {
	return func(ctx context.Context, songID uuid.UUID) ([]Section, bool, error) {
		var row struct {
			SongLyrics json.RawMessage `gorm:"column:song_lyrics"`
		}
		err := db.WithContext(ctx).
			Table("songs").
			Select("song_lyrics").
			Where("song_id = ? AND song_deleted_at IS NULL", songID).
			Take(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, nil
			}
			return nil, false, err
		}
		return Normalize(row.SongLyrics), true, nil
	}
}
