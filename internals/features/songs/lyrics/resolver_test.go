package lyrics

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fetchFromMap(t *testing.T, store map[uuid.UUID][]Section, calls *int32) FetchFunc {
	t.Helper()
	return func(ctx context.Context, songID uuid.UUID) ([]Section, bool, error) {
		atomic.AddInt32(calls, 1)
		s, ok := store[songID]
		return s, ok, nil
	}
}

func TestResolveFetchesOncePerSong(t *testing.T) {
	songID := uuid.New()
	store := map[uuid.UUID][]Section{
		songID: {{SectionType: "verse", Number: 1, Content: "A"}},
	}
	var calls int32
	r := NewResolver(fetchFromMap(t, store, &calls))

	first := r.Resolve(context.Background(), songID)
	second := r.Resolve(context.Background(), songID)
	third := r.Resolve(context.Background(), songID)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "resolve idempoten: fetch sekali saja")
	assert.Equal(t, first, second)
	assert.Equal(t, second, third)
	require.Len(t, first, 1)
	assert.Equal(t, "A", first[0].Content)
}

func TestResolveMissingSong(t *testing.T) {
	var calls int32
	r := NewResolver(fetchFromMap(t, map[uuid.UUID][]Section{}, &calls))

	songID := uuid.New()
	got := r.Resolve(context.Background(), songID)
	assert.Empty(t, got, "lagu hilang = daftar kosong, bukan error")

	// hasil negatif ikut di-cache (tidak fetch ulang dalam sesi yang sama)
	_ = r.Resolve(context.Background(), songID)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, ok := r.Cached(songID)
	assert.True(t, ok)
}

func TestResolveFetchError(t *testing.T) {
	var calls int32
	r := NewResolver(func(ctx context.Context, songID uuid.UUID) ([]Section, bool, error) {
		atomic.AddInt32(&calls, 1)
		return nil, false, errors.New("db down")
	})

	songID := uuid.New()
	got := r.Resolve(context.Background(), songID)
	assert.Empty(t, got)

	// error tidak di-cache; percobaan berikutnya boleh fetch lagi
	_, ok := r.Cached(songID)
	assert.False(t, ok)
	_ = r.Resolve(context.Background(), songID)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestResolveCoalescesConcurrentRequests(t *testing.T) {
	songID := uuid.New()
	var calls int32
	gate := make(chan struct{})
	r := NewResolver(func(ctx context.Context, id uuid.UUID) ([]Section, bool, error) {
		atomic.AddInt32(&calls, 1)
		<-gate
		return []Section{{SectionType: "verse", Number: 1, Content: "A"}}, true, nil
	})

	const n = 8
	var wg sync.WaitGroup
	results := make([][]Section, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = r.Resolve(context.Background(), songID)
		}(i)
	}
	close(gate)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&calls), int32(2), "permintaan paralel digabung")
	for _, got := range results {
		require.Len(t, got, 1)
		assert.Equal(t, "A", got[0].Content)
	}
}

func TestMissingDiffAndDedupe(t *testing.T) {
	cached := uuid.New()
	missA := uuid.New()
	missB := uuid.New()
	store := map[uuid.UUID][]Section{cached: {}}
	var calls int32
	r := NewResolver(fetchFromMap(t, store, &calls))
	r.Resolve(context.Background(), cached)

	got := r.Missing([]uuid.UUID{cached, missA, missB, missA})
	assert.Equal(t, []uuid.UUID{missA, missB}, got)
}

func TestResolveAllWarmsCache(t *testing.T) {
	a, b := uuid.New(), uuid.New()
	store := map[uuid.UUID][]Section{
		a: {{SectionType: "verse", Number: 1, Content: "A"}},
		b: {{SectionType: "verse", Number: 1, Content: "B"}},
	}
	var calls int32
	r := NewResolver(fetchFromMap(t, store, &calls))

	r.ResolveAll(context.Background(), []uuid.UUID{a, b, a})
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	_, okA := r.Cached(a)
	_, okB := r.Cached(b)
	assert.True(t, okA)
	assert.True(t, okB)

	// panggilan kedua tidak fetch lagi
	r.ResolveAll(context.Background(), []uuid.UUID{a, b})
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}
