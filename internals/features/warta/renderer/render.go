// file: internals/features/warta/renderer/render.go
package renderer

import (
	"context"
	"time"

	"github.com/google/uuid"

	lyrics "gerejaku_backend/internals/features/songs/lyrics"
	composer "gerejaku_backend/internals/features/warta/bulletins/composer"
)

/* =========================================================
   Tiga konteks render di atas (bulletin, cache lirik) yang sama
   ========================================================= */

type RenderContext string

const (
	ContextPreview RenderContext = "preview"
	ContextPrint   RenderContext = "print"
	ContextPublic  RenderContext = "public"
)

const (
	MinZoom = 0.4
	MaxZoom = 1.5

	// Public viewer: empat langkah ukuran font diskrit
	MinFontStep = 0
	MaxFontStep = 3
)

type Document struct {
	Context  RenderContext `json:"context"`
	WartaID  uuid.UUID     `json:"wartaId"`
	Title    string        `json:"title"`
	Date     time.Time     `json:"date"`
	WeekName string        `json:"weekName"`

	Zoom     float64 `json:"zoom,omitempty"`     // preview
	Columns  int     `json:"columns,omitempty"`  // print: reflow multi kolom
	FontStep int     `json:"fontStep"`           // public

	Blocks []Block `json:"blocks"`
}

func buildBlocks(b composer.Bulletin, res *lyrics.Resolver) []Block {
	// urutan render = urutan array, satu-satunya sumber kebenaran
	blocks := make([]Block, 0, len(b.Modules))
	for _, m := range b.Modules {
		blocks = append(blocks, BuildBlock(m, res))
	}
	return blocks
}

// Preview merender pratinjau hidup. Dipanggil ulang pada tiap mutasi;
// hanya lagu yang belum ada di cache yang di-resolve (diff), zoom dijepit
// ke rentang 0.4–1.5.
func Preview(ctx context.Context, b composer.Bulletin, res *lyrics.Resolver, zoom float64) Document {
	if zoom < MinZoom {
		zoom = MinZoom
	}
	if zoom > MaxZoom {
		zoom = MaxZoom
	}
	for _, id := range res.Missing(ReferencedSongIDs(b)) {
		res.Resolve(ctx, id)
	}
	return Document{
		Context:  ContextPreview,
		WartaID:  b.ID,
		Title:    b.Title,
		Date:     b.Date,
		WeekName: b.WeekName,
		Zoom:     zoom,
		Blocks:   buildBlocks(b, res),
	}
}

// Print merender tata letak cetak: isi & urutan sama dengan preview,
// seluruh lagu yang dirujuk di-resolve sekali di muka (batch saat mount).
func Print(ctx context.Context, b composer.Bulletin, res *lyrics.Resolver) Document {
	res.ResolveAll(ctx, ReferencedSongIDs(b))
	return Document{
		Context:  ContextPrint,
		WartaID:  b.ID,
		Title:    b.Title,
		Date:     b.Date,
		WeekName: b.WeekName,
		Columns:  2,
		Blocks:   buildBlocks(b, res),
	}
}

// Public merender tampilan baca jemaat: read-only, empat langkah font.
// Urutan mengikuti indeks array — tidak ada sort ulang berdasarkan field
// order (dulu public viewer sort sendiri; sekarang seragam).
func Public(ctx context.Context, b composer.Bulletin, res *lyrics.Resolver, fontStep int) Document {
	if fontStep < MinFontStep {
		fontStep = MinFontStep
	}
	if fontStep > MaxFontStep {
		fontStep = MaxFontStep
	}
	res.ResolveAll(ctx, ReferencedSongIDs(b))
	return Document{
		Context:  ContextPublic,
		WartaID:  b.ID,
		Title:    b.Title,
		Date:     b.Date,
		WeekName: b.WeekName,
		FontStep: fontStep,
		Blocks:   buildBlocks(b, res),
	}
}
