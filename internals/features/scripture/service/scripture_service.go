// file: internals/features/scripture/service/scripture_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	smodel "gerejaku_backend/internals/features/scripture/model"
)

/* =========================================================
   Lookup ayat + penggabungan teks tampil
   ========================================================= */

type Verse struct {
	VerseNumber int    `json:"verseNumber"`
	Content     string `json:"content"`
}

// ListBooks mengembalikan kitab urut kanonik.
func ListBooks(ctx context.Context, db *gorm.DB) ([]smodel.BibleBookModel, error) {
	var rows []smodel.BibleBookModel
	err := db.WithContext(ctx).Order("bible_book_order ASC").Find(&rows).Error
	return rows, err
}

// GetVerses mengambil rentang ayat. verseEnd 0 berarti sampai akhir pasal;
// verseStart 0 berarti dari ayat 1.
func GetVerses(ctx context.Context, db *gorm.DB, bookID string, chapter, verseStart, verseEnd int, translation string) ([]Verse, error) {
	if translation == "" {
		translation = "TB"
	}
	tx := db.WithContext(ctx).Model(&smodel.BibleVerseModel{}).
		Where("bible_verse_book_id = ? AND bible_verse_chapter = ? AND bible_verse_translation = ?",
			strings.ToLower(strings.TrimSpace(bookID)), chapter, translation)
	if verseStart > 0 {
		tx = tx.Where("bible_verse_number >= ?", verseStart)
	}
	if verseEnd > 0 {
		tx = tx.Where("bible_verse_number <= ?", verseEnd)
	}

	var rows []smodel.BibleVerseModel
	if err := tx.Order("bible_verse_number ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]Verse, 0, len(rows))
	for _, r := range rows {
		out = append(out, Verse{VerseNumber: r.BibleVerseNumber, Content: r.BibleVerseContent})
	}
	return out, nil
}

// ConcatVerses menyusun teks tampil: "1. {isi} 2. {isi} ...".
// Bentuk inilah yang disimpan verbatim sebagai `content` modul VERSE.
func ConcatVerses(verses []Verse) string {
	parts := make([]string, 0, len(verses))
	for _, v := range verses {
		parts = append(parts, fmt.Sprintf("%d. %s", v.VerseNumber, strings.TrimSpace(v.Content)))
	}
	return strings.Join(parts, " ")
}
