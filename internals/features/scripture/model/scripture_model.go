// file: internals/features/scripture/model/scripture_model.go
package model

import (
	"github.com/google/uuid"
)

/* =========================================================
   MODEL: bible_books & bible_verses (lookup ayat)
   ========================================================= */

type BibleBookModel struct {
	BibleBookID     string `gorm:"type:varchar(8);primaryKey;column:bible_book_id" json:"bible_book_id"` // mis. "yoh"
	BibleBookName   string `gorm:"type:varchar(40);not null;column:bible_book_name" json:"bible_book_name"`
	BibleBookOrder  int    `gorm:"type:int;not null;column:bible_book_order" json:"bible_book_order"`
	BibleBookChapters int  `gorm:"type:int;not null;column:bible_book_chapters" json:"bible_book_chapters"`
}

func (BibleBookModel) TableName() string { return "bible_books" }

type BibleVerseModel struct {
	BibleVerseID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:bible_verse_id" json:"bible_verse_id"`
	BibleVerseBookID      string    `gorm:"type:varchar(8);not null;column:bible_verse_book_id" json:"bible_verse_book_id"`
	BibleVerseChapter     int       `gorm:"type:int;not null;column:bible_verse_chapter" json:"bible_verse_chapter"`
	BibleVerseNumber      int       `gorm:"type:int;not null;column:bible_verse_number" json:"bible_verse_number"`
	BibleVerseTranslation string    `gorm:"type:varchar(8);not null;default:'TB';column:bible_verse_translation" json:"bible_verse_translation"`
	BibleVerseContent     string    `gorm:"type:text;not null;column:bible_verse_content" json:"bible_verse_content"`
}

func (BibleVerseModel) TableName() string { return "bible_verses" }
