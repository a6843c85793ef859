// file: internals/features/warta/bulletins/composer/payloads.go
package composer

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

/* =========================================================
   ModulePayload: satu varian per ModuleType
   ========================================================= */

type ModulePayload interface {
	// Configured = modul punya isi yang layak dirender (bukan placeholder)
	Configured() bool
	payloadType() ModuleType
}

/* ==================== SONG ==================== */

type SongData struct {
	SongID           *uuid.UUID `json:"songId,omitempty"`
	SongTitle        string     `json:"songTitle,omitempty"`
	SongNumber       string     `json:"songNumber,omitempty"`
	Category         string     `json:"category,omitempty"`
	SelectedSections []string   `json:"selectedSections,omitempty"` // key "bait": "{sectionType}-{number}"
}

func (d SongData) Configured() bool        { return d.SongID != nil }
func (d SongData) payloadType() ModuleType { return ModuleSong }

/* ==================== VERSE ==================== */

type VerseData struct {
	BookID      string `json:"bookId,omitempty"`
	BookName    string `json:"bookName,omitempty"`
	Chapter     int    `json:"chapter,omitempty"`
	VerseStart  int    `json:"verseStart,omitempty"`
	VerseEnd    int    `json:"verseEnd,omitempty"`
	Translation string `json:"translation,omitempty"`
	Category    string `json:"category,omitempty"` // klasifikasi bebas: bacaan khotbah, epistel, dst.
	Content     string `json:"content,omitempty"`  // teks ayat hasil lookup, disimpan verbatim
}

func (d VerseData) Configured() bool        { return d.Content != "" }
func (d VerseData) payloadType() ModuleType { return ModuleVerse }

// Reference menyusun referensi tampil, mis. "Yohanes 3:16-17 (TB)".
func (d VerseData) Reference() string {
	if d.BookName == "" {
		return ""
	}
	ref := fmt.Sprintf("%s %d:%d", d.BookName, d.Chapter, d.VerseStart)
	if d.VerseEnd > d.VerseStart {
		ref = fmt.Sprintf("%s-%d", ref, d.VerseEnd)
	}
	if d.Translation != "" {
		ref += " (" + d.Translation + ")"
	}
	return ref
}

/* ==================== LITURGY_ORDER ==================== */

type LiturgyItemType string

const (
	LiturgyRitual       LiturgyItemType = "RITUAL"
	LiturgySong         LiturgyItemType = "SONG"
	LiturgyPrayer       LiturgyItemType = "PRAYER"
	LiturgyScripture    LiturgyItemType = "SCRIPTURE"
	LiturgyOffering     LiturgyItemType = "OFFERING"
	LiturgyAnnouncement LiturgyItemType = "ANNOUNCEMENT"
	LiturgyOther        LiturgyItemType = "OTHER"
)

func (t LiturgyItemType) Valid() bool {
	switch t {
	case LiturgyRitual, LiturgySong, LiturgyPrayer, LiturgyScripture,
		LiturgyOffering, LiturgyAnnouncement, LiturgyOther:
		return true
	default:
		return false
	}
}

type LiturgyItem struct {
	ID          uuid.UUID  `json:"id"`
	Order       int        `json:"order"`
	Title       string     `json:"title"`
	Type        LiturgyItemType `json:"type"`
	Description string     `json:"description,omitempty"`
	Content     string     `json:"content,omitempty"` // teks literal bila tidak menautkan lagu
	SongID      *uuid.UUID `json:"songId,omitempty"`
	SongTitle   string     `json:"songTitle,omitempty"`
	SongNumber  string     `json:"songNumber,omitempty"`
	// Kunci bait terpilih; selectedVerses adalah bentuk lama (nomor bait polos)
	SelectedSections []string `json:"selectedSections,omitempty"`
	SelectedVerses   []int    `json:"selectedVerses,omitempty"`
}

// SectionKeys menggabungkan kunci bait baru + lama ("verse-N") jadi satu daftar.
func (it LiturgyItem) SectionKeys() []string {
	keys := make([]string, 0, len(it.SelectedSections)+len(it.SelectedVerses))
	keys = append(keys, it.SelectedSections...)
	for _, n := range it.SelectedVerses {
		keys = append(keys, fmt.Sprintf("verse-%d", n))
	}
	return keys
}

type LiturgyData struct {
	Items []LiturgyItem `json:"items,omitempty"`
}

func (d LiturgyData) Configured() bool        { return len(d.Items) > 0 }
func (d LiturgyData) payloadType() ModuleType { return ModuleLiturgyOrder }

/* ==================== SERVANT_ROSTER ==================== */

type RosterEntry struct {
	ID    uuid.UUID `json:"id"`
	Role  string    `json:"role"`
	Names []string  `json:"names,omitempty"`
}

type RosterData struct {
	Entries []RosterEntry `json:"entries,omitempty"`
}

func (d RosterData) Configured() bool        { return len(d.Entries) > 0 }
func (d RosterData) payloadType() ModuleType { return ModuleServantRoster }

/* ==================== ATTENDANCE_STATS ==================== */

type StatsRow struct {
	ID         uuid.UUID `json:"id"`
	Keterangan string    `json:"keterangan"`
	Bapak      *int      `json:"bapak,omitempty"`
	Ibu        *int      `json:"ibu,omitempty"`
	PPRemaja   *int      `json:"ppRemaja,omitempty"`
	// Jumlah TIDAK diturunkan otomatis dari tiga kolom lain; kolom mandiri.
	Jumlah *int `json:"jumlah,omitempty"`
}

type StatsData struct {
	Title string     `json:"title,omitempty"`
	Rows  []StatsRow `json:"rows,omitempty"`
}

func (d StatsData) Configured() bool        { return len(d.Rows) > 0 }
func (d StatsData) payloadType() ModuleType { return ModuleAttendanceStats }

/* ==================== FINANCE ==================== */

type FinanceRow struct {
	ID         uuid.UUID `json:"id"`
	Keterangan string    `json:"keterangan"`
	Nominal    int64     `json:"nominal"`
}

type FinanceData struct {
	Rows []FinanceRow `json:"rows,omitempty"`
}

func (d FinanceData) Configured() bool        { return len(d.Rows) > 0 }
func (d FinanceData) payloadType() ModuleType { return ModuleFinance }

/* ==================== BIRTHDAYS ==================== */

type BirthdayItem struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Date string    `json:"date,omitempty"` // "02-01" atau tanggal penuh, teks bebas
}

type BirthdaysData struct {
	Items []BirthdayItem `json:"items,omitempty"`
}

func (d BirthdaysData) Configured() bool        { return len(d.Items) > 0 }
func (d BirthdaysData) payloadType() ModuleType { return ModuleBirthdays }

/* ==================== SICK_LIST ==================== */

type SickItem struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location,omitempty"` // dirawat di mana / di rumah
	Note     string    `json:"note,omitempty"`
}

type SickListData struct {
	Items []SickItem `json:"items,omitempty"`
}

func (d SickListData) Configured() bool        { return len(d.Items) > 0 }
func (d SickListData) payloadType() ModuleType { return ModuleSickList }

/* ==================== ANNOUNCEMENTS ==================== */

type AnnouncementItem struct {
	ID      uuid.UUID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content,omitempty"`
}

type AnnouncementsData struct {
	Items []AnnouncementItem `json:"items,omitempty"`
}

func (d AnnouncementsData) Configured() bool        { return len(d.Items) > 0 }
func (d AnnouncementsData) payloadType() ModuleType { return ModuleAnnouncements }

/* ==================== LEGACY ==================== */

// LegacyData menampung payload yang bentuknya tidak cocok dengan tipe modul
// (warta lama sebelum perubahan skema, atau tipe yang tidak dikenal).
// Sengaja dipertahankan utuh supaya simpan-ulang tidak membuang data.
type LegacyData struct {
	Raw json.RawMessage
}

func (d LegacyData) Configured() bool        { return false }
func (d LegacyData) payloadType() ModuleType { return "" }

func (d LegacyData) MarshalJSON() ([]byte, error) {
	if len(d.Raw) == 0 {
		return []byte("{}"), nil
	}
	return d.Raw, nil
}

/* =========================================================
   DecodePayload: RawMessage -> varian bertipe
   ========================================================= */

func emptyObject(b []byte) bool {
	t := bytes.TrimSpace(b)
	return len(t) == 0 || bytes.Equal(t, []byte("{}")) || bytes.Equal(t, []byte("null"))
}

// DecodePayload mendekode `data` sesuai tipe modul. Objek kosong berarti
// "belum dikonfigurasi" (nil). Bentuk yang tidak bisa didekode atau tipe
// yang tidak dikenal menjadi LegacyData, tidak pernah error.
func DecodePayload(t ModuleType, data json.RawMessage) ModulePayload {
	if emptyObject(data) {
		return nil
	}

	var (
		p   ModulePayload
		err error
	)
	switch t {
	case ModuleSong:
		var d SongData
		err = json.Unmarshal(data, &d)
		p = d
	case ModuleVerse:
		var d VerseData
		err = json.Unmarshal(data, &d)
		p = d
	case ModuleLiturgyOrder:
		var d LiturgyData
		err = json.Unmarshal(data, &d)
		p = d
	case ModuleServantRoster:
		var d RosterData
		err = json.Unmarshal(data, &d)
		p = d
	case ModuleAttendanceStats:
		var d StatsData
		err = json.Unmarshal(data, &d)
		p = d
	case ModuleFinance:
		var d FinanceData
		err = json.Unmarshal(data, &d)
		p = d
	case ModuleBirthdays:
		var d BirthdaysData
		err = json.Unmarshal(data, &d)
		p = d
	case ModuleSickList:
		var d SickListData
		err = json.Unmarshal(data, &d)
		p = d
	case ModuleAnnouncements:
		var d AnnouncementsData
		err = json.Unmarshal(data, &d)
		p = d
	default:
		return LegacyData{Raw: append(json.RawMessage(nil), data...)}
	}
	if err != nil {
		return LegacyData{Raw: append(json.RawMessage(nil), data...)}
	}
	return p
}
