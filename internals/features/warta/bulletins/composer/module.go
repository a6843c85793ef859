// file: internals/features/warta/bulletins/composer/module.go
package composer

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUM: ModuleType (diskriminator modul warta)
   ========================================================= */

type ModuleType string

const (
	ModuleSong            ModuleType = "SONG"
	ModuleVerse           ModuleType = "VERSE"
	ModuleLiturgyOrder    ModuleType = "LITURGY_ORDER"
	ModuleServantRoster   ModuleType = "SERVANT_ROSTER"
	ModuleAnnouncements   ModuleType = "ANNOUNCEMENTS"
	ModuleAttendanceStats ModuleType = "ATTENDANCE_STATS"
	ModuleFinance         ModuleType = "FINANCE"
	ModuleBirthdays       ModuleType = "BIRTHDAYS"
	ModuleSickList        ModuleType = "SICK_LIST"
)

func (t ModuleType) Valid() bool {
	switch t {
	case ModuleSong, ModuleVerse, ModuleLiturgyOrder, ModuleServantRoster,
		ModuleAnnouncements, ModuleAttendanceStats, ModuleFinance,
		ModuleBirthdays, ModuleSickList:
		return true
	default:
		return false
	}
}

// Label judul default per jenis modul (dipakai renderer)
func (t ModuleType) Label() string {
	switch t {
	case ModuleSong:
		return "Nyanyian"
	case ModuleVerse:
		return "Ayat Alkitab"
	case ModuleLiturgyOrder:
		return "Tata Ibadah"
	case ModuleServantRoster:
		return "Pelayan Ibadah"
	case ModuleAnnouncements:
		return "Warta Jemaat"
	case ModuleAttendanceStats:
		return "Statistik Kehadiran"
	case ModuleFinance:
		return "Ringkasan Keuangan"
	case ModuleBirthdays:
		return "Ulang Tahun"
	case ModuleSickList:
		return "Doa Bagi yang Sakit"
	default:
		return string(t)
	}
}

/* =========================================================
   MODULE: satu blok konten warta (tagged union)
   =========================================================

   `Payload` bertipe sesuai `Type`. Payload nil berarti modul
   belum dikonfigurasi; editor & renderer wajib menampilkan
   affordance setup, bukan error. Data lama yang bentuknya tak
   dikenal didekode sebagai LegacyData (varian sengaja, bukan
   kecelakaan runtime).
*/

type Module struct {
	ID    uuid.UUID
	Type  ModuleType
	Order int // metadata posisi; sumber kebenaran urutan adalah indeks array
	Payload ModulePayload
}

// NewModule membuat modul kosong pada posisi order (jumlah modul saat ini).
func NewModule(t ModuleType, order int) Module {
	return Module{
		ID:    uuid.New(),
		Type:  t,
		Order: order,
	}
}

// Configured melaporkan apakah modul sudah punya isi yang bisa dirender.
func (m Module) Configured() bool {
	return m.Payload != nil && m.Payload.Configured()
}

/* ============ JSON (bentuk dokumen tersimpan) ============ */

type moduleJSON struct {
	ID    uuid.UUID       `json:"id"`
	Type  ModuleType      `json:"type"`
	Order int             `json:"order"`
	Data  json.RawMessage `json:"data"`
}

func (m Module) MarshalJSON() ([]byte, error) {
	data := json.RawMessage("{}")
	if m.Payload != nil {
		b, err := json.Marshal(m.Payload)
		if err != nil {
			return nil, err
		}
		data = b
	}
	return json.Marshal(moduleJSON{
		ID:    m.ID,
		Type:  m.Type,
		Order: m.Order,
		Data:  data,
	})
}

func (m *Module) UnmarshalJSON(b []byte) error {
	var raw moduleJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	m.ID = raw.ID
	m.Type = raw.Type
	m.Order = raw.Order
	m.Payload = DecodePayload(raw.Type, raw.Data)
	return nil
}

/* =========================================================
   BULLETIN: satu dokumen warta ibadah
   ========================================================= */

type Bulletin struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Date      time.Time `json:"date"`
	WeekName  string    `json:"weekName"` // label minggu liturgi, mis. "Adven I"
	Modules   []Module  `json:"modules"`
	Published bool      `json:"published"`
}

// NormalizeOrder menyamakan field Order dengan indeks array. Dipanggil saat
// simpan supaya pembaca lama yang masih melihat `order` tidak tersesat.
func NormalizeOrder(ms []Module) []Module {
	out := make([]Module, len(ms))
	copy(out, ms)
	for i := range out {
		out[i].Order = i
	}
	return out
}
