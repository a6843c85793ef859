// file: internals/features/warta/bulletins/composer/list.go
package composer

import "github.com/google/uuid"

/* =========================================================
   Operasi daftar modul
   =========================================================

   Semua operasi murni: menerima slice, mengembalikan slice baru.
   Operasi pada id yang tidak ada adalah no-op (editor interaktif
   memilih ketersediaan, bukan error transaksional).
*/

// AddModule menambahkan modul kosong bertipe t di akhir daftar.
func AddModule(ms []Module, t ModuleType) []Module {
	out := make([]Module, 0, len(ms)+1)
	out = append(out, ms...)
	return append(out, NewModule(t, len(ms)))
}

// RemoveModule membuang modul dengan id tersebut. No-op bila tidak ada.
func RemoveModule(ms []Module, id uuid.UUID) []Module {
	out := make([]Module, 0, len(ms))
	for _, m := range ms {
		if m.ID != id {
			out = append(out, m)
		}
	}
	return out
}

// MoveModule memindahkan elemen dari indeks from ke to (cabut lalu sisip),
// elemen lain bergeser dengan urutan relatif tetap. Indeks from di luar
// rentang adalah no-op; to dijepit ke dalam rentang.
func MoveModule(ms []Module, from, to int) []Module {
	out := make([]Module, len(ms))
	copy(out, ms)
	if from < 0 || from >= len(out) {
		return out
	}
	if to < 0 {
		to = 0
	}
	if to >= len(out) {
		to = len(out) - 1
	}
	if from == to {
		return out
	}
	mv := out[from]
	out = append(out[:from], out[from+1:]...)
	out = append(out[:to], append([]Module{mv}, out[to:]...)...)
	return out
}

// UpdateModuleData mengganti payload modul dengan id tersebut (ganti penuh,
// bukan merge; editor masing-masing yang menyalin data lama bila perlu).
func UpdateModuleData(ms []Module, id uuid.UUID, p ModulePayload) []Module {
	out := make([]Module, len(ms))
	copy(out, ms)
	for i := range out {
		if out[i].ID == id {
			out[i].Payload = p
			break
		}
	}
	return out
}

// FindModule mengembalikan pointer modul di slice (nil bila tidak ada).
func FindModule(ms []Module, id uuid.UUID) *Module {
	for i := range ms {
		if ms[i].ID == id {
			return &ms[i]
		}
	}
	return nil
}
