// file: internals/features/warta/bulletins/composer/template.go
package composer

/* =========================================================
   Template baku
   ========================================================= */

// DefaultLiturgyTemplate menghasilkan susunan tata ibadah Minggu baku
// (16 item). ID dan order diisi saat AppendTemplate.
func DefaultLiturgyTemplate() []LiturgyItem {
	return []LiturgyItem{
		{Title: "Saat Teduh", Type: LiturgyRitual},
		{Title: "Panggilan Beribadah", Type: LiturgyRitual},
		{Title: "Votum dan Salam", Type: LiturgyRitual},
		{Title: "Nyanyian Pembukaan", Type: LiturgySong},
		{Title: "Pengakuan Dosa", Type: LiturgyPrayer},
		{Title: "Berita Anugerah", Type: LiturgyRitual},
		{Title: "Nyanyian Syukur", Type: LiturgySong},
		{Title: "Doa Pelayanan Firman", Type: LiturgyPrayer},
		{Title: "Pembacaan Alkitab", Type: LiturgyScripture},
		{Title: "Khotbah", Type: LiturgyOther},
		{Title: "Pengakuan Iman Rasuli", Type: LiturgyRitual},
		{Title: "Doa Syafaat", Type: LiturgyPrayer},
		{Title: "Warta Jemaat", Type: LiturgyAnnouncement},
		{Title: "Persembahan", Type: LiturgyOffering},
		{Title: "Nyanyian Penutup", Type: LiturgySong},
		{Title: "Pengutusan dan Berkat", Type: LiturgyRitual},
	}
}

// DefaultRosterRoles adalah 9 peran pelayan baku untuk "isi dengan default"
// (hanya saat daftar masih kosong).
func DefaultRosterRoles() []string {
	return []string{
		"Pelayan Firman",
		"Liturgos",
		"Majelis Bertugas",
		"Pemusik",
		"Prokantor",
		"Operator Multimedia",
		"Penyambut Jemaat",
		"Kolektan",
		"Konsistori",
	}
}

// InitDefaults mengisi peran baku bila daftar masih kosong; kalau sudah
// ada isinya, kembalikan apa adanya.
func (d RosterData) InitDefaults() RosterData {
	if len(d.Entries) > 0 {
		return d
	}
	out := d
	for _, role := range DefaultRosterRoles() {
		out = out.AddEntry(role)
	}
	return out
}
