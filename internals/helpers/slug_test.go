package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	assert.Equal(t, "warta-minggu-adven-i", GenerateSlug("Warta Minggu Adven I"))
	assert.Equal(t, "kj-100-ajaib-benar-anugerah", GenerateSlug("KJ 100 — Ajaib Benar Anugerah!"))
	assert.Equal(t, "a-b", GenerateSlug("  a   b  "))
	assert.Equal(t, "", GenerateSlug("!!!"))
}

func TestSafeOrderClause(t *testing.T) {
	allowed := map[string]string{
		"created_at": "warta_created_at",
		"title":      "warta_title",
	}

	p := Params{SortBy: "title", SortOrder: "asc"}
	clause, err := p.SafeOrderClause(allowed, "created_at")
	assert.NoError(t, err)
	assert.Equal(t, "warta_title ASC", clause)

	// sort_by tak dikenal (termasuk upaya injection) jatuh ke kolom default
	p = Params{SortBy: "warta_title; DROP TABLE wartas", SortOrder: "asc"}
	clause, err = p.SafeOrderClause(allowed, "created_at")
	assert.NoError(t, err)
	assert.Equal(t, "warta_created_at ASC", clause)

	// tanpa default yang valid = error
	_, err = Params{SortBy: "x"}.SafeOrderClause(map[string]string{}, "created_at")
	assert.Error(t, err)
}
