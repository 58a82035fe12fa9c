package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCatalog_PreservesOrder(t *testing.T) {
	// Имена нарочно не по алфавиту: порядок должен совпасть с файлом.
	src := `{
		"Windranger": {"r": "Mid", "i": "Maelstrom", "u": "+1", "s": "Q", "t": "Run"},
		"Axe": {"r": "Offlane", "i": "Blade Mail", "u": "+2", "s": "W", "t": "Jump"},
		"Lion": {"r": "Support", "i": "Blink", "u": "+3", "s": "E", "t": "Stun"}
	}`

	c, err := ParseCatalog(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []string{"Windranger", "Axe", "Lion"}, c.Names())

	rec, ok := c.Get("Axe")
	require.True(t, ok)
	f, err := rec.Fields()
	require.NoError(t, err)
	require.Equal(t, "Offlane", f.Role)
}

func TestParseCatalog_Empty(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(`{}`))
	require.ErrorContains(t, err, "empty")
}

func TestParseCatalog_NotAnObject(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(`["Axe"]`))
	require.Error(t, err)
}

func TestParseCatalog_EmptyHeroName(t *testing.T) {
	_, err := ParseCatalog(strings.NewReader(`{"  ": {"r": "x", "i": "x", "u": "x", "s": "x", "t": "x"}}`))
	require.ErrorContains(t, err, "empty hero name")
}

func TestParseCatalog_DuplicateHero(t *testing.T) {
	src := `{
		"Axe": {"r": "Offlane", "i": "x", "u": "x", "s": "x", "t": "x"},
		"Axe": {"r": "Carry", "i": "x", "u": "x", "s": "x", "t": "x"}
	}`
	_, err := ParseCatalog(strings.NewReader(src))
	require.ErrorContains(t, err, "duplicate")
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "heroes.json")
	src := `{"Lion": {"role": "Support", "items": "Blink", "talents": "+3", "skill_order": "E", "tips": "Stun"}}`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	c, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Equal(t, []string{"Lion"}, c.Names())
}
