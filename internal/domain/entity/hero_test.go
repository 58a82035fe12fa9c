package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func record(t *testing.T, raw string) BuildRecord {
	t.Helper()
	var rec BuildRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))
	return rec
}

func TestBuildRecordFields_LongShape(t *testing.T) {
	rec := record(t, `{
		"role": "Mid",
		"items": "Blink Dagger",
		"talents": "+30 damage",
		"skill_order": "Q-W-Q-E",
		"tips": "Hit creeps"
	}`)

	f, err := rec.Fields()
	require.NoError(t, err)
	require.Equal(t, "Mid", f.Role)
	require.Equal(t, "Blink Dagger", f.Items)
	require.Equal(t, "+30 damage", f.Talents)
	require.Equal(t, "Q-W-Q-E", f.SkillOrder)
	require.Equal(t, "Hit creeps", f.Tips)
}

func TestBuildRecordFields_ShortShape(t *testing.T) {
	rec := record(t, `{
		"r": "Carry",
		"i": "Battle Fury",
		"u": "+20 attack speed",
		"s": "Q-E-Q-W",
		"t": "Farm fast"
	}`)

	f, err := rec.Fields()
	require.NoError(t, err)
	require.Equal(t, "Carry", f.Role)
	require.Equal(t, "Battle Fury", f.Items)
	require.Equal(t, "Farm fast", f.Tips)
}

func TestBuildRecordFields_ItemListJoined(t *testing.T) {
	rec := record(t, `{
		"role": "Support",
		"items": ["Glimmer Cape", "Force Staff"],
		"talents": "+15% XP",
		"skill_order": "W-Q-W-E",
		"tips": "Stay behind"
	}`)

	f, err := rec.Fields()
	require.NoError(t, err)
	require.Equal(t, "Glimmer Cape\nForce Staff", f.Items)
}

func TestBuildRecordFields_Malformed(t *testing.T) {
	// Ключи из обеих схем вперемешку: ни одна не заполнена целиком.
	rec := record(t, `{"role": "Mid", "i": "Blink Dagger"}`)

	_, err := rec.Fields()
	require.ErrorIs(t, err, ErrMalformedRecord)
}

func TestBuildRecordFields_BadFieldValue(t *testing.T) {
	rec := record(t, `{
		"role": "Mid",
		"items": 42,
		"talents": "x",
		"skill_order": "x",
		"tips": "x"
	}`)

	_, err := rec.Fields()
	require.ErrorIs(t, err, ErrMalformedRecord)
}
