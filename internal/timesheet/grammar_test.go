package timesheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchProject(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantCode string
		wantName string
		ok       bool
	}{
		{"strict dash", "12345-Hull Repair", "12345", "Hull Repair", true},
		{"strict spaced dash", " 12345 - Hull Repair ", "12345", "Hull Repair", true},
		{"en dash", "12345 – Bow Section", "12345", "Bow Section", true},
		{"loose whitespace", "12345 Hull Repair", "12345", "Hull Repair", true},
		{"four digits", "1234-Too Short", "", "", false},
		{"six digits", "123456-Too Long", "", "", false},
		{"no name", "12345", "", "", false},
		{"imputation tag", "1-HORA NORMAL", "", "", false},
		{"empty", "", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref, ok := MatchProject(tt.text)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.wantCode, ref.Code)
				assert.Equal(t, tt.wantName, ref.Name)
			}
		})
	}
}

func TestMatchProjectPrefersStrictForm(t *testing.T) {
	// A cell matching both forms parses through the strict rule, so the
	// dash never leaks into the name.
	ref, ok := MatchProject("54321 - Deck Crane")
	require.True(t, ok)
	assert.Equal(t, "Deck Crane", ref.Name)
}

func TestMatchImputation(t *testing.T) {
	idx, tag, ok := MatchImputation("1-HORA NORMAL")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "1-HORA NORMAL", tag)

	idx, tag, ok = MatchImputation("  2 - hora extra  ")
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, "2 - hora extra", tag)

	_, _, ok = MatchImputation("12345-Hull Repair")
	assert.False(t, ok)
	_, _, ok = MatchImputation("HORA NORMAL")
	assert.False(t, ok)
	_, _, ok = MatchImputation("")
	assert.False(t, ok)
}

func TestIsSectionMarker(t *testing.T) {
	assert.True(t, IsSectionMarker("Proyectos:"))
	assert.True(t, IsSectionMarker("  PROYECTOS  "))
	assert.True(t, IsSectionMarker("proyectos:"))
	assert.False(t, IsSectionMarker("Proyecto 12345"))
	assert.False(t, IsSectionMarker(""))
}

func TestIsMonthBanner(t *testing.T) {
	assert.True(t, IsMonthBanner("enero de 2025"))
	assert.True(t, IsMonthBanner("Horas de Septiembre de 2024"))
	assert.False(t, IsMonthBanner("enero 2025"))
	assert.False(t, IsMonthBanner("January de 2025"))
}

func TestIsWeekdayToken(t *testing.T) {
	for _, tok := range []string{"L", "ma", "Mié", "dom", "x"} {
		assert.True(t, IsWeekdayToken(tok), tok)
	}
	for _, tok := range []string{"8", "lunes?", "", "total"} {
		assert.False(t, IsWeekdayToken(tok), tok)
	}
}
