package cli

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatFullName(t *testing.T) {
	tests := []struct {
		name     string
		nombre   string
		apellido string
		want     string
	}{
		{"both parts", "Juan", "Pérez", "Juan Pérez"},
		{"missing last name", "Juan", "", "Juan"},
		{"missing first name", "", "Pérez", "Pérez"},
		{"both empty", "", "", ""},
		{"surrounding space trimmed", " Ana ", " García ", "Ana García"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, FormatFullName(tt.nombre, tt.apellido))
		})
	}
}

func TestInitials(t *testing.T) {
	require.Equal(t, "JP", Initials("Juan", "Pérez"))
	require.Equal(t, "ÁG", Initials("ángel", "garcía"))
	require.Equal(t, "J", Initials("Juan", ""))
	require.Equal(t, "", Initials("", ""))
}

func TestFormatDateShort(t *testing.T) {
	require.Equal(t, "15/03/1990", FormatDateShort("1990-03-15"))
	require.Equal(t, "15/03/1990", FormatDateShort("1990-03-15T00:00:00Z"))
	require.Equal(t, "N/A", FormatDateShort(""))
	require.Equal(t, "N/A", FormatDateShort("not-a-date"))
}

func TestFormatPhone(t *testing.T) {
	require.Equal(t, "555-0101", FormatPhone("555-0101"))
	require.Equal(t, "No especificado", FormatPhone(""))
	require.Equal(t, "No especificado", FormatPhone("   "))
}

func TestAge(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		birth  string
		want   int
		wantOK bool
	}{
		{"birthday passed this year", "1990-03-15", 34, true},
		{"birthday later this year", "1990-09-15", 33, true},
		{"birthday today", "1990-06-01", 34, true},
		{"rfc3339 timestamp", "2000-01-01T00:00:00Z", 24, true},
		{"future date", "2030-01-01", 0, false},
		{"empty", "", 0, false},
		{"garbage", "ayer", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Age(tt.birth, now)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", Truncate("short", 10))
	require.Equal(t, "exactly-te", Truncate("exactly-te", 10))
	require.Equal(t, "uno dos tr...", Truncate("uno dos tres cuatro", 10))
	require.Equal(t, "ñoñé...", Truncate("ñoñérico", 4))
}
