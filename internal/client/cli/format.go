package cli

import (
	"strings"
	"time"
	"unicode/utf8"
)

// Texts shown for absent optional values, matching the original screens.
const (
	noDate  = "N/A"
	noPhone = "No especificado"
)

// FormatFullName joins first and last name, tolerating either being empty.
func FormatFullName(nombre, apellido string) string {
	return strings.TrimSpace(strings.TrimSpace(nombre) + " " + strings.TrimSpace(apellido))
}

// Initials returns the uppercased initials of a name pair, e.g. "JP".
func Initials(nombre, apellido string) string {
	initial := func(s string) string {
		s = strings.TrimSpace(s)
		if s == "" {
			return ""
		}
		r, _ := utf8.DecodeRuneInString(s)
		return strings.ToUpper(string(r))
	}
	return initial(nombre) + initial(apellido)
}

// parseDate accepts the two shapes the backend emits for dates: bare ISO
// days and full RFC 3339 timestamps.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDateShort renders a wire date as DD/MM/YYYY, or a placeholder when
// absent or unparsable.
func FormatDateShort(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return noDate
	}
	return t.Format("02/01/2006")
}

// FormatPhone fills in the placeholder for missing phone numbers.
func FormatPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return noPhone
	}
	return phone
}

// Age computes full years between a wire birth date and now. ok is false
// when the date is absent, unparsable, or in the future.
func Age(birth string, now time.Time) (int, bool) {
	t, ok := parseDate(birth)
	if !ok {
		return 0, false
	}

	years := now.Year() - t.Year()
	anniversary := t.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
	}
	if years < 0 {
		return 0, false
	}
	return years, true
}

// Truncate shortens s to max runes, appending an ellipsis when cut.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max]) + "..."
}
