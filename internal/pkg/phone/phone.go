// Package phone handles French phone numbers as accepted by the booking form.
package phone

import (
	"regexp"
	"strings"
)

// Accepts 0X XX XX XX XX, +33 X XX.. and 0033 X XX.. with space, dot or dash separators.
var frenchPattern = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)

var separators = strings.NewReplacer(" ", "", "\t", "", ".", "", "-", "")

func Valid(raw string) bool {
	return frenchPattern.MatchString(strings.TrimSpace(raw))
}

// Canonical strips separators and turns the international prefix into bare 33.
func Canonical(raw string) string {
	s := separators.Replace(strings.TrimSpace(raw))
	switch {
	case strings.HasPrefix(s, "+33"):
		return s[1:]
	case strings.HasPrefix(s, "0033"):
		return s[2:]
	}
	return s
}

// National returns the ten digit 0X form, or the canonical input when it is not French.
func National(raw string) string {
	s := Canonical(raw)
	if strings.HasPrefix(s, "33") && len(s) == 11 {
		return "0" + s[2:]
	}
	return s
}

// E164 returns +33XXXXXXXXX, or "" when the number cannot be mapped.
func E164(raw string) string {
	n := National(raw)
	if len(n) != 10 || n[0] != '0' {
		return ""
	}
	return "+33" + n[1:]
}

// Format renders XX XX XX XX XX.
func Format(raw string) string {
	n := National(raw)
	if len(n) != 10 {
		return raw
	}
	var b strings.Builder
	for i := 0; i < len(n); i += 2 {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n[i : i+2])
	}
	return b.String()
}
