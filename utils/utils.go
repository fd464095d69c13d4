package utils

import (
	rndm "math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// --- Random String and ID Generators ---

var letterRunes = []rune("abcdefghijklmnopqrstuvwxyz0123456789_ABCDEFGHIJKLMNOPQRSTUVWXYZ")

// GenerateRandomString creates a random alphanumeric string of length n.
func GenerateRandomString(n int) string {
	b := make([]rune, n)
	for i := range b {
		b[i] = letterRunes[rndm.Intn(len(letterRunes))]
	}
	return string(b)
}

func GetUUID() string {
	return uuid.New().String()
}

// --- Formatting Helpers ---

// FormatAmount renders a whole-dollar amount with thousands separators,
// e.g. 1320 -> "1,320". No fractional units ever appear in output.
func FormatAmount(n int) string {
	s := strconv.Itoa(n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// Pluralize appends "s" unless the count is exactly one.
func Pluralize(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}

// TodayISO returns the current calendar date as YYYY-MM-DD, used as the
// minimum allowed travel date on enquiry forms.
func TodayISO(now time.Time) string {
	return now.Format("2006-01-02")
}

// EscapeHTML escapes &, <, > and " so catalog free text can never inject
// markup into rendered fragments.
func EscapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	return s
}
