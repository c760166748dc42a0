package intent

import (
	"regexp"
	"strings"
	"unicode"

	"trimly/models"
)

// ---------- package-level compiled regexes ----------

var (
	dateRE = regexp.MustCompile(`\b(\d{4}-\d{2}-\d{2})\b`)
	timeRE = regexp.MustCompile(`\b([01]?\d|2[0-3]):([0-5]\d)\b`)
	// Name following the token "for": "book a haircut for Anna on ...".
	nameRE = regexp.MustCompile(`(?i)\bfor\s+([A-Za-zÀ-ÖØ-öø-ÿ]+)`)
)

// knownServices are matched by keyword, most specific first.
var knownServices = []string{
	"beard trim",
	"haircut",
	"shave",
	"coloring",
}

// DefaultService is used when no service keyword is found in the message.
const DefaultService = "Haircut"

// fallbackExtract runs the deterministic matchers over the raw message.
// Unmatched fields are left empty; it never fails.
func fallbackExtract(message string) models.BookingIntent {
	var intent models.BookingIntent

	if m := dateRE.FindStringSubmatch(message); m != nil {
		intent.Date = m[1]
	}
	if m := timeRE.FindString(message); m != "" {
		intent.Time = normalizeTime(m)
	}
	if m := nameRE.FindStringSubmatch(message); m != nil {
		intent.CustomerName = capitalize(m[1])
	}
	intent.Service = matchService(message)
	return intent
}

func matchService(message string) string {
	lower := strings.ToLower(message)
	for _, svc := range knownServices {
		if strings.Contains(lower, svc) {
			return capitalize(svc)
		}
	}
	return ""
}

// normalizeTime pads single-digit hours so "9:30" becomes "09:30".
func normalizeTime(t string) string {
	if len(t) == 4 {
		return "0" + t
	}
	return t
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
