package provider

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"jobboard-api/internal/domain"
)

// DateLayout is the display layout for posted dates across all sources.
const DateLayout = "02/01/2006"

// maxDescriptionRunes caps normalized descriptions; provider bodies can carry
// multi-page HTML job ads.
const maxDescriptionRunes = 300

// FormatDate renders a provider timestamp in the shared display layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatSalary builds the display salary from min/max figures. Either side
// may be absent (<= 0); the separator stays so partial ranges still read as
// ranges. Both absent yields the placeholder.
func FormatSalary(symbol string, min, max float64) string {
	if min <= 0 && max <= 0 {
		return domain.UnknownSalary
	}
	var left, right string
	if min > 0 {
		left = symbol + strconv.FormatFloat(min, 'f', 0, 64)
	}
	if max > 0 {
		right = symbol + strconv.FormatFloat(max, 'f', 0, 64)
	}
	return left + " - " + right
}

// CleanDescription reduces an HTML (or plain) job description to collapsed
// plain text, truncated to a display-friendly length.
func CleanDescription(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return domain.UnknownDescription
	}

	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(text)); err == nil {
		text = doc.Text()
	}
	text = cleanText(text)
	if text == "" {
		return domain.UnknownDescription
	}

	runes := []rune(text)
	if len(runes) > maxDescriptionRunes {
		text = string(runes[:maxDescriptionRunes]) + "…"
	}
	return text
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	return strings.Join(strings.Fields(s), " ")
}

// OrPlaceholder collapses whitespace in s and substitutes the placeholder
// when nothing remains.
func OrPlaceholder(s, placeholder string) string {
	if s = cleanText(s); s == "" {
		return placeholder
	}
	return s
}
