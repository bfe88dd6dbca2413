package routecalc

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

var (
	crossDayMarkRe = regexp.MustCompile(`\+\d+天?`)
	hhmmRe         = regexp.MustCompile(`(\d{1,2}):(\d{2})`)
	hoursRe        = regexp.MustCompile(`(\d+)\s*[小时hH]`)
	minutesRe      = regexp.MustCompile(`(\d+)\s*[分钟mM]`)
	digitsRe       = regexp.MustCompile(`\d+`)
)

// normalizeText folds full-width digits, colons and currency marks to
// their ASCII forms so the extraction regexes match payloads from
// either provider.
func normalizeText(s string) string {
	return width.Narrow.String(s)
}

// cleanTime extracts a zero-padded HH:MM from a raw time string,
// dropping cross-day suffixes like "+1天". Unrecognised input is
// returned trimmed as-is.
func cleanTime(raw string) string {
	if raw == "" {
		return ""
	}
	s := strings.TrimSpace(crossDayMarkRe.ReplaceAllString(normalizeText(raw), ""))
	m := hhmmRe.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	hour, _ := strconv.Atoi(m[1])
	return padTime(hour, m[2])
}

func padTime(hour int, minute string) string {
	h := strconv.Itoa(hour)
	if hour < 10 {
		h = "0" + h
	}
	return h + ":" + minute
}

// parseDuration converts strings like "5小时28分钟", "2h15m" or "3小时"
// to minutes. Unparseable input yields 0.
func parseDuration(raw string) int {
	if raw == "" {
		return 0
	}
	s := normalizeText(raw)
	total := 0
	if m := hoursRe.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		total += h * 60
	}
	if m := minutesRe.FindStringSubmatch(s); m != nil {
		min, _ := strconv.Atoi(m[1])
		total += min
	}
	return total
}

// extractPrice pulls the first run of digits out of a price value that
// may be a number, a "¥1,234" string, or absent.
func extractPrice(v any) int {
	switch p := v.(type) {
	case nil:
		return 0
	case float64:
		return int(p)
	case int:
		return p
	case string:
		s := strings.ReplaceAll(normalizeText(p), ",", "")
		m := digitsRe.FindString(s)
		if m == "" {
			return 0
		}
		n, _ := strconv.Atoi(m)
		return n
	}
	return 0
}

// crossDaysFrom reads an explicit cross-day count, falling back to a
// "+N" marker embedded in the raw arrival time.
func crossDaysFrom(explicit any, rawArrival string) int {
	switch d := explicit.(type) {
	case float64:
		if d > 0 {
			return int(d)
		}
	case int:
		if d > 0 {
			return d
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(d)); err == nil && n > 0 {
			return n
		}
	}
	arrival := normalizeText(rawArrival)
	switch {
	case strings.Contains(arrival, "+2"):
		return 2
	case strings.Contains(arrival, "+1"):
		return 1
	}
	return 0
}

// stringField returns the first non-empty string among the aliased
// keys of a record.
func stringField(rec map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := rec[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
		}
	}
	return ""
}

// anyField returns the first present value among the aliased keys.
func anyField(rec map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := rec[k]; ok && v != nil {
			return v
		}
	}
	return nil
}
