package formatter

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

// MeasurementKind separates values that must never be compared with each other
type MeasurementKind string

const (
	KindCount         MeasurementKind = "count"
	KindTrackDistance MeasurementKind = "track_distance"
	KindPhysical      MeasurementKind = "measurement"
)

// Tolerances for matching a choice against a measurement
const (
	physicalToleranceCM = 10.0
	unitTolerance       = 1.0
	nominalTolerance    = 0.01
)

// Measurement is a number found in an entry together with what it measures
type Measurement struct {
	Kind  MeasurementKind
	Item  string
	Value float64
	Unit  string
	Entry models.LegalEntry
}

// Centimeters returns the value in centimeters for physical measurements
func (m Measurement) Centimeters() float64 {
	return ToCentimeters(m.Value, m.Unit)
}

const (
	num         = `(\d+(?:\.\d+)?)`
	lengthUnits = `(cm|mm|meters?|metres?|m|سم|ملم|مم|متر|أمتار|م)`
	itemWords   = `(length|size|minimum|maximum|thickness|diameter|width|height|depth|طول|قطر|سمك|عرض|ارتفاع|عمق|الحد الأدنى|الحد الأقصى)`
)

var (
	countPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)maximum of ` + num + `\s*(runs?)`),
		regexp.MustCompile(`(?i)` + num + `\s*(runs?)\s*determines?`),
		regexp.MustCompile(`(?i)` + num + `\s*(athletes?)\s*per`),
		regexp.MustCompile(`(?i)` + num + `\s*(runs?|rounds?)`),
		regexp.MustCompile(num + `\s*(جولات|جولة|متسابقين)`),
	}
	distancePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\(` + num + `\)\s*(meters?|metres?|m)\s*(?:from|before)`),
		regexp.MustCompile(`(?i)` + num + `\s*(meters?|metres?)\s*from the (?:start|starting|finish) line`),
		regexp.MustCompile(`(?i)(?:distance|placed)[^.\d]{0,20}` + num + `\s*(meters?|metres?)`),
		regexp.MustCompile(`(?:على بعد|مسافة)\s*\(?` + num + `\)?\s*(متر|أمتار|م)\s*(?:من|قبل)`),
	}
	// item, value, unit
	physicalItemPattern = regexp.MustCompile(`(?i)` + itemWords + `[^.\d]{0,40}?` + num + `\s*` + lengthUnits + `(?:[\s.,;:)]|$)`)
	// value, unit
	physicalBarePattern = regexp.MustCompile(`(?i)` + num + `\s*(cm|mm|سم|ملم|مم)(?:[\s.,;:)]|$)`)

	compoundPattern = regexp.MustCompile(`(?i)` + num + `\s*(meters?|metres?|m|متر|أمتار|م)\s*(?:and|و)\s*` + num + `\s*(cm|سم)`)
	valuePattern    = regexp.MustCompile(`(?i)` + num + `\s*` + lengthUnits + `?`)
)

// ToCentimeters converts a length to centimeters; unknown units pass through
func ToCentimeters(value float64, unit string) float64 {
	switch normalizeUnit(unit) {
	case "m":
		return value * 100
	case "mm":
		return value / 10
	default:
		return value
	}
}

func normalizeUnit(unit string) string {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "m", "meter", "meters", "metre", "metres", "متر", "أمتار", "م":
		return "m"
	case "mm", "ملم", "مم":
		return "mm"
	case "cm", "سم":
		return "cm"
	}
	return ""
}

// ExtractNumber reads the leading quantity of a choice. "2 meters and 20 cm"
// yields 2.2 meters.
func ExtractNumber(text string) (float64, string, bool) {
	text = analysis.NormalizeDigits(text)
	if m := compoundPattern.FindStringSubmatch(text); m != nil {
		whole, _ := strconv.ParseFloat(m[1], 64)
		cm, _ := strconv.ParseFloat(m[3], 64)
		return whole + cm/100, "m", true
	}
	m := valuePattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, "", false
	}
	return v, normalizeUnit(m[2]), true
}

type span struct{ start, end int }

func overlapsAny(spans []span, s span) bool {
	for _, o := range spans {
		if s.start < o.end && o.start < s.end {
			return true
		}
	}
	return false
}

// ExtractMeasurements finds counts, track distances and physical
// measurements in an entry. Track distances are matched first so that a
// distance is never also read as a physical length.
func ExtractMeasurements(entry models.LegalEntry) []Measurement {
	text := analysis.NormalizeDigits(entry.Content)
	var out []Measurement
	var taken []span

	add := func(kind MeasurementKind, item, value, unit string, s span) {
		if overlapsAny(taken, s) {
			return
		}
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return
		}
		taken = append(taken, s)
		out = append(out, Measurement{Kind: kind, Item: strings.TrimSpace(item), Value: v, Unit: unit, Entry: entry})
	}

	for _, p := range distancePatterns {
		for _, m := range p.FindAllStringSubmatchIndex(text, -1) {
			add(KindTrackDistance, "distance", text[m[2]:m[3]], normalizeUnit(text[m[4]:m[5]]), span{m[0], m[1]})
		}
	}
	for _, p := range countPatterns {
		for _, m := range p.FindAllStringSubmatchIndex(text, -1) {
			add(KindCount, text[m[4]:m[5]], text[m[2]:m[3]], "", span{m[0], m[1]})
		}
	}
	for _, m := range physicalItemPattern.FindAllStringSubmatchIndex(text, -1) {
		add(KindPhysical, itemPhrase(text[m[2]:m[4]]), text[m[4]:m[5]], normalizeUnit(text[m[6]:m[7]]), span{m[4], m[7]})
	}
	for _, m := range physicalBarePattern.FindAllStringSubmatchIndex(text, -1) {
		add(KindPhysical, "", text[m[2]:m[3]], normalizeUnit(text[m[4]:m[5]]), span{m[2], m[5]})
	}
	return out
}

var copulas = []string{"is", "are", "be", "must", "shall", "should", "of", "هو", "هي", "يكون", "تكون", ":"}

// itemPhrase trims trailing copulas from the words naming a measured item
func itemPhrase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for len(words) > 1 {
		last := strings.TrimRight(words[len(words)-1], ":")
		drop := last == ""
		for _, c := range copulas {
			if last == c {
				drop = true
			}
		}
		if !drop {
			break
		}
		words = words[:len(words)-1]
	}
	return strings.TrimRight(strings.Join(words, " "), ":")
}

// questionKind decides which measurement kind a question is about
func questionKind(q string) MeasurementKind {
	switch {
	case containsAny(q, "runs", "run ", "maximum number", "how many", "athletes per", "جولات", "جولة", "عدد"):
		return KindCount
	case containsAny(q, "placed at", "distance from", "starting line", "start line", "relay", "course", "مسافة", "على بعد", "خط البداية"):
		return KindTrackDistance
	}
	return KindPhysical
}

// itemPairs maps English item words to their Arabic equivalents
var itemPairs = [][2]string{
	{"diameter", "قطر"}, {"length", "طول"}, {"thickness", "سمك"}, {"width", "عرض"},
	{"height", "ارتفاع"}, {"depth", "عمق"}, {"minimum", "الأدنى"}, {"maximum", "الأقصى"},
}

// itemMatches counts how many item words of the measurement the question names
func itemMatches(m Measurement, q string) int {
	hits := 0
	for _, pair := range itemPairs {
		if containsAny(m.Item, pair[0], pair[1]) && containsAny(q, pair[0], pair[1]) {
			hits++
		}
	}
	return hits
}

// delta is the distance between a choice and a measurement in comparable units
func delta(m Measurement, value float64, unit string) float64 {
	if m.Kind == KindPhysical {
		choiceUnit := unit
		if choiceUnit == "" {
			choiceUnit = m.Unit
		}
		return math.Abs(ToCentimeters(value, choiceUnit) - m.Centimeters())
	}
	return math.Abs(value - m.Value)
}

func tolerance(kind MeasurementKind) float64 {
	if kind == KindPhysical {
		return physicalToleranceCM
	}
	return unitTolerance
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
