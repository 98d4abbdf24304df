package formatter

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

// Points for a single run outcome
const (
	pointsLongCarry  = 6
	pointsShortCarry = 4
	pointsStrike     = 2
	pointsMiss       = 0
	carryThresholdM  = 10
)

// Standard times in seconds per event category
const (
	standardTimeIndividual = 6.4
	standardTimeTeam       = 7.0
	standardTimeRelay      = 10.0
)

var (
	riderMarker   = regexp.MustCompile(`(?i)(?:the\s+)?(first|second|third|fourth)\s+(?:rider|athlete|competitor)|(?:المتسابق|الفارس)\s+(الأول|الثاني|الثالث|الرابع)`)
	carryDistance = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:meters?|metres?|m\b|متر|أمتار)`)

	ordinals = map[string]int{
		"first": 1, "second": 2, "third": 3, "fourth": 4,
		"الأول": 1, "الثاني": 2, "الثالث": 3, "الرابع": 4,
	}

	missPhrases       = []string{"missed", "did not enter", "didn't enter", "did not start", "no participation", "لم يدخل", "لم يشارك", "أخطأ", "لم يصب"}
	carryPhrases      = []string{"carried", "carry", "carrying", "حمل"}
	longCarryPhrases  = []string{"more than 10", "over 10", "10 meters or more", "beyond 10", "past 10", "أكثر من 10"}
	shortCarryPhrases = []string{"less than 10", "before 10", "under 10", "dragged", "drag", "أقل من 10", "قبل 10", "سحب"}
	strikePhrases     = []string{"struck", "hit", "picked up", "touched", "pulled", "أصاب", "لمس", "اقتلع"}
	weaponWords       = []string{"weapon", "lance", "sword", "سلاح", "الرمح", "السيف"}
)

// RiderOutcome is the scored outcome of one rider's run
type RiderOutcome struct {
	Ordinal int
	Text    string
	Points  float64
	Reason  string
}

// ParseRiders splits a team scenario into per-rider narratives and scores each
func ParseRiders(question string) []RiderOutcome {
	text := analysis.NormalizeDigits(question)
	matches := riderMarker.FindAllStringSubmatchIndex(text, -1)
	var out []RiderOutcome
	for i, m := range matches {
		word := ""
		if m[2] >= 0 {
			word = strings.ToLower(text[m[2]:m[3]])
		} else {
			word = text[m[4]:m[5]]
		}
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		narrative := strings.TrimSpace(strings.Trim(strings.TrimSpace(text[m[1]:end]), ",;."))
		points, reason := scoreOutcome(strings.ToLower(narrative))
		out = append(out, RiderOutcome{Ordinal: ordinals[word], Text: narrative, Points: points, Reason: reason})
	}
	return out
}

// scoreOutcome maps a run narrative to points
func scoreOutcome(n string) (float64, string) {
	switch {
	case weaponDropped(n):
		return pointsMiss, "weapon_drop"
	case containsAny(n, missPhrases...):
		return pointsMiss, "miss"
	case containsAny(n, carryPhrases...):
		if containsAny(n, longCarryPhrases...) {
			return pointsLongCarry, "long_carry"
		}
		if containsAny(n, shortCarryPhrases...) {
			return pointsShortCarry, "short_carry"
		}
		if m := carryDistance.FindStringSubmatch(n); m != nil {
			if d, err := strconv.ParseFloat(m[1], 64); err == nil {
				if d >= carryThresholdM {
					return pointsLongCarry, "long_carry"
				}
				return pointsShortCarry, "short_carry"
			}
		}
		return pointsShortCarry, "short_carry"
	case containsAny(n, shortCarryPhrases...):
		return pointsShortCarry, "short_carry"
	case containsAny(n, strikePhrases...):
		return pointsStrike, "strike"
	}
	return pointsMiss, "unknown"
}

// weaponDropped reports a weapon lost before the finish line
func weaponDropped(n string) bool {
	return containsAny(n, dropVocabulary...) && containsAny(n, weaponWords...) && !containsAny(n, afterFinishPhrases...)
}

func reasonText(lang models.Language, reason string) string {
	switch reason {
	case "weapon_drop":
		return pick(lang, "سقط السلاح قبل خط النهاية", "dropped the weapon before the finish line")
	case "long_carry":
		return pick(lang, "حمل الوتد مسافة 10 أمتار أو أكثر", "carried the peg 10 meters or more")
	case "short_carry":
		return pick(lang, "حمل الوتد أقل من 10 أمتار أو سحبه", "carried the peg less than 10 meters or dragged it")
	case "strike":
		return pick(lang, "أصاب الوتد دون حمله", "struck the peg without carrying it")
	case "miss":
		return pick(lang, "لم يصب الوتد أو لم يشارك", "missed the peg or did not take part")
	}
	return pick(lang, "نتيجة غير محددة في السؤال", "outcome not stated")
}

// standardTime picks the time allowance for the event category
func standardTime(q string) (float64, string) {
	switch {
	case containsAny(q, "relay", "تتابع"):
		return standardTimeRelay, "relay"
	case containsAny(q, "team", "pair", "فريق", "الفرق", "أزواج", "الزوجي"):
		return standardTimeTeam, "team"
	}
	return standardTimeIndividual, "individual"
}

type complexScoringFormatter struct{}

func (complexScoringFormatter) Format(in Input) (string, error) {
	lang := in.Language
	q := analysis.Normalize(in.Question)
	riders := ParseRiders(in.Question)

	if len(riders) == 0 {
		if !containsAny(q, carryPhrases...) && !containsAny(q, strikePhrases...) && !containsAny(q, missPhrases...) {
			return "", ErrNoExtraction
		}
		points, reason := scoreOutcome(q)
		riders = []RiderOutcome{{Ordinal: 1, Text: in.Question, Points: points, Reason: reason}}
	}

	var b strings.Builder
	b.WriteString(pick(lang, "## حساب النقاط\n\n", "## Score calculation\n\n"))

	total := 0.0
	for _, r := range riders {
		total += r.Points
		fmt.Fprintf(&b, pick(lang, "- المتسابق %d: %s = %s نقاط\n", "- Rider %d: %s = %s points\n"),
			r.Ordinal, reasonText(lang, r.Reason), formatValue(r.Points))
	}

	if containsAny(q, weaponWords...) && containsAny(q, dropVocabulary...) && containsAny(q, afterFinishPhrases...) {
		b.WriteString(pick(lang, "\nسقوط السلاح بعد عبور خط النهاية لا يترتب عليه خصم.\n",
			"\nDropping the weapon after crossing the finish line carries no penalty.\n"))
	}

	if m := secondsPattern.FindStringSubmatch(q); m != nil {
		if elapsed, err := strconv.ParseFloat(m[1], 64); err == nil {
			allowed, category := standardTime(q)
			if over := elapsed - allowed; over > 0 {
				penalty := math.Ceil(round2(over)) * halfPoint
				total -= penalty
				fmt.Fprintf(&b, pick(lang,
					"\nالزمن %s ثانية يتجاوز الزمن المعياري (%s ثانية، %s) بمقدار %s ثانية: خصم %s نقطة.\n",
					"\nTime %s s exceeds the standard time (%s s, %s) by %s s: %s point penalty.\n"),
					formatValue(elapsed), formatValue(allowed), category, formatValue(round2(over)), formatValue(penalty))
			}
		}
	}
	if total < 0 {
		total = 0
	}
	fmt.Fprintf(&b, pick(lang, "\n**المجموع: %s نقاط**\n", "\n**Total: %s points**\n"), formatValue(total))

	if cites := scoringCitations(in.Entries); len(cites) > 0 {
		fmt.Fprintf(&b, pick(lang, "\n**المراجع:** %s\n", "\n**References:** %s\n"), joinLabels(lang, cites))
	}
	return b.String(), nil
}

// scoringCitations prefers the awarding-of-points and timekeeping entries
func scoringCitations(entries []models.ScoredEntry) []models.LegalEntry {
	var out []models.LegalEntry
	for _, se := range entries {
		title := strings.ToLower(se.Entry.Title)
		if containsAny(title, "awarding of points", "منح النقاط", "timekeeping", "التوقيت", "breaking or loss", "كسر") {
			out = append(out, se.Entry)
		}
	}
	if len(out) == 0 && len(entries) > 0 {
		out = append(out, entries[0].Entry)
	}
	return out
}
