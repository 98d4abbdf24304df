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

const (
	maxPenaltyReferences = 6
	halfPoint            = 0.5
)

var (
	mainRuleVocabulary = []string{
		"صفر نقاط", "استبعاد", "عقوبة", "خصم", "no points", "zero points", "disqualif",
		"penalty", "dropped", "fell", "lost", "½", "half a point", "time penalty", "deducted",
	}
	exceptionVocabulary = []string{"استثناء", "إلا", "باستثناء", "في حالة", "exception", "except", "unless"}

	dropVocabulary      = []string{"drop", "fell", "fall", "lost", "سقط", "سقوط", "أسقط", "فقد"}
	startFinishClause   = []string{"between the start line and the finish line", "بين خط البداية وخط النهاية"}
	afterFinishPhrases  = []string{"after crossing the finish", "after the finish", "بعد عبور خط النهاية", "بعد خط النهاية"}
	overtimeVocabulary  = []string{"exceed", "over the time", "time limit", "تجاوز", "زيادة", "الزمن المحدد"}
	halfPointVocabulary = []string{"½", "half a point", "0.5", "نصف نقطة"}

	secondsPattern = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:seconds?|secs?|ثانية|ثواني|ثوان)`)
)

type penaltyFormatter struct{}

func (penaltyFormatter) Format(in Input) (string, error) {
	lang := in.Language
	q := analysis.Normalize(in.Question)
	choices := ParseChoices(in.Question)

	var b strings.Builder
	b.WriteString(pick(lang, "## التحليل القانوني للعقوبة\n\n", "## Penalty analysis\n\n"))
	found := false

	if containsAny(q, dropVocabulary...) {
		found = writeDropRuling(&b, lang, q, choices, in.Entries)
	}
	if containsAny(q, overtimeVocabulary...) {
		found = writeOvertimeRuling(&b, lang, q, choices, in.Entries) || found
	}

	refs := penaltyReferences(in.Entries)
	if len(refs) == 0 && !found {
		return "", ErrNoExtraction
	}
	if len(refs) > 0 {
		b.WriteString(pick(lang, "### المراجع القانونية\n", "### Legal references\n"))
		for _, r := range refs {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n", r.entry.Label(), r.label(lang), r.text)
		}
	}
	return b.String(), nil
}

func writeDropRuling(b *strings.Builder, lang models.Language, q string, choices []Choice, entries []models.ScoredEntry) bool {
	clause := findSentences(entries, 1, startFinishClause...)
	if len(clause) == 0 {
		return false
	}
	hit := clause[0]

	afterFinish := containsAny(q, afterFinishPhrases...)
	if afterFinish {
		b.WriteString(pick(lang,
			"**الحكم:** سقوط السلاح بعد عبور خط النهاية لا يترتب عليه خصم نقاط.\n\n",
			"**Ruling:** dropping the weapon after crossing the finish line carries no penalty.\n\n"))
	} else {
		b.WriteString(pick(lang,
			"**الحكم:** سقوط السلاح بين خط البداية وخط النهاية يعني عدم احتساب أي نقاط للمحاولة.\n\n",
			"**Ruling:** dropping the weapon between the start line and the finish line means the run scores zero points.\n\n"))
	}
	fmt.Fprintf(b, "> %s (%s)\n\n", hit.Sentence, hit.Entry.Label())

	if len(choices) > 0 {
		var c Choice
		var ok bool
		if afterFinish {
			c, ok = choiceContaining(choices, "no penalty", "after", "لا عقوبة", "بعد")
		} else {
			c, ok = choiceContaining(choices, "before the finish", "finish line", "zero", "no points", "قبل خط النهاية", "صفر")
		}
		if ok {
			fmt.Fprintf(b, pick(lang, "**الخيار الصحيح: %s**\n\n", "**Correct choice: %s**\n\n"), c)
		}
	}
	return true
}

func writeOvertimeRuling(b *strings.Builder, lang models.Language, q string, choices []Choice, entries []models.ScoredEntry) bool {
	clause := findSentences(entries, 1, halfPointVocabulary...)
	if len(clause) == 0 {
		return false
	}
	hit := clause[0]
	fmt.Fprintf(b, pick(lang, "**قاعدة التوقيت:** %s (%s)\n\n", "**Timing rule:** %s (%s)\n\n"), hit.Sentence, hit.Entry.Label())

	if m := secondsPattern.FindStringSubmatch(q); m != nil {
		seconds, err := strconv.ParseFloat(m[1], 64)
		if err == nil && seconds > 0 {
			counted := math.Ceil(seconds)
			penalty := counted * halfPoint
			fmt.Fprintf(b, pick(lang,
				"**الحساب:** %s ثانية × ½ نقطة = %s نقطة خصم",
				"**Calculation:** %s seconds × ½ point = %s penalty points"),
				formatValue(counted), formatValue(penalty))
			if counted != seconds {
				b.WriteString(pick(lang, " (جزء الثانية يحتسب ثانية كاملة)", " (part of a second counts as a full second)"))
			}
			b.WriteString("\n\n")
			if c, ok := choiceContaining(choices, formatValue(penalty)); ok {
				fmt.Fprintf(b, pick(lang, "**الخيار الصحيح: %s**\n\n", "**Correct choice: %s**\n\n"), c)
				return true
			}
		}
	}
	if c, ok := choiceContaining(choices, halfPointVocabulary...); ok {
		fmt.Fprintf(b, pick(lang, "**الخيار الصحيح: %s**\n\n", "**Correct choice: %s**\n\n"), c)
	}
	return true
}

type penaltyReference struct {
	entry     models.LegalEntry
	exception bool
	text      string
}

func (r penaltyReference) label(lang models.Language) string {
	if r.exception {
		return pick(lang, "استثناء", "exception")
	}
	return pick(lang, "قانون أساسي", "main rule")
}

// penaltyReferences splits entries into main rules and exceptions, each with
// its key sentence
func penaltyReferences(entries []models.ScoredEntry) []penaltyReference {
	var out []penaltyReference
	for _, se := range entries {
		content := lowerContent(se.Entry)
		main := containsAny(content, mainRuleVocabulary...)
		exception := containsAny(content, exceptionVocabulary...)
		if !main && !exception {
			continue
		}
		keywords := mainRuleVocabulary
		if !main {
			keywords = exceptionVocabulary
		}
		text := KeySentence(se.Entry.Content, keywords...)
		if text == "" {
			text = Truncate(se.Entry.Content, 150)
		}
		out = append(out, penaltyReference{entry: se.Entry, exception: exception && !main, text: text})
		if len(out) == maxPenaltyReferences {
			break
		}
	}
	return out
}
