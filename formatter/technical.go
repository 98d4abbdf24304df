package formatter

import (
	"fmt"
	"math"
	"strings"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

// maxListedMeasurements caps the measurement list under an answer
const maxListedMeasurements = 5

type technicalFormatter struct{}

func (technicalFormatter) Format(in Input) (string, error) {
	var found []Measurement
	for _, se := range in.Entries {
		found = append(found, ExtractMeasurements(se.Entry)...)
	}
	if len(found) == 0 {
		return "", ErrNoExtraction
	}
	if choices := ParseChoices(in.Question); len(choices) >= 2 {
		return formatChoiceMatch(in, choices, found)
	}

	q := analysis.Normalize(in.Question)
	if ofKind := measurementsOfKind(found, questionKind(q)); len(ofKind) > 0 {
		found = ofKind
	}

	lang := in.Language
	var b strings.Builder
	b.WriteString(pick(lang, "## المواصفات الفنية\n\n", "## Technical specifications\n\n"))
	writeMeasurements(&b, lang, relevantMeasurements(q, found))
	return b.String(), nil
}

func measurementsOfKind(ms []Measurement, kind MeasurementKind) []Measurement {
	var out []Measurement
	for _, m := range ms {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

// relevantMeasurements keeps the measurements whose item best matches the question
func relevantMeasurements(q string, ms []Measurement) []Measurement {
	best := 0
	for _, m := range ms {
		if h := itemMatches(m, q); h > best {
			best = h
		}
	}
	if best == 0 {
		return ms
	}
	var out []Measurement
	for _, m := range ms {
		if itemMatches(m, q) == best {
			out = append(out, m)
		}
	}
	return out
}

type choiceMatch struct {
	choice      Choice
	measurement Measurement
	value       float64
	unit        string
	delta       float64
}

func formatChoiceMatch(in Input, choices []Choice, found []Measurement) (string, error) {
	lang := in.Language
	stem := analysis.Normalize(QuestionStem(in.Question))
	kind := questionKind(stem)

	candidates := measurementsOfKind(found, kind)
	if len(candidates) == 0 {
		return "", ErrNoExtraction
	}
	candidates = relevantMeasurements(stem, candidates)

	best := choiceMatch{delta: math.Inf(1)}
	var parsed []choiceMatch
	for _, c := range choices {
		v, unit, ok := ExtractNumber(c.Text)
		if !ok {
			continue
		}
		for _, m := range candidates {
			cm := choiceMatch{choice: c, measurement: m, value: v, unit: unit, delta: delta(m, v, unit)}
			parsed = append(parsed, cm)
			if cm.delta < best.delta {
				best = cm
			}
		}
	}
	if len(parsed) == 0 {
		return "", ErrNoExtraction
	}

	var b strings.Builder
	b.WriteString(pick(lang, "## التحليل الفني للخيارات\n\n", "## Technical analysis of the choices\n\n"))
	deltaUnit := ""
	if kind == KindPhysical {
		deltaUnit = pick(lang, " سم", " cm")
	}

	switch {
	case best.delta < tolerance(kind):
		fmt.Fprintf(&b, pick(lang, "**الإجابة الصحيحة: %s**\n\n", "**Correct answer: %s**\n\n"), best.choice)
		writeReason(&b, lang, best, best.delta, deltaUnit)
	default:
		if nominal, ok := nominalMatch(parsed); ok {
			fmt.Fprintf(&b, pick(lang, "**الإجابة الصحيحة: %s**\n\n", "**Correct answer: %s**\n\n"), nominal.choice)
			// the units disagree, so the difference is between the raw values
			writeReason(&b, lang, nominal, math.Abs(nominal.value-nominal.measurement.Value), "")
			fmt.Fprintf(&b, pick(lang,
				"**ملاحظة:** القيمة %s مطابقة للنص القانوني لكن الوحدة مختلفة (النص: %s، الخيار: %s).\n\n",
				"**Note:** the value %s matches the rule text but the unit differs (rule: %s, choice: %s).\n\n"),
				formatValue(nominal.value), nominal.measurement.Unit, nominal.unit)
		} else {
			fmt.Fprintf(&b, pick(lang,
				"**لا يوجد خيار ضمن حد التسامح.** أقرب خيار: %s\n\n",
				"**No choice is within tolerance.** Closest choice: %s\n\n"), best.choice)
			writeReason(&b, lang, best, best.delta, deltaUnit)
		}
	}

	writeMeasurements(&b, lang, candidates)
	return b.String(), nil
}

// nominalMatch finds a choice whose raw number equals a measurement's raw number
func nominalMatch(parsed []choiceMatch) (choiceMatch, bool) {
	for _, cm := range parsed {
		if math.Abs(cm.value-cm.measurement.Value) < nominalTolerance {
			return cm, true
		}
	}
	return choiceMatch{}, false
}

func writeReason(b *strings.Builder, lang models.Language, cm choiceMatch, diff float64, deltaUnit string) {
	m := cm.measurement
	item := m.Item
	if item == "" {
		item = pick(lang, "القياس", "measurement")
	}
	fmt.Fprintf(b, pick(lang, "%s: %s = %s %s (فرق %s%s)\n\n", "%s: %s = %s %s (difference %s%s)\n\n"),
		according(m.Entry), item, formatValue(m.Value), m.Unit, formatValue(round2(diff)), deltaUnit)
}

func writeMeasurements(b *strings.Builder, lang models.Language, ms []Measurement) {
	b.WriteString(pick(lang, "**القياسات المستخرجة:**\n", "**Extracted measurements:**\n"))
	for i, m := range ms {
		if i == maxListedMeasurements {
			break
		}
		item := m.Item
		if item == "" {
			item = string(m.Kind)
		}
		fmt.Fprintf(b, "- %s: %s %s (%s)\n", item, formatValue(m.Value), m.Unit, m.Entry.Label())
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
