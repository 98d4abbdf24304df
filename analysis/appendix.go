package analysis

import "regexp"

var appendixPattern = regexp.MustCompile(`(?i)(ملحق|appendix)\s*(?:رقم\s*|no\.?\s*)?(\d+|تسعة|عشرة|nine\b|ten\b)`)

var spelledAppendix = map[string]string{
	"تسعة": "9",
	"nine": "9",
	"عشرة": "10",
	"ten":  "10",
}

// TargetAppendix returns the appendix number the question names, or "".
// Spelled-out nine and ten are mapped to digits; other digit strings pass through.
func TargetAppendix(question string) string {
	target, _, _ := findAppendix(Normalize(question))
	return target
}

// findAppendix returns the target plus the byte span of the reference in q
func findAppendix(q string) (string, int, int) {
	m := appendixPattern.FindStringSubmatchIndex(q)
	if m == nil {
		return "", -1, -1
	}
	value := q[m[4]:m[5]]
	if digits, ok := spelledAppendix[value]; ok {
		value = digits
	}
	return value, m[0], m[1]
}

// NumericTokens returns the digit runs of the question, excluding the
// digits that only name a target appendix.
func NumericTokens(question string) []string {
	q := Normalize(question)
	if _, start, end := findAppendix(q); start >= 0 {
		q = q[:start] + " " + q[end:]
	}
	return DigitRuns(q)
}
