package analysis

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	wordPattern  = regexp.MustCompile(`[\x{0621}-\x{065F}\x{0671}-\x{06D3}a-zA-Z]+`)
	digitPattern = regexp.MustCompile(`\d+`)
)

var digitReplacer = strings.NewReplacer(
	"٠", "0", "١", "1", "٢", "2", "٣", "3", "٤", "4",
	"٥", "5", "٦", "6", "٧", "7", "٨", "8", "٩", "9",
	"۰", "0", "۱", "1", "۲", "2", "۳", "3", "۴", "4",
	"۵", "5", "۶", "6", "۷", "7", "۸", "8", "۹", "9",
)

// NormalizeDigits rewrites Arabic-Indic digits as ASCII digits
func NormalizeDigits(s string) string {
	return digitReplacer.Replace(s)
}

// Normalize lowercases, trims and normalizes digits
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(NormalizeDigits(s)))
}

// Tokenize splits text into lowercase Arabic or Latin words longer than two runes.
// A word never mixes scripts.
func Tokenize(text string) []string {
	words := wordPattern.FindAllString(Normalize(text), -1)
	out := make([]string, 0, len(words))
	for _, w := range splitScripts(words) {
		if utf8.RuneCountInString(w) > 2 {
			out = append(out, w)
		}
	}
	return out
}

// splitScripts breaks tokens at Arabic/Latin boundaries
func splitScripts(words []string) []string {
	var out []string
	for _, w := range words {
		start := 0
		prevLatin := false
		for i, r := range w {
			latin := r < 0x80
			if i > 0 && latin != prevLatin {
				out = append(out, w[start:i])
				start = i
			}
			prevLatin = latin
		}
		out = append(out, w[start:])
	}
	return out
}

// DigitRuns returns every run of digits in s, in order, without duplicates
func DigitRuns(s string) []string {
	runs := digitPattern.FindAllString(NormalizeDigits(s), -1)
	seen := make(map[string]bool, len(runs))
	out := make([]string, 0, len(runs))
	for _, r := range runs {
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

func containsAny(s string, needles ...string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func hasAnyPrefix(s string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(s, p) {
			return true
		}
	}
	return false
}
