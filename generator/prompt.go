package generator

import (
	"fmt"
	"strings"

	"itpf-legal-backend/analysis"
	"itpf-legal-backend/models"
)

// Mode selects the persona and token ceiling of a generation request
type Mode string

const (
	ModeChat     Mode = "chat"
	ModeReasoner Mode = "reasoner"
)

// PromptEntries is how many ranked entries are quoted to the model
const PromptEntries = 3

// minQuotedRunes is the shortest content excerpt worth sending
const minQuotedRunes = 80

var complexIndicators = []string{
	"قارن", "اربط", "حلل", "استنتج", "ما الفرق", "كيف يؤثر", "ما العلاقة", "في أي حالة", "متى يجب", "كيف يمكن",
	"compare", "analyze", "analyse", "relate", "difference", "relationship",
}

// ComplexityMode picks the reasoning persona for appendix and comparative questions
func ComplexityMode(question string) Mode {
	q := analysis.Normalize(question)
	if strings.Contains(q, "ملحق") || strings.Contains(q, "appendix") {
		return ModeReasoner
	}
	for _, ind := range complexIndicators {
		if strings.Contains(q, ind) {
			return ModeReasoner
		}
	}
	return ModeChat
}

// TokenCeiling scales the configured completion limit for the mode
func (m Mode) TokenCeiling(maxTokens int) int {
	if m == ModeReasoner {
		return maxTokens * 2
	}
	return maxTokens
}

// Prompt is a ready to send generation request
type Prompt struct {
	System string
	User   string
	Mode   Mode
	// Quoted are the entries whose text went into the prompt.
	Quoted []models.LegalEntry
}

const (
	reasonerArabic = `أنت خبير قانوني متخصص في قواعد الاتحاد الدولي لالتقاط الأوتاد (ITPF).
مهمتك: تحليل منطقي عميق ومتدرج للأسئلة القانونية المعقدة.
1. فهم السؤال وتحديد العناصر القانونية المطلوبة
2. مراجعة النصوص القانونية المرفقة
3. تحليل الروابط بين المواد والملاحق
4. تقديم إجابة شاملة مع ذكر أرقام المواد والملاحق
لا تستشهد بأي مادة أو ملحق غير وارد في النصوص المرفقة.`
	chatArabic = `أنت مساعد قانوني متخصص في قواعد الاتحاد الدولي لالتقاط الأوتاد (ITPF).
مهمتك: تقديم إجابات واضحة ودقيقة مع الاستشهاد بالمواد القانونية المناسبة.
لا تستشهد بأي مادة أو ملحق غير وارد في النصوص المرفقة.`
	reasonerEnglish = `You are a legal expert on the International Tent Pegging Federation (ITPF) rules.
Analyse complex questions step by step:
1. Identify the legal elements the question needs
2. Review the supplied provisions
3. Connect related articles and appendices
4. Give a complete answer that names the article and appendix numbers
Answer only in English and never cite a provision that is not in the supplied text.`
	chatEnglish = `You are a legal assistant for the International Tent Pegging Federation (ITPF) rules.
Give clear and accurate answers that cite the relevant articles.
Answer only in English and never cite a provision that is not in the supplied text.`
)

func persona(mode Mode, lang models.Language) string {
	switch {
	case mode == ModeReasoner && lang == models.LanguageEnglish:
		return reasonerEnglish
	case mode == ModeReasoner:
		return reasonerArabic
	case lang == models.LanguageEnglish:
		return chatEnglish
	}
	return chatArabic
}

// BuildPrompt quotes the top ranked entries under their citation labels,
// shortening or dropping entries that would exceed the token budget.
func BuildPrompt(question string, entries []models.ScoredEntry, lang models.Language, counter TokenCounter, budget int) Prompt {
	if counter == nil {
		counter = RuneCounter{}
	}
	mode := ComplexityMode(question)
	p := Prompt{System: persona(mode, lang), Mode: mode}

	english := lang == models.LanguageEnglish
	header := "السؤال: " + question + "\n\nالمراجع القانونية المتاحة:\n"
	footer := "\nيرجى تقديم إجابة دقيقة مع الاستناد إلى المواد القانونية المذكورة أعلاه فقط."
	if english {
		header = "Question: " + question + "\n\nAvailable legal provisions:\n"
		footer = "\nPlease answer precisely, relying only on the provisions above."
	}

	remaining := budget - counter.Count(p.System) - counter.Count(header) - counter.Count(footer)
	var body strings.Builder
	for i, se := range entries {
		if i == PromptEntries || (budget > 0 && remaining <= 0) {
			break
		}
		e := se.Entry
		block := quote(e, e.Content)
		cost := counter.Count(block)
		if budget > 0 && cost > remaining {
			runes := []rune(e.Content)
			keep := len(runes) * remaining / cost
			for keep >= minQuotedRunes {
				block = quote(e, string(runes[:keep])+"...")
				if cost = counter.Count(block); cost <= remaining {
					break
				}
				keep = keep * 9 / 10
			}
			if keep < minQuotedRunes {
				break
			}
		}
		body.WriteString(block)
		remaining -= cost
		p.Quoted = append(p.Quoted, e)
	}

	p.User = header + body.String() + footer
	return p
}

func quote(e models.LegalEntry, content string) string {
	return fmt.Sprintf("--- %s: %s ---\n%s\n\n", e.Label(), e.Title, content)
}

// EnsureReferences appends the quoted labels when the answer names none of them
func EnsureReferences(answer string, quoted []models.LegalEntry, lang models.Language) string {
	if len(quoted) == 0 {
		return answer
	}
	labels := make([]string, 0, len(quoted))
	for _, e := range quoted {
		if strings.Contains(answer, e.Label()) {
			return answer
		}
		labels = append(labels, e.Label())
	}
	if lang == models.LanguageEnglish {
		return strings.TrimRight(answer, "\n") + "\n\n(References: " + strings.Join(labels, ", ") + ")"
	}
	return strings.TrimRight(answer, "\n") + "\n\n(المراجع: " + strings.Join(labels, "، ") + ")"
}
