package analysis

import "itpf-legal-backend/models"

// Concept is one node of the tent pegging domain ontology
type Concept struct {
	Name            string
	ArabicTerms     []string
	EnglishTerms    []string
	ArabicSynonyms  []string
	EnglishSynonyms []string
	Related         []string
	ContextKeywords []string
}

// Ontology is the read-only concept table consulted during expansion
type Ontology struct {
	concepts []Concept
	byName   map[string]int
}

// NewOntology indexes a concept list. The order of concepts is preserved.
func NewOntology(concepts []Concept) *Ontology {
	o := &Ontology{concepts: concepts, byName: make(map[string]int, len(concepts))}
	for i, c := range concepts {
		o.byName[c.Name] = i
	}
	return o
}

// DefaultOntology returns the built-in concept table
func DefaultOntology() *Ontology {
	return NewOntology(defaultConcepts)
}

// Concepts returns the concepts in declaration order
func (o *Ontology) Concepts() []Concept {
	return o.concepts
}

// Lookup finds a concept by name
func (o *Ontology) Lookup(name string) (Concept, bool) {
	i, ok := o.byName[name]
	if !ok {
		return Concept{}, false
	}
	return o.concepts[i], true
}

var defaultConcepts = []Concept{
	{
		Name:            "equipment",
		ArabicTerms:     []string{"المعدات", "الأدوات", "التجهيزات", "العتاد", "الآلات", "الأجهزة"},
		EnglishTerms:    []string{"equipment", "gear", "tools", "apparatus", "devices", "instruments"},
		ArabicSynonyms:  []string{"اللوازم", "المستلزمات", "الأدوات المطلوبة", "التجهيزات الضرورية", "المعدات الرياضية"},
		EnglishSynonyms: []string{"sporting goods", "athletic equipment", "necessary tools", "required apparatus", "contest gear"},
		Related:         []string{"safety", "specifications", "requirements", "approval", "certification"},
		ContextKeywords: []string{"مواصفات", "متطلبات", "أمان", "سلامة", "اعتماد", "شهادة"},
	},
	{
		Name:            "scoring",
		ArabicTerms:     []string{"النقاط", "التسجيل", "الدرجات", "الأحراز", "النتائج", "المجموع"},
		EnglishTerms:    []string{"scoring", "points", "grades", "marks", "tally", "count"},
		ArabicSynonyms:  []string{"حساب النقاط", "جمع الدرجات", "تسجيل الأحراز", "إحراز النقاط", "النتيجة النهائية"},
		EnglishSynonyms: []string{"point counting", "score calculation", "result tallying", "grade computation", "final score"},
		Related:         []string{"competition", "judges", "rules", "results", "ranking"},
		ContextKeywords: []string{"حكم", "تحكيم", "ترتيب", "منافسة", "فوز", "تقييم"},
	},
	{
		Name:            "competition",
		ArabicTerms:     []string{"المسابقة", "البطولة", "المنافسة", "التنافس", "المباراة", "البرنامج"},
		EnglishTerms:    []string{"competition", "contest", "tournament", "championship", "match", "event"},
		ArabicSynonyms:  []string{"الفعالية", "النشاط الرياضي", "المهرجان الرياضي", "الدوري", "الكأس", "البرنامج الرياضي"},
		EnglishSynonyms: []string{"sporting event", "athletic contest", "competitive event", "tournament series", "championship series"},
		Related:         []string{"participants", "registration", "rules", "categories", "timing"},
		ContextKeywords: []string{"مشارك", "مشاركة", "تسجيل", "فئة", "زمن", "دور", "مرحلة"},
	},
	{
		Name:            "safety",
		ArabicTerms:     []string{"الأمان", "السلامة", "الحماية", "الوقاية", "الأمن", "التأمين"},
		EnglishTerms:    []string{"safety", "security", "protection", "precaution", "safeguarding"},
		ArabicSynonyms:  []string{"الإجراءات الوقائية", "التدابير الأمنية", "وسائل الحماية", "شروط السلامة"},
		EnglishSynonyms: []string{"safety measures", "protective procedures", "security protocols", "safety requirements"},
		Related:         []string{"equipment", "rules", "supervision", "emergency", "medical"},
		ContextKeywords: []string{"طوارئ", "إسعاف", "طبي", "إشراف", "مراقبة", "خطر"},
	},
	{
		Name:            "judges",
		ArabicTerms:     []string{"الحكام", "المحكمين", "القضاة", "المراقبين", "المشرفين"},
		EnglishTerms:    []string{"judges", "referees", "officials", "arbitrators", "supervisors"},
		ArabicSynonyms:  []string{"هيئة التحكيم", "لجنة الحكام", "المسؤولين", "القائمين على التحكيم"},
		EnglishSynonyms: []string{"judging panel", "officiating crew", "referee team", "judging committee"},
		Related:         []string{"scoring", "rules", "decisions", "appeals", "certification"},
		ContextKeywords: []string{"قرار", "حكم", "تقييم", "اعتراض", "استئناف", "شهادة"},
	},
	{
		Name:            "field",
		ArabicTerms:     []string{"الميدان", "الساحة", "المنطقة", "الملعب", "الحلبة", "المجال"},
		EnglishTerms:    []string{"field", "arena", "area", "ground", "venue", "pitch"},
		ArabicSynonyms:  []string{"مكان المسابقة", "موقع الفعالية", "أرض المنافسة", "ساحة اللعب"},
		EnglishSynonyms: []string{"competition venue", "contest area", "playing field", "competition ground"},
		Related:         []string{"dimensions", "specifications", "preparation", "marking", "boundaries"},
		ContextKeywords: []string{"أبعاد", "مواصفات", "تحضير", "علامات", "حدود", "خط"},
	},
	{
		Name:            "timing",
		ArabicTerms:     []string{"التوقيت", "الزمن", "المدة", "الوقت", "التسجيل الزمني"},
		EnglishTerms:    []string{"timing", "time", "duration", "period", "chronometer"},
		ArabicSynonyms:  []string{"قياس الوقت", "حساب المدة", "تسجيل الأزمنة", "ضبط التوقيت"},
		EnglishSynonyms: []string{"time measurement", "duration recording", "chronometric recording", "time keeping"},
		Related:         []string{"competition", "results", "records", "precision", "equipment"},
		ContextKeywords: []string{"دقة", "سجل", "رقم قياسي", "قياس", "ضبط"},
	},
	{
		Name:            "registration",
		ArabicTerms:     []string{"التسجيل", "التقييد", "القيد", "الاشتراك", "المشاركة"},
		EnglishTerms:    []string{"registration", "enrollment", "sign-up", "participation", "entry"},
		ArabicSynonyms:  []string{"تسجيل المشاركة", "قيد الاشتراك", "طلب المشاركة", "الانضمام"},
		EnglishSynonyms: []string{"participant registration", "contest entry", "enrollment process", "sign-up procedure"},
		Related:         []string{"participants", "categories", "requirements", "deadlines", "fees"},
		ContextKeywords: []string{"مشارك", "فئة", "متطلبات", "موعد نهائي", "رسوم"},
	},
	{
		Name:            "rules",
		ArabicTerms:     []string{"القواعد", "القوانين", "الأنظمة", "اللوائح", "التعليمات"},
		EnglishTerms:    []string{"rules", "regulations", "laws", "guidelines", "instructions"},
		ArabicSynonyms:  []string{"الأحكام", "الشروط", "الضوابط", "المبادئ التوجيهية", "النصوص القانونية"},
		EnglishSynonyms: []string{"provisions", "conditions", "controls", "guiding principles", "legal texts"},
		Related:         []string{"compliance", "violations", "penalties", "interpretation", "application"},
		ContextKeywords: []string{"التزام", "مخالفة", "عقوبة", "تفسير", "تطبيق"},
	},
}

// contextHierarchy describes one coarse question context
type contextHierarchy struct {
	Type             models.ContextType
	Keywords         []string
	PriorityConcepts []string
	Style            models.ResponseStyle
	// bonus is true when the question shape strongly signals this context
	bonus func(q string) bool
}

var contextHierarchies = []contextHierarchy{
	{
		Type:             models.ContextProcedural,
		Keywords:         []string{"كيف", "ماذا", "متى", "أين", "how", "what", "when", "where", "procedure", "process"},
		PriorityConcepts: []string{"registration", "competition", "timing", "field"},
		Style:            models.StyleStepByStep,
		bonus:            func(q string) bool { return hasAnyPrefix(q, "كيف", "how", "ماذا", "what") },
	},
	{
		Type:             models.ContextRegulatory,
		Keywords:         []string{"يجب", "يُمنع", "مطلوب", "ضروري", "قانوني", "must", "required", "mandatory", "legal", "rule"},
		PriorityConcepts: []string{"rules", "safety", "equipment", "judges"},
		Style:            models.StyleComplianceFocused,
		bonus:            func(q string) bool { return containsAny(q, "يجب", "must") },
	},
	{
		Type:             models.ContextTechnical,
		Keywords:         []string{"مواصفات", "تقني", "معدات", "أبعاد", "قياس", "technical", "specifications", "measurements", "equipment"},
		PriorityConcepts: []string{"equipment", "field", "timing", "specifications"},
		Style:            models.StyleSpecificationDetailed,
		bonus:            func(q string) bool { return containsAny(q, "مواصفات", "specifications") },
	},
	{
		Type:             models.ContextCompetitive,
		Keywords:         []string{"نقاط", "فوز", "ترتيب", "بطولة", "مسابقة", "points", "win", "competition", "tournament", "scoring"},
		PriorityConcepts: []string{"scoring", "competition", "judges", "rules"},
		Style:            models.StyleOutcomeFocused,
		bonus:            func(q string) bool { return containsAny(q, "نقاط", "points") },
	},
}

// relationship links concepts that tend to be asked about together
type relationship struct {
	Name            string
	Concepts        []string
	CrossReferences []string
}

var relationships = []relationship{
	{Name: "equipment_safety", Concepts: []string{"equipment", "safety"}, CrossReferences: []string{"approval", "certification", "specifications"}},
	{Name: "competition_scoring", Concepts: []string{"competition", "scoring", "judges"}, CrossReferences: []string{"rules", "rankings", "results"}},
	{Name: "field_timing", Concepts: []string{"field", "timing", "competition"}, CrossReferences: []string{"equipment", "safety", "specifications"}},
	{Name: "registration_participation", Concepts: []string{"registration", "competition", "rules"}, CrossReferences: []string{"categories", "requirements", "deadlines"}},
}
