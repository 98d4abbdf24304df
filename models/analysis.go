package models

// Intent is the answer template selected for a question
type Intent string

const (
	IntentTrueFalse        Intent = "true_false"
	IntentTechnicalSpecs   Intent = "technical_specs"
	IntentTimingAnalysis   Intent = "timing_analysis"
	IntentProcedures       Intent = "procedures"
	IntentPenalties        Intent = "penalties"
	IntentComplexScoring   Intent = "complex_scoring"
	IntentResponsibilities Intent = "responsibilities"
	IntentDefinitions      Intent = "definitions"
	IntentGeneral          Intent = "general"
)

// Intents lists every intent in classification order; ties resolve to the earlier one
var Intents = []Intent{
	IntentTrueFalse,
	IntentTechnicalSpecs,
	IntentTimingAnalysis,
	IntentProcedures,
	IntentPenalties,
	IntentComplexScoring,
	IntentResponsibilities,
	IntentDefinitions,
	IntentGeneral,
}

// ContextType is the coarse question context used to steer retrieval
type ContextType string

const (
	ContextProcedural  ContextType = "procedural"
	ContextRegulatory  ContextType = "regulatory"
	ContextTechnical   ContextType = "technical"
	ContextCompetitive ContextType = "competitive"
	ContextGeneral     ContextType = "general"
)

// ResponseStyle is the lexical signature an answer should favour
type ResponseStyle string

const (
	StyleStepByStep            ResponseStyle = "step_by_step"
	StyleComplianceFocused     ResponseStyle = "compliance_focused"
	StyleSpecificationDetailed ResponseStyle = "specification_detailed"
	StyleOutcomeFocused        ResponseStyle = "outcome_focused"
	StyleBalanced              ResponseStyle = "balanced"
)

// ContextAnalysis is the result of the coarse context pass
type ContextAnalysis struct {
	Primary          ContextType         `json:"primary"`
	Secondary        []ContextType       `json:"secondary,omitempty"`
	PriorityConcepts []string            `json:"priority_concepts,omitempty"`
	Style            ResponseStyle       `json:"response_style"`
	Relationships    []string            `json:"relationships,omitempty"`
	Scores           map[ContextType]int `json:"-"`
}

// IntentResult is the classification of a question
type IntentResult struct {
	Primary        Intent          `json:"primary_intent"`
	Secondary      []Intent        `json:"secondary_intents,omitempty"`
	TargetAppendix string          `json:"target_appendix,omitempty"`
	Style          ResponseStyle   `json:"response_style"`
	Context        ContextAnalysis `json:"context"`
	Scores         map[Intent]int  `json:"-"`
}

// QuestionAnalysis gathers everything derived from the question text
type QuestionAnalysis struct {
	RawText        string       `json:"raw_text"`
	ExpandedTerms  []string     `json:"expanded_terms"`
	Concepts       []string     `json:"concepts,omitempty"`
	Intent         IntentResult `json:"intent"`
	TargetAppendix string       `json:"target_appendix,omitempty"`
	NumericTokens  []string     `json:"numeric_tokens,omitempty"`
}
