package models

// CitedEntry is the consumer-facing view of a ranked entry
type CitedEntry struct {
	Number   string    `json:"article_number"`
	Title    string    `json:"title"`
	Label    string    `json:"label"`
	Kind     EntryKind `json:"content_type"`
	Language Language  `json:"language"`
	Excerpt  string    `json:"content"`
	Score    float64   `json:"relevance_score"`
}

// FormattedAnswer is the structured answer built from ranked entries
type FormattedAnswer struct {
	Body     string       `json:"body"`
	Cited    []CitedEntry `json:"cited_entries"`
	Intent   Intent       `json:"intent"`
	NotFound bool         `json:"not_found"`
	// FellBack is set when a specialised template produced nothing and the
	// general template answered instead.
	FellBack bool `json:"fell_back,omitempty"`
}

// AnswerSource says which path produced the final answer body
type AnswerSource string

const (
	SourceLocal     AnswerSource = "local"
	SourceGenerator AnswerSource = "generator"
	SourceCache     AnswerSource = "cache"
)
