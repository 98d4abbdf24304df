package scoring

// Weights are the additive scoring constants. Their relative order matters
// more than their values: numeric overlap outweighs title matches, title
// matches outweigh body matches and body matches outweigh fuzzy matches.
type Weights struct {
	ContentArticle  float64
	ContentAppendix float64
	TitleArticle    float64
	TitleAppendix   float64
	Numeric         float64
	Fuzzy           float64
	IntentBoost     float64
	// AnyAppendix applies to every appendix when the question names one
	AnyAppendix    float64
	TargetAppendix float64
	FuzzyCutoff    float64
	FuzzyMatches   int
}

// DefaultWeights returns the tuned constants
func DefaultWeights() Weights {
	return Weights{
		ContentArticle:  2,
		ContentAppendix: 3,
		TitleArticle:    3,
		TitleAppendix:   4,
		Numeric:         15,
		Fuzzy:           1,
		IntentBoost:     2,
		AnyAppendix:     5,
		TargetAppendix:  15,
		FuzzyCutoff:     0.6,
		FuzzyMatches:    3,
	}
}
