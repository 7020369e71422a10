package domain

// Importance is a word's salience class for display emphasis.
// Defined classes are 0 (least important) through 4 (most important).
type Importance int

const (
	ImportanceMin Importance = 0
	ImportanceMax Importance = 4

	// DefaultOpacity is used for importance values outside the defined classes.
	DefaultOpacity = 0.5
)

var opacityByImportance = map[Importance]float64{
	0: 0.25,
	1: 0.35,
	2: 0.5,
	3: 0.75,
	4: 1.0,
}

// IsValid reports whether i is one of the defined classes.
func (i Importance) IsValid() bool {
	return i >= ImportanceMin && i <= ImportanceMax
}

// Opacity maps the importance class to the opacity a renderer should use.
// Any value outside 0..4 maps to DefaultOpacity.
func (i Importance) Opacity() float64 {
	if o, ok := opacityByImportance[i]; ok {
		return o
	}
	return DefaultOpacity
}

// OpacityFor is Importance(importance).Opacity() for plain ints.
func OpacityFor(importance int) float64 {
	return Importance(importance).Opacity()
}

// WordScore is the scored form of a single token.
type WordScore struct {
	Word       string
	Importance Importance
	Opacity    float64
}

// NewWordScore attaches the opacity for importance to word.
func NewWordScore(word string, importance Importance) WordScore {
	return WordScore{
		Word:       word,
		Importance: importance,
		Opacity:    importance.Opacity(),
	}
}

// ScoringResult is the outcome of scoring one text.
// Words are in input token order.
type ScoringResult struct {
	Words     []WordScore
	UsingMock bool
	Warning   *string
}

// Capabilities are the scoring capability flags resolved once at startup.
type Capabilities struct {
	// ScorerAvailable is true when the external scorer initialised successfully.
	ScorerAvailable bool
	// CredentialConfigured is true when the external credential is present.
	CredentialConfigured bool
}

// UseExternalScorer reports whether requests should go to the external scorer.
// Both flags are required; either one alone degrades to mock mode.
func (c Capabilities) UseExternalScorer() bool {
	return c.ScorerAvailable && c.CredentialConfigured
}
