package provider

// WordImportance is one token as scored by an importance model.
// Importance is nil when the model omitted it for the token.
type WordImportance struct {
	Word       string
	Importance *int
}
