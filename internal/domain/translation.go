package domain

// ExampleSentence is a usage example paired with its Hebrew translation.
type ExampleSentence struct {
	English string
	Hebrew  string
}

// WordTranslation is the translation record for a single word.
type WordTranslation struct {
	Word             string
	Translation      string
	Transliteration  string
	Root             string
	CEFRLevel        string
	ExampleSentences []ExampleSentence
	Note             string
}

// SentenceTranslation is the translation record for a sentence.
type SentenceTranslation struct {
	English         string
	Hebrew          string
	Transliteration string
	Note            string
}
