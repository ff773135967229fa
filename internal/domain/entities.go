package domain

// TranslationPair is a stored sentence and its translation. The embedding is
// always computed from Sentence (the source side), regardless of which
// direction the pair was stored in.
type TranslationPair struct {
	SourceLanguage string `json:"source_language"`
	TargetLanguage string `json:"target_language"`
	Sentence       string `json:"sentence"`
	Translation    string `json:"translation"`
}

// LanguagePair identifies a translation direction by ISO 639-1 codes.
type LanguagePair struct {
	Source string
	Target string
}

// Swapped returns the opposite direction.
func (lp LanguagePair) Swapped() LanguagePair {
	return LanguagePair{Source: lp.Target, Target: lp.Source}
}

// Match is a retrieved pair with its distance to the query vector.
// Lower distance means more similar. Reversed marks pairs that were stored
// in the opposite language direction and swapped into the requested
// orientation before being surfaced.
type Match struct {
	Pair     TranslationPair
	Distance float64
	Reversed bool
}

// Swap flips the pair's texts and language codes in place and marks the
// match as reversed.
func (m *Match) Swap() {
	m.Pair.Sentence, m.Pair.Translation = m.Pair.Translation, m.Pair.Sentence
	m.Pair.SourceLanguage, m.Pair.TargetLanguage = m.Pair.TargetLanguage, m.Pair.SourceLanguage
	m.Reversed = true
}
