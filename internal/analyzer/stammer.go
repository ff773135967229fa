package analyzer

import (
	"strings"
	"unicode"
)

const tokenPunct = ".,!?;:"

// Thresholds holds the tunable constants of the stammering rules.
type Thresholds struct {
	// MinElongationRun is the shortest run of identical characters that
	// counts as elongation ("soooooo").
	MinElongationRun int
	// MinDupWordLen is the shortest token length considered by the
	// adjacent-duplicate rule; shorter tokens ("la la") double naturally.
	MinDupWordLen int
	// RepetitionMargin is how far the translation's maximum per-token
	// repetition count may exceed the source's before it is flagged.
	RepetitionMargin int
}

// DefaultThresholds returns the empirically chosen defaults.
func DefaultThresholds() Thresholds {
	return Thresholds{
		MinElongationRun: 6,
		MinDupWordLen:    3,
		RepetitionMargin: 2,
	}
}

// StammerDetector flags non-natural repetition in a translated sentence
// that is not justified by equivalent repetition in the source sentence.
// It is a pure function of its two inputs: no external calls, no state.
type StammerDetector struct {
	thresholds Thresholds
}

func NewStammerDetector(thresholds Thresholds) *StammerDetector {
	if thresholds.MinElongationRun <= 1 {
		thresholds.MinElongationRun = DefaultThresholds().MinElongationRun
	}
	if thresholds.MinDupWordLen <= 0 {
		thresholds.MinDupWordLen = DefaultThresholds().MinDupWordLen
	}
	if thresholds.RepetitionMargin <= 0 {
		thresholds.RepetitionMargin = DefaultThresholds().RepetitionMargin
	}
	return &StammerDetector{thresholds: thresholds}
}

// Detect reports whether the translated sentence stammers. Four rules are
// OR-ed; the source sentence is consulted so legitimate repetition carried
// over from the source is not flagged. Rules compare repetition patterns,
// never literal words, since the two sentences use different vocabularies.
func (d *StammerDetector) Detect(source, translated string) bool {
	if translated == "" {
		return false
	}

	if hasElongation(strings.ToLower(translated), d.thresholds.MinElongationRun) {
		return true
	}

	sourceTokens := tokenize(source)
	transTokens := tokenize(translated)

	// The length filter applies to the translation only: it exempts natural
	// doubling ("la la"). Any adjacent repetition in the source, however
	// short its tokens, legitimizes the same pattern in the translation.
	if hasAdjacentDuplicate(transTokens, d.thresholds.MinDupWordLen) &&
		!hasAdjacentDuplicate(sourceTokens, 1) {
		return true
	}

	if hasAdjacentBigramRepeat(transTokens) && !hasAdjacentBigramRepeat(sourceTokens) {
		return true
	}

	// Counts are compared, never words: source and translation use
	// different vocabularies.
	transMax := maxRepetition(transTokens)
	sourceMax := maxRepetition(sourceTokens)
	return transMax > sourceMax+d.thresholds.RepetitionMargin
}

// tokenize lowercases, splits on whitespace and strips edge punctuation.
// Tokens that are pure punctuation disappear.
func tokenize(sentence string) []string {
	fields := strings.Fields(strings.ToLower(sentence))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		token := strings.Trim(f, tokenPunct)
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// hasElongation reports a run of minRun or more identical characters.
func hasElongation(text string, minRun int) bool {
	var prev rune
	run := 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			run = 0
			prev = 0
			continue
		}
		if r == prev {
			run++
			if run >= minRun {
				return true
			}
		} else {
			prev = r
			run = 1
		}
	}
	return false
}

// hasAdjacentDuplicate reports two immediately adjacent identical tokens
// of at least minLen characters.
func hasAdjacentDuplicate(tokens []string, minLen int) bool {
	for i := 0; i+1 < len(tokens); i++ {
		if len(tokens[i]) >= minLen && tokens[i] == tokens[i+1] {
			return true
		}
	}
	return false
}

// hasAdjacentBigramRepeat reports an immediately repeated two-token phrase
// ("go now go now").
func hasAdjacentBigramRepeat(tokens []string) bool {
	for i := 0; i+3 < len(tokens); i++ {
		if tokens[i] == tokens[i+2] && tokens[i+1] == tokens[i+3] {
			return true
		}
	}
	return false
}

// maxRepetition returns the highest occurrence count of any single token,
// counted anywhere in the sentence, not just adjacently.
func maxRepetition(tokens []string) int {
	counts := make(map[string]int)
	max := 0
	for _, token := range tokens {
		counts[token]++
		if counts[token] > max {
			max = counts[token]
		}
	}
	return max
}
