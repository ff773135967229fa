package analyzer

import "testing"

func newDefaultDetector() *StammerDetector {
	return NewStammerDetector(DefaultThresholds())
}

func TestDetect_Elongation(t *testing.T) {
	d := newDefaultDetector()

	if !d.Detect("I am happy", "I am soooooo happy") {
		t.Error("expected 6-char run to flag")
	}
	if d.Detect("I am happy", "I am soooo happy") {
		t.Error("expected 4-char run not to flag")
	}
	// Exactly at the threshold
	if !d.Detect("fine", "soooooo") {
		t.Error("expected 'soooooo' to flag")
	}
	if d.Detect("fine", "soooo") {
		t.Error("expected 'soooo' not to flag")
	}
	// Case-insensitive run
	if !d.Detect("fine", "nOOOOOo") {
		t.Error("expected mixed-case run to flag")
	}
	// Elongation ignores the source entirely
	if !d.Detect("sooooooo", "yeeeeeees") {
		t.Error("expected elongated translation to flag even with elongated source")
	}
}

func TestDetect_AdjacentDuplicateWords(t *testing.T) {
	d := newDefaultDetector()

	if !d.Detect("I am fine", "hello hello") {
		t.Error("expected adjacent duplicate without source pattern to flag")
	}
	// Source shows the same adjacent-repetition pattern, so it is legitimate
	if d.Detect("no no no", "stop stop stop") {
		t.Error("expected matching source repetition to suppress the flag")
	}
	// Short function words double naturally
	if d.Detect("I am fine", "la la land") {
		t.Error("expected short-token doubling not to flag")
	}
	// Punctuation and case are normalized before comparison
	if !d.Detect("I am fine", "Stop, stop!") {
		t.Error("expected punctuated duplicate to flag")
	}
}

func TestDetect_AdjacentBigramRepeat(t *testing.T) {
	d := newDefaultDetector()

	if !d.Detect("please leave", "go now go now") {
		t.Error("expected repeated bigram to flag")
	}
	if d.Detect("vai ora vai ora", "go now go now") {
		t.Error("expected source bigram repetition to suppress the flag")
	}
	// Non-adjacent reoccurrence is not a bigram repeat
	if d.Detect("please leave", "go now and then go now") {
		t.Error("expected separated phrase reoccurrence not to flag")
	}
}

func TestDetect_RepetitionRate(t *testing.T) {
	d := newDefaultDetector()

	// Same repetition count in both sentences is proportional, not stammer
	if d.Detect("ciao ciao ciao ciao", "bye bye bye bye") {
		t.Error("expected equal repetition counts not to flag")
	}
	// Source has no repetition at all
	if !d.Detect("the weather is nice today", "bye now bye later bye again bye") {
		t.Error("expected disproportionate repetition to flag")
	}
	// Within the margin
	if d.Detect("very good", "bye my dear bye my bye") {
		t.Error("expected repetition within margin not to flag")
	}
}

func TestDetect_EmptyInputs(t *testing.T) {
	d := newDefaultDetector()

	if d.Detect("", "") {
		t.Error("expected empty inputs not to flag")
	}
	if d.Detect("hello", "") {
		t.Error("expected empty translation not to flag")
	}
	if d.Detect("", "a clean translation") {
		t.Error("expected clean translation with empty source not to flag")
	}
	if d.Detect("...", "!!! ???") {
		t.Error("expected punctuation-only inputs not to flag")
	}
}

func TestDetect_CleanSentences(t *testing.T) {
	d := newDefaultDetector()

	cases := [][2]string{
		{"Buongiorno, come stai?", "Good morning, how are you?"},
		{"Il gatto dorme sul divano.", "The cat sleeps on the sofa."},
		{"Danke schön", "Thank you very much"},
	}
	for _, c := range cases {
		if d.Detect(c[0], c[1]) {
			t.Errorf("expected no stammer for %q -> %q", c[0], c[1])
		}
	}
}

func TestDetect_ConfigurableThresholds(t *testing.T) {
	// A stricter elongation threshold flags shorter runs
	strict := NewStammerDetector(Thresholds{MinElongationRun: 4, MinDupWordLen: 3, RepetitionMargin: 2})
	if !strict.Detect("fine", "soooo") {
		t.Error("expected 4-char run to flag with MinElongationRun=4")
	}

	// A larger margin tolerates more repetition
	lax := NewStammerDetector(Thresholds{MinElongationRun: 6, MinDupWordLen: 3, RepetitionMargin: 5})
	if lax.Detect("the weather is nice", "bye now bye later bye again bye") {
		t.Error("expected repetition within margin=5 not to flag")
	}
}

func TestTokenize(t *testing.T) {
	tokens := tokenize("Hello, World!  stop...")
	want := []string{"hello", "world", "stop"}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(tokens), tokens)
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d: expected %q, got %q", i, want[i], tokens[i])
		}
	}
}

func TestMaxRepetition(t *testing.T) {
	if got := maxRepetition(tokenize("ciao ciao ciao ciao")); got != 4 {
		t.Errorf("expected max repetition 4, got %d", got)
	}
	if got := maxRepetition(tokenize("one two three")); got != 1 {
		t.Errorf("expected max repetition 1, got %d", got)
	}
	if got := maxRepetition(nil); got != 0 {
		t.Errorf("expected max repetition 0 for no tokens, got %d", got)
	}
}
