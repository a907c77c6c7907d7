package valens

import "fmt"

// Check analyzes a single word form: normalizes it, resolves its stem,
// looks up the valency pattern, and scores the reading for ambiguity.
//
// Errors: ErrEmptyInput if the word is empty or whitespace-only,
// ErrNotInLexicon if the resolved stem has no pattern.
func (a *Analyzer) Check(word string) (*AnalysisResult, error) {
	w := Normalize(word)
	if w == "" {
		return nil, ErrEmptyInput
	}

	stem := a.stemma.Stem(w)
	pattern, ok := a.lexicon.Pattern(stem)
	if !ok {
		return nil, ErrNotInLexicon
	}

	return &AnalysisResult{
		Word:           w,
		Stem:           stem,
		Valency:        pattern.Valency,
		Required:       pattern.Required,
		Optional:       pattern.Optional,
		Ambiguity:      AmbiguityScore(pattern),
		Interpretation: interpret(stem, pattern),
	}, nil
}

// AmbiguityScore computes the fixed linear ambiguity heuristic for a
// pattern: more optional slots and higher valency are treated as more
// ambiguous. Lower is less ambiguous.
func AmbiguityScore(e LexicalEntry) float64 {
	return 0.1 + 0.1*float64(len(e.Optional)) + 0.05*float64(e.Valency)
}

// interpret builds the human-readable description of a pattern.
func interpret(stem string, e LexicalEntry) string {
	if e.Valency == 0 {
		return fmt.Sprintf("verb %q takes no required arguments; optional: %s",
			stem, roleList(e.Optional))
	}
	return fmt.Sprintf("verb %q requires %d argument(s): %s; optional: %s",
		stem, e.Valency, roleList(e.Required), roleList(e.Optional))
}
