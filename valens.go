// Package valens provides lightweight lexical-semantic analysis of verb
// valency: resolving inflected forms to canonical stems, looking up the
// semantic arguments a verb requires, extracting coarse semantic roles,
// and ranking candidate verb readings by an ambiguity heuristic — all
// from small fixed in-memory tables with no external calls.
package valens

// Analyzer holds the static tables and provides the public API.
// The tables are built once and never mutated, so a single Analyzer is
// safe for unlimited concurrent use.
type Analyzer struct {
	// lexicon maps canonical verb stem → valency pattern.
	lexicon *Lexicon

	// stemma maps inflected form → canonical stem.
	stemma *Stemma
}

// New returns an Analyzer over the built-in English tables.
func New() *Analyzer {
	return NewWithTables(DefaultLexicon(), DefaultStemma())
}

// NewWithTables returns an Analyzer over caller-supplied tables.
// Both stores must be fully constructed before the first call; the
// Analyzer never mutates them.
func NewWithTables(lexicon *Lexicon, stemma *Stemma) *Analyzer {
	return &Analyzer{lexicon: lexicon, stemma: stemma}
}

// GetStem resolves word to its canonical stem. Total: unknown forms
// resolve to themselves after normalization.
func (a *Analyzer) GetStem(word string) string {
	return a.stemma.Stem(word)
}

// GetValencyPattern returns the valency pattern for a canonical stem.
// Exact match only; a miss returns ErrNotInLexicon.
func (a *Analyzer) GetValencyPattern(stem string) (LexicalEntry, error) {
	e, ok := a.lexicon.Pattern(Normalize(stem))
	if !ok {
		return LexicalEntry{}, ErrNotInLexicon
	}
	return e, nil
}
