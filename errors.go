package valens

import "errors"

// Error values returned by the analyzer. Every failure is local to the
// single word or sentence being processed; nothing in this package panics.
var (
	// ErrEmptyInput means the word was empty or whitespace-only.
	ErrEmptyInput = errors.New("empty input")

	// ErrNotInLexicon means the resolved stem has no valency pattern.
	ErrNotInLexicon = errors.New("stem not in lexicon")

	// ErrNoVerbsFound means no token of a sentence analyzed successfully
	// during ambiguity resolution.
	ErrNoVerbsFound = errors.New("no verbs found in sentence")

	// ErrNoVerbFound means no token of a sentence analyzed successfully
	// while searching for a main verb.
	ErrNoVerbFound = errors.New("no main verb found in sentence")
)
