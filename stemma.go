package valens

import "strings"

// Stemma is the static mapping from inflected word form to canonical
// stem. Lookups are total: a form with no entry maps to itself, so
// Stem never fails. Built once, safe for unlimited concurrent reads.
type Stemma struct {
	forms map[string]string
}

// NewStemma builds a Stemma from the given table. The table is used
// as-is; callers must not mutate it afterwards.
func NewStemma(forms map[string]string) *Stemma {
	return &Stemma{forms: forms}
}

// Stem resolves word to its canonical stem. The input is normalized
// before lookup; unknown forms resolve to themselves.
func (s *Stemma) Stem(word string) string {
	w := Normalize(word)
	if stem, ok := s.forms[w]; ok {
		return stem
	}
	return w
}

// Len returns the number of inflected forms in the stemma.
func (s *Stemma) Len() int {
	return len(s.forms)
}

// Normalize lowercases and trims surrounding whitespace. All lookups
// in both stores go through this.
func Normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// DefaultStemma returns the built-in inflection table for the verbs of
// DefaultLexicon.
func DefaultStemma() *Stemma {
	return NewStemma(map[string]string{
		"rains": "rain", "rained": "rain", "raining": "rain",
		"snows": "snow", "snowed": "snow", "snowing": "snow",

		"runs": "run", "ran": "run", "running": "run",
		"walks": "walk", "walked": "walk", "walking": "walk",
		"sleeps": "sleep", "slept": "sleep", "sleeping": "sleep",
		"goes": "go", "went": "go", "gone": "go", "going": "go",
		"speaks": "speak", "spoke": "speak", "spoken": "speak", "speaking": "speak",
		"thinks": "think", "thought": "think", "thinking": "think",
		"works": "work", "worked": "work", "working": "work",

		"eats": "eat", "ate": "eat", "eaten": "eat", "eating": "eat",
		"processes": "process", "processed": "process", "processing": "process",
		"cuts": "cut", "cutting": "cut",
		"sees": "see", "saw": "see", "seen": "see", "seeing": "see",
		"makes": "make", "made": "make", "making": "make",
		"builds": "build", "built": "build", "building": "build",
		"writes": "write", "wrote": "write", "written": "write", "writing": "write",
		"reads": "read", "reading": "read",
		"analyzes": "analyze", "analyzed": "analyze", "analyzing": "analyze",
		"moves": "move", "moved": "move", "moving": "move",
		"opens": "open", "opened": "open", "opening": "open",
		"closes": "close", "closed": "close", "closing": "close",
		"creates": "create", "created": "create", "creating": "create",

		"gives": "give", "gave": "give", "given": "give", "giving": "give",
		"sends": "send", "sent": "send", "sending": "send",
		"teaches": "teach", "taught": "teach", "teaching": "teach",
		"puts": "put", "putting": "put",
	})
}
