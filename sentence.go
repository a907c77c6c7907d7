package valens

import (
	"sort"
	"strings"
)

// Tokenize splits a sentence on runs of whitespace. Punctuation is not
// stripped; a token like "data." simply fails lexicon lookup.
func Tokenize(sentence string) []string {
	return strings.Fields(sentence)
}

// EliminateAmbiguity tokenizes a sentence, analyzes every token, and
// returns the successful readings ranked ascending by ambiguity score
// (lower = less ambiguous). Ties preserve original token order.
//
// Tokens that fail analysis (non-verbs, stop-words, unknown forms) are
// discarded; this is a coarse position-agnostic filter, not a
// grammatical verb detector. If no token succeeds the error is
// ErrNoVerbsFound.
func (a *Analyzer) EliminateAmbiguity(sentence string) ([]Interpretation, error) {
	var interpretations []Interpretation
	for _, token := range Tokenize(sentence) {
		res, err := a.Check(token)
		if err != nil {
			continue
		}
		interpretations = append(interpretations, Interpretation{
			Verb:        res.Stem,
			Valency:     res.Valency,
			Roles:       res.Required,
			Score:       res.Ambiguity,
			Description: res.Interpretation,
		})
	}
	if len(interpretations) == 0 {
		return nil, ErrNoVerbsFound
	}

	sort.SliceStable(interpretations, func(i, j int) bool {
		return interpretations[i].Score < interpretations[j].Score
	})
	return interpretations, nil
}

// AnalyzeRoles tokenizes a sentence, takes the first token that
// analyzes successfully as the main verb, and assigns semantic roles
// to tokens by position (see ExtractRoles). If no token analyzes the
// error is ErrNoVerbFound.
func (a *Analyzer) AnalyzeRoles(sentence string) (*RoleAnalysis, error) {
	tokens := Tokenize(sentence)

	for _, token := range tokens {
		res, err := a.Check(token)
		if err != nil {
			continue
		}
		pattern := LexicalEntry{
			Valency:  res.Valency,
			Required: res.Required,
			Optional: res.Optional,
		}
		return &RoleAnalysis{
			Verb:  res.Stem,
			Roles: ExtractRoles(tokens, pattern),
		}, nil
	}
	return nil, ErrNoVerbFound
}
