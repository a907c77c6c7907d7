package valens

import "strings"

// SemanticRole is a categorical function a sentence constituent plays
// relative to a verb.
type SemanticRole string

const (
	RoleAgent      SemanticRole = "agent"
	RolePatient    SemanticRole = "patient"
	RoleRecipient  SemanticRole = "recipient"
	RoleInstrument SemanticRole = "instrument"
	RoleLocation   SemanticRole = "location"
	RoleTime       SemanticRole = "time"
	RoleManner     SemanticRole = "manner"
)

// Roles returns the closed set of semantic roles in canonical order.
func Roles() []SemanticRole {
	return []SemanticRole{
		RoleAgent, RolePatient, RoleRecipient,
		RoleInstrument, RoleLocation, RoleTime, RoleManner,
	}
}

// IsValid reports whether r is one of the enumerated roles.
func (r SemanticRole) IsValid() bool {
	switch r {
	case RoleAgent, RolePatient, RoleRecipient,
		RoleInstrument, RoleLocation, RoleTime, RoleManner:
		return true
	}
	return false
}

// LexicalEntry is the valency pattern of a canonical verb stem.
// Invariant: Valency == len(Required).
type LexicalEntry struct {
	// Valency is the number of required semantic arguments.
	Valency int
	// Required lists the roles the verb cannot appear without.
	Required []SemanticRole
	// Optional lists roles the verb may additionally take.
	Optional []SemanticRole
}

// contains reports whether role appears in the required or optional set.
func (e LexicalEntry) contains(role SemanticRole) bool {
	for _, r := range e.Required {
		if r == role {
			return true
		}
	}
	for _, r := range e.Optional {
		if r == role {
			return true
		}
	}
	return false
}

// AnalysisResult holds the valency analysis for a single word form.
type AnalysisResult struct {
	// Word is the original input, trimmed and lowercased.
	Word string
	// Stem is the canonical stem the word resolved to.
	Stem string
	// Valency is the number of required arguments.
	Valency int
	// Required and Optional are copies of the pattern's role sets.
	Required []SemanticRole
	Optional []SemanticRole
	// Ambiguity is the heuristic ambiguity score, in (0, 1).
	Ambiguity float64
	// Interpretation is a human-readable description of the pattern.
	Interpretation string
}

// Interpretation is one ranked reading of a token in a sentence.
type Interpretation struct {
	// Verb is the canonical stem of the analyzed token.
	Verb string
	// Valency is the number of required arguments.
	Valency int
	// Roles lists the required roles of the pattern.
	Roles []SemanticRole
	// Score is the ambiguity score; lower ranks first.
	Score float64
	// Description is a human-readable summary of the reading.
	Description string
}

// RoleAnalysis maps sentence tokens to the semantic roles of the main verb.
type RoleAnalysis struct {
	// Verb is the stem of the first token that analyzed successfully.
	Verb string
	// Roles maps each assigned role to the token filling it.
	Roles map[SemanticRole]string
}

// FootprintReport describes the serialized size of the static tables.
type FootprintReport struct {
	LexiconBytes int
	StemmaBytes  int
	TotalBytes   int
	LexiconKB    float64
	StemmaKB     float64
	TotalKB      float64
}

// roleList renders roles as a comma-separated string, e.g. "agent, patient".
func roleList(roles []SemanticRole) string {
	if len(roles) == 0 {
		return "none"
	}
	parts := make([]string, len(roles))
	for i, r := range roles {
		parts[i] = string(r)
	}
	return strings.Join(parts, ", ")
}
