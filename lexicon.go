package valens

// Lexicon is the static mapping from canonical verb stem to valency
// pattern. It is built once and safe for unlimited concurrent reads.
type Lexicon struct {
	entries map[string]LexicalEntry
}

// NewLexicon builds a Lexicon from the given table. The table is used
// as-is; callers must not mutate it afterwards.
func NewLexicon(entries map[string]LexicalEntry) *Lexicon {
	return &Lexicon{entries: entries}
}

// Pattern returns the valency pattern for stem. Exact match only.
func (l *Lexicon) Pattern(stem string) (LexicalEntry, bool) {
	e, ok := l.entries[stem]
	return e, ok
}

// Len returns the number of stems in the lexicon.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// entry is a shorthand constructor that keeps the valency invariant:
// valency is always the length of the required role set.
func entry(required []SemanticRole, optional []SemanticRole) LexicalEntry {
	return LexicalEntry{
		Valency:  len(required),
		Required: required,
		Optional: optional,
	}
}

// DefaultLexicon returns the built-in English verb valency table.
// Groupings follow valency, not alphabet.
func DefaultLexicon() *Lexicon {
	ap := []SemanticRole{RoleAgent, RolePatient}
	return NewLexicon(map[string]LexicalEntry{
		// Zero-valency (weather verbs)
		"rain": entry(nil, []SemanticRole{RoleTime, RoleLocation}),
		"snow": entry(nil, []SemanticRole{RoleTime, RoleLocation}),

		// Monovalent (intransitive)
		"run":   entry([]SemanticRole{RoleAgent}, nil),
		"walk":  entry([]SemanticRole{RoleAgent}, []SemanticRole{RoleLocation}),
		"sleep": entry([]SemanticRole{RoleAgent}, []SemanticRole{RoleTime, RoleLocation}),
		"go":    entry([]SemanticRole{RoleAgent}, []SemanticRole{RoleLocation, RoleTime}),
		"speak": entry([]SemanticRole{RoleAgent}, []SemanticRole{RoleRecipient, RoleManner}),
		"think": entry([]SemanticRole{RoleAgent}, []SemanticRole{RoleManner}),
		"work":  entry([]SemanticRole{RoleAgent}, []SemanticRole{RoleLocation, RoleTime, RoleManner}),

		// Divalent (transitive)
		"eat":     entry(ap, []SemanticRole{RoleTime, RoleLocation}),
		"process": entry(ap, []SemanticRole{RoleInstrument}),
		"cut":     entry(ap, []SemanticRole{RoleInstrument}),
		"see":     entry(ap, nil),
		"make":    entry(ap, []SemanticRole{RoleInstrument, RoleLocation}),
		"build":   entry(ap, []SemanticRole{RoleInstrument, RoleLocation}),
		"write":   entry(ap, []SemanticRole{RoleInstrument, RoleRecipient}),
		"read":    entry(ap, []SemanticRole{RoleManner}),
		"analyze": entry(ap, []SemanticRole{RoleInstrument, RoleManner}),
		"move":    entry(ap, []SemanticRole{RoleLocation, RoleManner}),
		"open":    entry(ap, []SemanticRole{RoleInstrument}),
		"close":   entry(ap, []SemanticRole{RoleInstrument, RoleTime}),
		"create":  entry(ap, []SemanticRole{RoleInstrument, RoleLocation, RoleTime}),

		// Trivalent (ditransitive and locative)
		"give":  entry([]SemanticRole{RoleAgent, RolePatient, RoleRecipient}, []SemanticRole{RoleTime}),
		"send":  entry([]SemanticRole{RoleAgent, RolePatient, RoleRecipient}, []SemanticRole{RoleInstrument, RoleTime}),
		"teach": entry([]SemanticRole{RoleAgent, RolePatient, RoleRecipient}, []SemanticRole{RoleLocation}),
		"put":   entry([]SemanticRole{RoleAgent, RolePatient, RoleLocation}, nil),
	})
}
