package valens

// ExtractRoles assigns semantic roles to tokens by a purely positional
// heuristic over the given pattern:
//
//	agent   ← the first token
//	patient ← the third token
//	manner  ← the last token
//
// Each assignment is made only when the role appears in the pattern's
// required-or-optional set and the position exists; anything else is
// omitted. This is deliberately not syntactic parsing and will
// misassign roles for most real sentences; the contract is a fast
// approximation, not linguistic correctness.
func ExtractRoles(tokens []string, pattern LexicalEntry) map[SemanticRole]string {
	roles := make(map[SemanticRole]string)
	if len(tokens) == 0 {
		return roles
	}

	if pattern.contains(RoleAgent) {
		roles[RoleAgent] = tokens[0]
	}
	if len(tokens) > 2 && pattern.contains(RolePatient) {
		roles[RolePatient] = tokens[2]
	}
	if pattern.contains(RoleManner) {
		roles[RoleManner] = tokens[len(tokens)-1]
	}
	return roles
}
