package valens

import (
	"errors"
	"math"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"The system processes the data", []string{"The", "system", "processes", "the", "data"}},
		{"  a \t b\nc  ", []string{"a", "b", "c"}},
		{"", nil},
		{"   ", nil},
		{"data.", []string{"data."}}, // punctuation stays attached
	}
	for _, tt := range tests {
		got := Tokenize(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("Tokenize(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("Tokenize(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}

func TestEliminateAmbiguity(t *testing.T) {
	an := New()
	interpretations, err := an.EliminateAmbiguity("The system processes the data")
	if err != nil {
		t.Fatalf("EliminateAmbiguity: %v", err)
	}
	if len(interpretations) != 1 {
		t.Fatalf("got %d interpretations, want 1: %v", len(interpretations), interpretations)
	}
	first := interpretations[0]
	if first.Verb != "process" {
		t.Errorf("first.Verb = %q, want %q", first.Verb, "process")
	}
	if math.Abs(first.Score-0.3) > scoreEps {
		t.Errorf("first.Score = %v, want 0.3", first.Score)
	}
}

func TestEliminateAmbiguityNoVerbs(t *testing.T) {
	an := New()
	if _, err := an.EliminateAmbiguity("zzz xxx yyy"); !errors.Is(err, ErrNoVerbsFound) {
		t.Errorf("error = %v, want ErrNoVerbsFound", err)
	}
	if _, err := an.EliminateAmbiguity(""); !errors.Is(err, ErrNoVerbsFound) {
		t.Errorf("empty sentence error = %v, want ErrNoVerbsFound", err)
	}
}

func TestEliminateAmbiguitySortedAscending(t *testing.T) {
	// work (0.45) appears before run (0.15) in the sentence but must
	// rank after it.
	an := New()
	interpretations, err := an.EliminateAmbiguity("they work and run daily")
	if err != nil {
		t.Fatalf("EliminateAmbiguity: %v", err)
	}
	if len(interpretations) != 2 {
		t.Fatalf("got %d interpretations, want 2: %v", len(interpretations), interpretations)
	}
	if interpretations[0].Verb != "run" || interpretations[1].Verb != "work" {
		t.Errorf("order = [%s %s], want [run work]", interpretations[0].Verb, interpretations[1].Verb)
	}
	for i := 1; i < len(interpretations); i++ {
		if interpretations[i].Score < interpretations[i-1].Score {
			t.Errorf("scores not ascending at %d: %v", i, interpretations)
		}
	}
}

func TestEliminateAmbiguityStableTies(t *testing.T) {
	// cut and process both score 0.3; token order must survive the sort.
	an := New()
	interpretations, err := an.EliminateAmbiguity("cut then process")
	if err != nil {
		t.Fatalf("EliminateAmbiguity: %v", err)
	}
	if len(interpretations) != 2 {
		t.Fatalf("got %d interpretations, want 2: %v", len(interpretations), interpretations)
	}
	if interpretations[0].Verb != "cut" || interpretations[1].Verb != "process" {
		t.Errorf("tie order = [%s %s], want [cut process]", interpretations[0].Verb, interpretations[1].Verb)
	}
}

func TestAnalyzeRoles(t *testing.T) {
	an := New()
	analysis, err := an.AnalyzeRoles("The system processes the data")
	if err != nil {
		t.Fatalf("AnalyzeRoles: %v", err)
	}
	if analysis.Verb != "process" {
		t.Errorf("Verb = %q, want %q", analysis.Verb, "process")
	}
	// agent ← first token; patient ← third token (positional heuristic,
	// not syntax: here that is the verb token itself).
	if got := analysis.Roles[RoleAgent]; got != "The" {
		t.Errorf("agent = %q, want %q", got, "The")
	}
	if got := analysis.Roles[RolePatient]; got != "processes" {
		t.Errorf("patient = %q, want %q", got, "processes")
	}
	// manner is not in process's role set and must be absent.
	if _, ok := analysis.Roles[RoleManner]; ok {
		t.Errorf("manner assigned but not in pattern: %v", analysis.Roles)
	}
}

func TestAnalyzeRolesFirstVerbWins(t *testing.T) {
	an := New()
	analysis, err := an.AnalyzeRoles("stones run rivers process water")
	if err != nil {
		t.Fatalf("AnalyzeRoles: %v", err)
	}
	if analysis.Verb != "run" {
		t.Errorf("Verb = %q, want first successful token %q", analysis.Verb, "run")
	}
}

func TestAnalyzeRolesNoVerb(t *testing.T) {
	an := New()
	if _, err := an.AnalyzeRoles("zzz xxx yyy"); !errors.Is(err, ErrNoVerbFound) {
		t.Errorf("error = %v, want ErrNoVerbFound", err)
	}
}

func TestExtractRoles(t *testing.T) {
	pattern := LexicalEntry{
		Valency:  1,
		Required: []SemanticRole{RoleAgent},
		Optional: []SemanticRole{RoleManner},
	}
	tests := []struct {
		name   string
		tokens []string
		want   map[SemanticRole]string
	}{
		{
			name:   "agent and manner",
			tokens: []string{"they", "ran", "home", "quickly"},
			want:   map[SemanticRole]string{RoleAgent: "they", RoleManner: "quickly"},
		},
		{
			name:   "short sentence, last token doubles",
			tokens: []string{"run"},
			want:   map[SemanticRole]string{RoleAgent: "run", RoleManner: "run"},
		},
		{
			name:   "no tokens",
			tokens: nil,
			want:   map[SemanticRole]string{},
		},
	}
	for _, tt := range tests {
		got := ExtractRoles(tt.tokens, pattern)
		if len(got) != len(tt.want) {
			t.Errorf("%s: ExtractRoles = %v, want %v", tt.name, got, tt.want)
			continue
		}
		for role, token := range tt.want {
			if got[role] != token {
				t.Errorf("%s: role %s = %q, want %q", tt.name, role, got[role], token)
			}
		}
	}
}

func TestExtractRolesPatientNeedsThirdToken(t *testing.T) {
	pattern := LexicalEntry{
		Valency:  2,
		Required: []SemanticRole{RoleAgent, RolePatient},
	}
	got := ExtractRoles([]string{"birds", "eat"}, pattern)
	if _, ok := got[RolePatient]; ok {
		t.Errorf("patient assigned with only two tokens: %v", got)
	}
	if got[RoleAgent] != "birds" {
		t.Errorf("agent = %q, want %q", got[RoleAgent], "birds")
	}
}
