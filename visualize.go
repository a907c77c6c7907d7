package valens

import (
	"fmt"
	"strings"
)

// Visualize renders an analysis result as deterministic formatted text.
// The same result always produces the same string; the ambiguity score
// is rounded to two decimal places.
func Visualize(r *AnalysisResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "word:      %s\n", r.Word)
	fmt.Fprintf(&b, "stem:      %s\n", r.Stem)
	fmt.Fprintf(&b, "valency:   %d\n", r.Valency)
	fmt.Fprintf(&b, "required:  %s\n", roleList(r.Required))
	fmt.Fprintf(&b, "optional:  %s\n", roleList(r.Optional))
	fmt.Fprintf(&b, "ambiguity: %.2f\n", r.Ambiguity)
	return b.String()
}
