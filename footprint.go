package valens

import "math"

// intFieldBytes is the serialized width of an integer field.
const intFieldBytes = 8

// MemoryFootprint reports the serialized size of the two static tables.
// The size function is deterministic and platform-independent: string
// lengths plus a fixed width per integer field. Purely informational.
func (a *Analyzer) MemoryFootprint() FootprintReport {
	lex := 0
	for stem, e := range a.lexicon.entries {
		lex += len(stem) + intFieldBytes
		for _, r := range e.Required {
			lex += len(r)
		}
		for _, r := range e.Optional {
			lex += len(r)
		}
	}

	stm := 0
	for form, stem := range a.stemma.forms {
		stm += len(form) + len(stem)
	}

	return FootprintReport{
		LexiconBytes: lex,
		StemmaBytes:  stm,
		TotalBytes:   lex + stm,
		LexiconKB:    toKB(lex),
		StemmaKB:     toKB(stm),
		TotalKB:      toKB(lex + stm),
	}
}

// toKB converts bytes to kilobytes rounded to two decimal places.
func toKB(bytes int) float64 {
	return math.Round(float64(bytes)/1024*100) / 100
}
