package valens

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchResult pairs one input word with its analysis or error.
type BatchResult struct {
	// Word is the input exactly as supplied.
	Word string
	// Analysis is the successful result; nil when Err is set.
	Analysis *AnalysisResult
	// Err is ErrEmptyInput or ErrNotInLexicon; nil on success.
	Err error
}

// CheckBatch analyzes every word concurrently, bounded by the number of
// available hardware threads. The result at index i always corresponds
// to the input at index i regardless of completion order, and one
// word's failure never affects the others.
func (a *Analyzer) CheckBatch(words []string) []BatchResult {
	results := make([]BatchResult, len(words))
	if len(words) == 0 {
		return results
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))

	for i, word := range words {
		i, word := i, word
		eg.Go(func() error {
			res, err := a.Check(word)
			results[i] = BatchResult{Word: word, Analysis: res, Err: err}
			return nil
		})
	}
	// Workers never return errors; per-word failures live in the slice.
	_ = eg.Wait()

	return results
}
