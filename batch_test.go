package valens

import (
	"errors"
	"testing"
)

func TestCheckBatchEmpty(t *testing.T) {
	an := New()
	results := an.CheckBatch(nil)
	if len(results) != 0 {
		t.Errorf("CheckBatch(nil) returned %d results, want 0", len(results))
	}
	results = an.CheckBatch([]string{})
	if len(results) != 0 {
		t.Errorf("CheckBatch([]) returned %d results, want 0", len(results))
	}
}

func TestCheckBatchOrderPreserved(t *testing.T) {
	an := New()
	words := []string{"eat", "running", "give", "slept", "processes", "put"}
	results := an.CheckBatch(words)
	if len(results) != len(words) {
		t.Fatalf("got %d results, want %d", len(results), len(words))
	}
	for i, r := range results {
		if r.Word != words[i] {
			t.Errorf("results[%d].Word = %q, want %q", i, r.Word, words[i])
		}
		if r.Err != nil {
			t.Errorf("results[%d] (%q) failed: %v", i, words[i], r.Err)
		}
	}
	if results[1].Analysis.Stem != "run" {
		t.Errorf("results[1].Stem = %q, want run", results[1].Analysis.Stem)
	}
}

func TestCheckBatchIsolatesFailures(t *testing.T) {
	an := New()
	words := []string{"eat", "", "zzz_unknown", "gave"}
	results := an.CheckBatch(words)
	if len(results) != len(words) {
		t.Fatalf("got %d results, want %d", len(results), len(words))
	}

	if results[0].Err != nil {
		t.Errorf("results[0] failed: %v", results[0].Err)
	}
	if !errors.Is(results[1].Err, ErrEmptyInput) {
		t.Errorf("results[1].Err = %v, want ErrEmptyInput", results[1].Err)
	}
	if !errors.Is(results[2].Err, ErrNotInLexicon) {
		t.Errorf("results[2].Err = %v, want ErrNotInLexicon", results[2].Err)
	}
	if results[3].Err != nil || results[3].Analysis.Stem != "give" {
		t.Errorf("results[3] = %+v, want give analysis", results[3])
	}
}

func TestCheckBatchLarge(t *testing.T) {
	// Exercise the fan-out with more work than workers and verify the
	// index correspondence regardless of completion order.
	an := New()
	words := make([]string, 0, 300)
	for i := 0; i < 100; i++ {
		words = append(words, "eat", "running", "zzz_unknown")
	}
	results := an.CheckBatch(words)
	if len(results) != len(words) {
		t.Fatalf("got %d results, want %d", len(results), len(words))
	}
	for i, r := range results {
		switch i % 3 {
		case 0:
			if r.Err != nil || r.Analysis.Stem != "eat" {
				t.Fatalf("results[%d] = %+v, want eat", i, r)
			}
		case 1:
			if r.Err != nil || r.Analysis.Stem != "run" {
				t.Fatalf("results[%d] = %+v, want run", i, r)
			}
		case 2:
			if !errors.Is(r.Err, ErrNotInLexicon) {
				t.Fatalf("results[%d].Err = %v, want ErrNotInLexicon", i, r.Err)
			}
		}
	}
}
