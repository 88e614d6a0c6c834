// Package editdist computes the weighted edit distance between two strings
// and the ordered sequence of edit operations that realizes it.
//
// 🚀 What is editdist?
//
//	A dynamic-programming string aligner: it finds the minimum-cost way to
//	turn one string into another using matches, insertions, deletions and
//	substitutions, under a caller-supplied per-operation cost model. It is
//	the workhorse primitive behind:
//	  • Spelling correction & "did you mean" suggestions
//	  • Record linkage & fuzzy deduplication
//	  • Diff tooling & OCR post-processing
//
// ✨ Key features:
//   - configurable per-operation costs (Costs), unit Levenshtein by default
//   - full edit-script recovery via backpointer traceback (ModeBoth/ModeEdits)
//   - deterministic tie-breaking: Substitute/Match > Insert > Delete
//   - rune-aware — strings are aligned as Unicode code points
//   - pure computation: no I/O, no shared state, safe for concurrent calls
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/editdist"
//
//	opts := editdist.DefaultOptions()
//	opts.Mode = editdist.ModeBoth
//
//	dist, edits, err := editdist.Distance("foo", "fou", &opts)
//	if err != nil {
//	  // handle ErrInvalidMode or ErrInvalidCost
//	}
//	fmt.Println(dist)  // 1
//	fmt.Println(edits) // [Match Match Substitute]
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (the full backpointer matrix is kept for traceback)
//
// See example_test.go for runnable scenarios and cmd/editdist-cli for a
// small command-line front end.
package editdist
