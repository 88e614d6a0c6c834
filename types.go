// Package editdist defines the operation kinds, cost configuration and
// output-mode options for the weighted edit-distance computation.
package editdist

import (
	"errors"
	"math"
)

// Sentinel errors returned by Distance and ParseMode.
var (
	// ErrInvalidMode indicates an output mode outside ModeBoth, ModeDistance
	// or ModeEdits (or, via ParseMode, an unrecognized mode word).
	ErrInvalidMode = errors.New("editdist: invalid output mode")

	// ErrInvalidCost indicates a cost entry that is not a finite real number
	// (NaN or ±Inf).
	ErrInvalidCost = errors.New("editdist: invalid cost configuration")
)

// Op is one edit operation applied while transforming the source string
// into the target string.
//
// Callers only ever observe OpMatch, OpInsert, OpDelete and OpSubstitute;
// the origin sentinel used inside the matrix is never emitted.
type Op uint8

const (
	// OpMatch keeps the current source character unchanged.
	OpMatch Op = iota

	// OpInsert adds the current target character.
	OpInsert

	// OpDelete drops the current source character.
	OpDelete

	// OpSubstitute replaces the current source character with the current
	// target character.
	OpSubstitute

	// opInitial marks the matrix origin cell. Strictly internal: it seeds
	// the backpointer chain and is never part of a returned edit sequence.
	opInitial
)

// String returns the operation name as used in edit listings.
func (o Op) String() string {
	switch o {
	case OpMatch:
		return "Match"
	case OpInsert:
		return "Insert"
	case OpDelete:
		return "Delete"
	case OpSubstitute:
		return "Substitute"
	case opInitial:
		return "Initial"
	}

	return "Unknown"
}

// Mode selects what Distance reports.
//
//   - ModeBoth     — distance and the ordered edit sequence (the default).
//   - ModeDistance — the numeric distance only; the edit slice is nil.
//   - ModeEdits    — the edit sequence only; the distance is left zero.
type Mode int

const (
	// ModeBoth reports the distance and the edit sequence.
	ModeBoth Mode = iota

	// ModeDistance reports the numeric distance only.
	ModeDistance

	// ModeEdits reports the ordered edit sequence only.
	ModeEdits
)

// String returns the mode word accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeBoth:
		return "both"
	case ModeDistance:
		return "distance"
	case ModeEdits:
		return "edits"
	}

	return "unknown"
}

// ParseMode maps the mode words "distance", "edits" and "both" to their
// Mode values. Any other word yields ErrInvalidMode.
func ParseMode(word string) (Mode, error) {
	switch word {
	case "distance":
		return ModeDistance, nil
	case "edits":
		return ModeEdits, nil
	case "both":
		return ModeBoth, nil
	}

	return ModeBoth, ErrInvalidMode
}

// validate reports ErrInvalidMode for values outside the three named modes.
func (m Mode) validate() error {
	if m < ModeBoth || m > ModeEdits {
		return ErrInvalidMode
	}

	return nil
}

// Costs assigns a weight to each edit operation. Every field must be a
// finite real number; NaN or infinite entries are rejected with
// ErrInvalidCost before any matrix cell is computed.
//
// Initial is the cost seeded at the matrix origin; it shifts every reported
// distance by a constant and is almost always zero.
//
// Advisory invariant: Match should be ≤ every other cost. The builder
// relabels any zero-added-cost transition as a match, so callers that zero
// a non-match cost will see those transitions reported as OpMatch
// (see Distance).
type Costs struct {
	Match      float64
	Insert     float64
	Delete     float64
	Substitute float64
	Initial    float64
}

// DefaultCosts returns the unit cost configuration:
// Match=0, Insert=1, Delete=1, Substitute=1, Initial=0.
//
// Each call constructs a fresh value, so edits to one caller's costs can
// never leak into another's.
func DefaultCosts() Costs {
	return Costs{
		Match:      0,
		Insert:     1,
		Delete:     1,
		Substitute: 1,
		Initial:    0,
	}
}

// validate reports ErrInvalidCost for any NaN or infinite entry.
// Negative entries pass: the distance is then simply not guaranteed to be
// non-negative.
func (c Costs) validate() error {
	for _, v := range [...]float64{c.Match, c.Insert, c.Delete, c.Substitute, c.Initial} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrInvalidCost
		}
	}

	return nil
}

// Options configures a Distance call.
//
// Start from DefaultOptions and override fields as needed; a nil *Options
// passed to Distance is equivalent to DefaultOptions().
//
// Example:
//
//	opts := editdist.DefaultOptions()
//	opts.Mode = editdist.ModeDistance
//	dist, _, err := editdist.Distance("foo", "fou", &opts)
type Options struct {
	Mode  Mode  // what to report: both (default), distance, or edits
	Costs Costs // per-operation weights
}

// DefaultOptions returns Options with ModeBoth and DefaultCosts.
func DefaultOptions() Options {
	return Options{
		Mode:  ModeBoth,
		Costs: DefaultCosts(),
	}
}
