// Package blockdist buckets the aligned subsequences of a window by edit
// distance from the target group's representative sequence.
//
// For every window the unique target and exclusion subsequences are counted,
// overly ambiguous rows are collapsed into a separate tally, and each unique
// sequence is placed in a mismatch bucket (0..3, overflow, ambiguous) by a
// bounded edit-distance computation against the most frequent target
// sequence. The exclusion buckets measure how close excluded organisms come
// to the target's typical sequence, which is what the discrimination score
// in core/report is built from.
package blockdist
