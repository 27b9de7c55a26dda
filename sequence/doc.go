// Package sequence adapts the diff engine to ordinary Go values.
//
// The engine in package diff works on two lengths and a predicate. Most
// callers hold slices, strings or text, and want the common runs back as a
// value rather than through a callback. This package provides:
//
//   - Run and Collect: gather the engine's runs into a slice.
//   - Common, CommonFunc, Runes, Bytes: typed front ends.
//   - Interner, Lines, Words: turn text into dense integer tokens so that
//     line- or word-level comparisons are integer comparisons.
//   - Length, EditDistance, Similarity, Pairs, Validate: read results.
//
// All functions are pure; an Interner is the only stateful type and is not
// safe for concurrent use.
package sequence
