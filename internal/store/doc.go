// Package store provides file-backed durable storage for a lift's sample history.
//
// The store holds one append-only sequence of weights:
//   - Samples are kept in chronological order; insertion order is significant.
//   - The whole sequence is read on Load and replaced on Save; there is no
//     partial update at the storage layer.
//
// # File Format
//
// The file is a single array of numbers. The codec is chosen by extension:
//   - .yaml / .yml: YAML sequence (e.g. "[135, 140]" or a block list)
//   - anything else: JSON array (e.g. "[135, 140, 145]")
//
// Integral weights are written without a fractional part so files stay
// compatible with hand-edited histories.
//
// # Failure Semantics
//
//   - Missing file: empty history, not an error
//   - Malformed contents: *ParseError, the file is left untouched
//   - Save: written to a temp file in the same directory, synced, then
//     renamed over the target, so a failed save never truncates history
//
// The store assumes a single owning process; there is no locking.
package store
