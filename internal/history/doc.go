// Package history holds the bounded sliding window of classified emotion
// labels that feeds prompt construction.
//
// The buffer is a fixed-capacity FIFO: appending at capacity evicts the
// oldest label. Insertion order is the only temporal signal carried into
// generation, so the window is never reordered or partially updated. The
// orchestration loop is the single writer; snapshots are immutable copies
// and safe to read concurrently with appends.
package history
