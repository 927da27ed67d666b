// Package generation selects and wraps the sentence-generation backend.
package generation
