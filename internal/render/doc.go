// Package render draws pipeline output on the terminal.
package render
