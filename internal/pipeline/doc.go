// Package pipeline runs the multi-rate capture, classification, and
// generation loop and pushes updates to the renderer.
package pipeline
