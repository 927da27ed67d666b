// Package classifier calls the emotion-analysis sidecar that inspects
// webcam frames and reports the dominant emotion per face.
package classifier
