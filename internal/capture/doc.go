// Package capture acquires webcam frames through GStreamer and watches
// for video device hotplug events.
package capture
