package config

const (
	defaultCaptureDevice         = "/dev/video0"
	defaultCaptureWidth          = 640
	defaultCaptureHeight         = 480
	defaultCaptureFPS            = 15.0
	defaultClassifierEndpoint    = "http://127.0.0.1:8484"
	defaultClassifierDetector    = "opencv"
	defaultClassifierIntervalMS  = 500
	defaultClassifierTimeoutSecs = 10
	defaultHistoryCapacity       = 5
	defaultStructureMode         = "functional"
	defaultGenerationBackend     = "dukegpt"
	defaultGenerationIntervalMS  = 2000
	defaultGenerationTimeoutSecs = 120
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
	defaultLogDir                = "~/.local/share/moodline/logs"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Capture: Capture{
			Device: defaultCaptureDevice,
			Width:  defaultCaptureWidth,
			Height: defaultCaptureHeight,
			FPS:    defaultCaptureFPS,
		},
		Classifier: Classifier{
			Endpoint:       defaultClassifierEndpoint,
			Detector:       defaultClassifierDetector,
			IntervalMS:     defaultClassifierIntervalMS,
			TimeoutSeconds: defaultClassifierTimeoutSecs,
		},
		History: History{
			Capacity: defaultHistoryCapacity,
		},
		Structure: Structure{
			Mode: defaultStructureMode,
		},
		Generation: Generation{
			Backend:        defaultGenerationBackend,
			IntervalMS:     defaultGenerationIntervalMS,
			TimeoutSeconds: defaultGenerationTimeoutSecs,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Dir:    defaultLogDir,
		},
	}
}
