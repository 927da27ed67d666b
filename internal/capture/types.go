package capture

import (
	"context"
	"errors"
	"time"
)

// ErrStreamEnded reports that the camera produced an end-of-stream and no
// further frames will arrive.
var ErrStreamEnded = errors.New("capture: stream ended")

// Frame is one captured image, JPEG-encoded, with acquisition metadata.
type Frame struct {
	Seq       uint64
	Timestamp time.Time
	Width     int
	Height    int
	Data      []byte
}

// Source yields frames until the stream ends or the context is canceled.
type Source interface {
	Read(ctx context.Context) (Frame, error)
	Close() error
}
