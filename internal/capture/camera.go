package capture

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/tinyzimmer/go-gst/gst"
	"github.com/tinyzimmer/go-gst/gst/app"

	"moodline/internal/config"
	"moodline/internal/logging"
	"moodline/internal/services"
)

// Camera reads JPEG frames from a Video4Linux device.
//
// Pipeline structure:
//
//	v4l2src → videoconvert → videoscale → videorate → capsfilter → jpegenc → appsink
//
// The appsink keeps only the latest frame; the pipeline drops instead of
// queueing so a slow consumer always sees a recent image.
type Camera struct {
	cfg    config.Capture
	logger *slog.Logger

	pipeline *gst.Pipeline
	sink     *app.Sink

	frames chan Frame
	eos    chan struct{}
	failed chan error

	seq       uint64
	eosOnce   sync.Once
	failOnce  sync.Once
	closeOnce sync.Once
}

// NewCamera builds and starts the capture pipeline for the configured device.
func NewCamera(cfg config.Capture, logger *slog.Logger) (*Camera, error) {
	gst.Init(nil)

	pipeline, err := gst.NewPipeline("")
	if err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "create pipeline", err)
	}

	src, err := gst.NewElement("v4l2src")
	if err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "create v4l2src", err)
	}
	src.SetProperty("device", cfg.Device)

	converter, err := gst.NewElement("videoconvert")
	if err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "create videoconvert", err)
	}

	scaler, err := gst.NewElement("videoscale")
	if err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "create videoscale", err)
	}

	videorate, err := gst.NewElement("videorate")
	if err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "create videorate", err)
	}
	videorate.SetProperty("drop-only", true)
	videorate.SetProperty("skip-to-first", true)

	capsfilter, err := gst.NewElement("capsfilter")
	if err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "create capsfilter", err)
	}
	capsfilter.SetProperty("caps", gst.NewCapsFromString(buildFramerateCaps(cfg.Width, cfg.Height, cfg.FPS)))

	encoder, err := gst.NewElement("jpegenc")
	if err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "create jpegenc", err)
	}

	sink, err := app.NewAppSink()
	if err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "create appsink", err)
	}
	sink.SetProperty("sync", false)
	sink.SetProperty("max-buffers", 1)
	sink.SetProperty("drop", true)

	pipeline.AddMany(src, converter, scaler, videorate, capsfilter, encoder, sink.Element)
	if err := gst.ElementLinkMany(src, converter, scaler, videorate, capsfilter, encoder, sink.Element); err != nil {
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open", "link pipeline elements", err)
	}

	camera := &Camera{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "capture"),
		pipeline: pipeline,
		sink:     sink,
		frames:   make(chan Frame, 1),
		eos:      make(chan struct{}),
		failed:   make(chan error, 1),
	}

	sink.SetCallbacks(&app.SinkCallbacks{
		NewSampleFunc: camera.onNewSample,
		EOSFunc:       func(*app.Sink) { camera.signalEOS() },
	})

	go camera.watchBus()

	if err := pipeline.SetState(gst.StatePlaying); err != nil {
		_ = pipeline.SetState(gst.StateNull)
		return nil, services.Wrap(services.ErrSourceFatal, "capture", "open",
			fmt.Sprintf("start pipeline for %s", cfg.Device), err)
	}

	camera.logger.Info("camera started",
		logging.String(logging.FieldDevice, cfg.Device),
		logging.Int("width", cfg.Width),
		logging.Int("height", cfg.Height),
		logging.Float64("fps", cfg.FPS),
	)

	return camera, nil
}

// Read blocks until the next frame, end of stream, or context cancellation.
func (c *Camera) Read(ctx context.Context) (Frame, error) {
	select {
	case <-ctx.Done():
		return Frame{}, ctx.Err()
	case err := <-c.failed:
		return Frame{}, err
	case <-c.eos:
		return Frame{}, ErrStreamEnded
	case frame := <-c.frames:
		return frame, nil
	}
}

// Close tears the pipeline down. Safe to call more than once.
func (c *Camera) Close() error {
	var err error
	c.closeOnce.Do(func() {
		c.signalEOS()
		if c.pipeline != nil {
			err = c.pipeline.SetState(gst.StateNull)
		}
	})
	return err
}

func (c *Camera) onNewSample(sink *app.Sink) gst.FlowReturn {
	sample := sink.PullSample()
	if sample == nil {
		return gst.FlowOK
	}
	buffer := sample.GetBuffer()
	if buffer == nil {
		return gst.FlowOK
	}

	mapInfo := buffer.Map(gst.MapRead)
	data := mapInfo.Bytes()
	if len(data) == 0 {
		buffer.Unmap()
		return gst.FlowOK
	}
	// Copy before Unmap; GStreamer reuses the buffer.
	frameData := make([]byte, len(data))
	copy(frameData, data)
	buffer.Unmap()

	frame := Frame{
		Seq:       atomic.AddUint64(&c.seq, 1),
		Timestamp: time.Now(),
		Width:     c.cfg.Width,
		Height:    c.cfg.Height,
		Data:      frameData,
	}

	// Replace any stale frame so Read always sees the newest one.
	for {
		select {
		case c.frames <- frame:
			return gst.FlowOK
		default:
			select {
			case <-c.frames:
			default:
			}
		}
	}
}

func (c *Camera) watchBus() {
	bus := c.pipeline.GetPipelineBus()
	for {
		msg := bus.TimedPop(time.Duration(-1))
		if msg == nil {
			return
		}
		switch msg.Type() {
		case gst.MessageEOS:
			c.signalEOS()
			return
		case gst.MessageError:
			gerr := msg.ParseError()
			c.signalFailure(services.Wrap(services.ErrSourceFatal, "capture", "read",
				fmt.Sprintf("pipeline error on %s", c.cfg.Device), gerr))
			return
		}
	}
}

func (c *Camera) signalEOS() {
	c.eosOnce.Do(func() { close(c.eos) })
}

func (c *Camera) signalFailure(err error) {
	c.failOnce.Do(func() { c.failed <- err })
}

// buildFramerateCaps handles fractional rates: 0.5 fps becomes 1/2.
func buildFramerateCaps(width, height int, fps float64) string {
	numerator := 1
	denominator := 1
	if fps < 1.0 {
		denominator = int(1.0 / fps)
	} else {
		numerator = int(fps)
	}
	return fmt.Sprintf(
		"video/x-raw,format=RGB,width=%d,height=%d,framerate=%d/%d",
		width, height, numerator, denominator,
	)
}
